package generator

import (
	"fmt"
	"strings"
)

// quotePrompt renders the quotation instruction for the model. The
// itemization and totals are computed by the caller; the model only
// writes the letter around them.
func quotePrompt(p *QuotePayload) string {
	var items strings.Builder
	for _, item := range p.Items {
		fmt.Fprintf(&items, "- %s: $%.2f\n", item.Name, item.Price)
	}

	return fmt.Sprintf(`You are a Senior Service Representative at Robomate. Write a formal Repair Quotation email.

DETAILS:
- Customer: %s
- Product: %s %s (RMA: %s)
- Proposed Replacements & Repairs:
%s- Labor Cost: $%.2f
- Total Estimated Cost: $%.2f
- Notes: %s

OUTPUT REQUIREMENTS:
- Format: Plain Text only (No HTML).
- Use **Bold** for headers (e.g. **Service Quotation**) using Markdown syntax.
- Structure:
  - Subject: Service Quotation: [RMA#] [Product]
  - Dear [Name],
  - Explain that diagnostics are complete and parts are needed.
  - List the parts and costs clearly.
  - State the Grand Total.
  - Ask for approval to proceed with the repair.
  - Sign off: Robomate Service Team.`,
		p.CustomerName, p.ProductModel, p.ProductArea, p.RMANumber,
		items.String(), p.LaborCost, p.TotalCost, p.TechnicianNotes)
}

// reportPrompt renders the completion report instruction. The model
// must answer with strict JSON holding emailBody and smsBody.
func reportPrompt(p *ReportPayload) string {
	productName := p.ProductName
	if productName == "" {
		productName = "N/A"
	}

	return fmt.Sprintf(`You are a Senior Service Representative at Robomate (authorized Mammotion service partner), writing a formal Service Report.

CUSTOMER & DEVICE DETAILS:
- Customer: %s
- Product: %s %s
- Device Name/ID: %s
- RMA Number: %s

SERVICE PERFORMED:
- %s
- Technician Notes: %s

OUTPUT REQUIREMENTS:

1. EMAIL (JSON key: "emailBody"):
   - PLAIN TEXT with Markdown for headers. DO NOT use HTML tags. USE **Bold** for section headers.
   - Structure:
     Subject: [RMA#] Service Report: [Product Model]

     Dear [Customer Name],

     [Opening: briefly confirm the repair is complete and successful]

     **Service Details**
     [List the specific repairs/replacements mentioned in the summary above]

     **Test Results**
     • The mower was fully tested, including mapping, charging, mowing, and safety checks.
     • Customer map has been restored.

     **Recommendations**
     • Please clean the bottom of the mower regularly.
     • Replace the blades when they become blunt.
     • Clean the tail panel and the charging pins on the charging dock from time to time.

     If there is any logistics information, we will notify you separately.

     Thanks for your patience, and thank you for choosing Robomate!

     Robomate Service Team

2. SMS (JSON key: "smsBody"):
   - Strict limit: under 160 characters.
   - Concise notification, e.g. "Robomate Update: Your [Model] (RMA...) is repaired and has passed QC. Please check your email for the service report."

Return strictly valid JSON.`,
		p.CustomerName, p.ProductModel, p.ProductArea, productName, p.RMANumber,
		p.ActionSummary, p.TechnicianNotes)
}
