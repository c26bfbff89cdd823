package generator

// QuoteItem is one priced line of a quotation. Repaired parts are listed
// at zero with a "(Repair)" suffix on the name.
type QuoteItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// QuotePayload is the structured summary handed to the text generator
// when quoting a job. The assembler fills it; nothing here is natural
// language beyond the technician's own notes.
type QuotePayload struct {
	CustomerName    string      `json:"customer_name"`
	ProductModel    string      `json:"product_model"`
	ProductArea     string      `json:"product_area"`
	RMANumber       string      `json:"rma_number"`
	Items           []QuoteItem `json:"items"`
	LaborCost       float64     `json:"labor_cost"`
	TotalCost       float64     `json:"total_cost"`
	TechnicianNotes string      `json:"technician_notes"`
}

// ReportPayload is the structured summary handed to the text generator
// when a repair is completed.
type ReportPayload struct {
	CustomerName    string `json:"customer_name"`
	ProductModel    string `json:"product_model"`
	ProductArea     string `json:"product_area"`
	ProductName     string `json:"product_name"`
	RMANumber       string `json:"rma_number"`
	ActionSummary   string `json:"action_summary"`
	TechnicianNotes string `json:"technician_notes"`
}

// ReportText is the pair of customer-facing texts produced for a
// completed repair.
type ReportText struct {
	Email string `json:"emailBody"`
	SMS   string `json:"smsBody"`
}
