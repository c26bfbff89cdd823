package entity

// Repair record statuses
const (
	StatusPending       = "Pending"
	StatusQuoted        = "Quoted"
	StatusQuoteApproved = "Quote Approved"
	StatusInProgress    = "In Progress"
	StatusCompleted     = "Completed"
	StatusShipped       = "Shipped"
)

// Part actions
const (
	ActionReplaced = "replaced"
	ActionRepaired = "repaired"
)

// Customer contact details, embedded by value in each repair record.
// Customers are not normalized across records.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// PartAction records the decision to replace or repair one catalog part
// on a given job. At most one action per part id per record.
type PartAction struct {
	PartID string `json:"partId"`
	Action string `json:"action"`
}

// RepairChecklist tracks the technician workflow flags. The flags are
// advisory only and never gate a status transition.
type RepairChecklist struct {
	PreliminaryCheck                  bool   `json:"preliminaryCheck"`
	MapBackup                         bool   `json:"mapBackup"`
	DisassemblyRepair                 bool   `json:"disassemblyRepair"`
	PostRepairTest                    bool   `json:"postRepairTest"`
	MapRestore                        bool   `json:"mapRestore"`
	WaitingForCustomer                bool   `json:"waitingForCustomer"`
	WaitingForParts                   bool   `json:"waitingForParts"`
	WaitingForPartsNotes              string `json:"waitingForPartsNotes,omitempty"`
	WaitingForFullReplacementApproval bool   `json:"waitingForFullReplacementApproval"`
}

// IntakeAccessories lists what arrived in the box alongside the mower.
type IntakeAccessories struct {
	CuttingDisks  bool `json:"cuttingDisks"`
	CuttingBlades bool `json:"cuttingBlades"`
	SecurityKey   bool `json:"securityKey"`
	Camera        bool `json:"camera"`
	Bumper        bool `json:"bumper"`
	PSU           bool `json:"psu"`
	ChargingDock  bool `json:"chargingDock"`
	ChargingCable bool `json:"chargingCable"`
	RTK           bool `json:"rtk"`
	RTKPSU        bool `json:"rtkPsu"`
	Other         bool `json:"other"`
}

// IntakeInspection is captured once when the unit arrives and is not
// revisited by the repair lifecycle.
type IntakeInspection struct {
	ShippingMethod   string            `json:"shippingMethod"`
	BoxType          string            `json:"boxType"`
	Accessories      IntakeAccessories `json:"accessories"`
	AccessoriesOther string            `json:"accessoriesOther,omitempty"`
}

// RepairRecord is the aggregate root of the workshop. JSON tags match the
// export/import column names so records survive a spreadsheet round trip.
type RepairRecord struct {
	ID               string            `json:"id"`
	RMANumber        string            `json:"rmaNumber"`
	TicketNumber     string            `json:"ticketNumber,omitempty"`
	EntryDate        string            `json:"entryDate"`
	ArrivalDate      string            `json:"arrivalDate,omitempty"`
	Customer         Customer          `json:"customer"`
	ProductModel     string            `json:"productModel"`
	ProductArea      string            `json:"productArea"`
	ProductName      string            `json:"productName,omitempty"`
	FaultDescription string            `json:"faultDescription,omitempty"`
	PartsActions     []PartAction      `json:"partsActions"`
	TechnicianNotes  string            `json:"technicianNotes"`
	LaborCost        float64           `json:"laborCost"`
	Checklist        *RepairChecklist  `json:"checklist,omitempty"`
	Intake           *IntakeInspection `json:"intake,omitempty"`
	Status           string            `json:"status"`
	AIReport         string            `json:"aiReport,omitempty"`
	AISMS            string            `json:"aiSms,omitempty"`
	AIQuote          string            `json:"aiQuote,omitempty"`
	Technician       string            `json:"technician,omitempty"`
}

// FindPartAction returns the action recorded for a part, or nil.
func (r *RepairRecord) FindPartAction(partID string) *PartAction {
	for i := range r.PartsActions {
		if r.PartsActions[i].PartID == partID {
			return &r.PartsActions[i]
		}
	}
	return nil
}

// TogglePartAction adds a part as "replaced" if absent, or removes the
// existing action for that part. Toggling twice restores the prior list.
func (r *RepairRecord) TogglePartAction(partID string) {
	for i := range r.PartsActions {
		if r.PartsActions[i].PartID == partID {
			r.PartsActions = append(r.PartsActions[:i], r.PartsActions[i+1:]...)
			return
		}
	}
	r.PartsActions = append(r.PartsActions, PartAction{PartID: partID, Action: ActionReplaced})
}

// SetPartAction switches an already selected part between replaced and
// repaired. Parts not on the record are ignored.
func (r *RepairRecord) SetPartAction(partID, action string) {
	if pa := r.FindPartAction(partID); pa != nil {
		pa.Action = action
	}
}
