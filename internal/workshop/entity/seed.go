package entity

// Supported product lines. Product model is free text on imported rows,
// these are the values offered at intake.
var ProductModels = []string{
	"Luba 1", "Luba 2", "Luba 2X", "Yuka", "Luba Mini", "Yuka Mini",
}

// Mowing area variants per model.
var ProductAreas = []string{"1000", "3000", "5000", "10000", "Standard", "Pro"}

// DefaultSpareParts is the factory catalog installed when no persisted
// catalog exists.
var DefaultSpareParts = []Part{
	// Motors
	{ID: "m-wheel-l", Name: "Left Front Wheel Motor", Category: CategoryMotor, Price: 320},
	{ID: "m-wheel-r", Name: "Right Front Wheel Motor", Category: CategoryMotor, Price: 320},
	{ID: "m-wheel-rl", Name: "Left Rear Wheel Motor", Category: CategoryMotor, Price: 320},
	{ID: "m-wheel-rr", Name: "Right Rear Wheel Motor", Category: CategoryMotor, Price: 320},
	{ID: "m-cut-l", Name: "Left Cutting Motor", Category: CategoryMotor, Price: 280},
	{ID: "m-cut-r", Name: "Right Cutting Motor", Category: CategoryMotor, Price: 280},
	{ID: "m-cut-c", Name: "Center Cutting Motor", Category: CategoryMotor, Price: 340},
	{ID: "m-lift", Name: "Lifting Motor", Category: CategoryMotor, Price: 90},

	// Electronics
	{ID: "e-mainboard", Name: "Mainboard", Category: CategoryElectronics, Price: 430},
	{ID: "e-drive-board", Name: "Drive Board", Category: CategoryElectronics, Price: 490},
	{ID: "e-keypad", Name: "Keypad Board", Category: CategoryElectronics, Price: 230},
	{ID: "e-height-sensor", Name: "Height Sensor Board", Category: CategoryElectronics, Price: 46},
	{ID: "e-panel-back", Name: "Back Panel", Category: CategoryElectronics, Price: 120},
	{ID: "e-battery", Name: "Battery", Category: CategoryElectronics, Price: 600},

	// Chassis
	{ID: "c-shell-top", Name: "Top Cover", Category: CategoryChassis, Price: 890},
	{ID: "c-chassis-bottom", Name: "Bottom Chasis", Category: CategoryChassis, Price: 980},
	{ID: "c-axle-front", Name: "Front Axle", Category: CategoryChassis, Price: 100},
	{ID: "c-axle-back", Name: "Back Axle", Category: CategoryChassis, Price: 100},
	{ID: "c-boot-l", Name: "Left Rubber Boot", Category: CategoryChassis, Price: 20},
	{ID: "c-boot-r", Name: "Right Rubber Boot", Category: CategoryChassis, Price: 20},
	{ID: "c-sleeve-l", Name: "Left Rubber Sleeve", Category: CategoryChassis, Price: 15},
	{ID: "c-sleeve-r", Name: "Right Rubber Sleeve", Category: CategoryChassis, Price: 15},
	{ID: "c-suspension-l", Name: "Left Suspension Rod", Category: CategoryChassis, Price: 10},
	{ID: "c-suspension-r", Name: "Right Suspension Rod", Category: CategoryChassis, Price: 10},
	{ID: "c-tire-fl", Name: "Left Front Wheel Tire", Category: CategoryChassis, Price: 80},
	{ID: "c-tire-fr", Name: "Right Front Wheel Tire", Category: CategoryChassis, Price: 80},
	{ID: "c-tire-rl", Name: "Left Rear Wheel Tire", Category: CategoryChassis, Price: 132},
	{ID: "c-tire-rr", Name: "Right Rear Wheel Tire", Category: CategoryChassis, Price: 132},
	{ID: "c-guard-side-l", Name: "Left Side Guard", Category: CategoryChassis, Price: 18},
	{ID: "c-guard-side-r", Name: "Right Side Guard", Category: CategoryChassis, Price: 18},

	// Cutting
	{ID: "cut-disk", Name: "Left Cutting Disk", Category: CategoryCutting, Price: 38},
	{ID: "cut-disk-r", Name: "Right Cutting Disk", Category: CategoryCutting, Price: 38},
	{ID: "cut-disk-c", Name: "Center Cutting Disk", Category: CategoryCutting, Price: 36},
	{ID: "cut-guard-l", Name: "Left Cutting Guard", Category: CategoryCutting, Price: 40},
	{ID: "cut-guard-r", Name: "Right Cutting Guard", Category: CategoryCutting, Price: 40},
	{ID: "cut-bracket", Name: "Cutting Disk Mounting Bracket", Category: CategoryCutting, Price: 12},

	// Accessories
	{ID: "a-rtk-station", Name: "RTK Reference Station", Category: CategoryAccessories, Price: 688},
	{ID: "a-charge-station", Name: "Charging Station", Category: CategoryAccessories, Price: 650},
	{ID: "a-power-adapte", Name: "Power Supply Unit", Category: CategoryAccessories, Price: 680},
	{ID: "a-vision-3d", Name: "3D Vision Module", Category: CategoryAccessories, Price: 639},
	{ID: "a-bumper", Name: "Bumper", Category: CategoryAccessories, Price: 138},
}

// SeedRecords installs two example jobs (one completed, one quoted) when
// no persisted records exist, so a fresh install has something to show.
func SeedRecords() []RepairRecord {
	return []RepairRecord{
		{
			ID:           "1001",
			RMANumber:    "RMA-2023-1001",
			TicketNumber: "TKT-10552",
			ProductModel: "Luba 2",
			ProductArea:  "3000",
			ProductName:  "Luba-L2-3K-8892",
			Customer: Customer{
				Name:    "Alice Smith",
				Email:   "alice.s@example.com",
				Phone:   "021-555-0199",
				Address: "15 Garden Way, Remuera, Auckland",
			},
			ArrivalDate:      "2023-10-18",
			EntryDate:        "2023-10-20",
			Status:           StatusCompleted,
			FaultDescription: "Robot drives in circles and stops with error. Customer suspects wheel issue.",
			PartsActions: []PartAction{
				{PartID: "m-wheel-r", Action: ActionReplaced},
				{PartID: "a-bumper", Action: ActionRepaired},
			},
			TechnicianNotes: "Right wheel motor seized due to debris, replaced. Front bumper was cracked but repairable with bonding agent. Firmware updated to latest version.",
			AIReport:        "Subject: Service Report: Luba 2 3000 (RMA-2023-1001)\n\nDear Alice Smith,\n\nWe are pleased to inform you that the service for your Luba 2 3000 (RMA-2023-1001) has been successfully completed.\n\n**Service Details**\nReplaced Components: Right Front Wheel Motor. Repaired Components: Bumper.\n\n**Test Results**\n• The mower was fully tested, including mapping, charging, mowing, and safety checks.\n• Customer map has been restored.\n\n**Recommendations**\n• Please clean the bottom of the mower regularly.\n• Replace the blades when they become blunt.\n• Clean the tail panel and the charging pins on the charging dock from time to time.\n\nIf there is any logistics information, we will notify you separately.\n\nThanks for your patience, and thank you for choosing Robomate!\n\nRobomate Service Team",
			AISMS:           "Robomate Update: Your Luba 2 (RMA-2023-1001) is repaired and tested. Please check your email for the service report.",
			Technician:      "Jeff",
			LaborCost:       120,
			Checklist: &RepairChecklist{
				PreliminaryCheck:  true,
				MapBackup:         true,
				DisassemblyRepair: true,
				PostRepairTest:    true,
				MapRestore:        true,
			},
			Intake: &IntakeInspection{
				ShippingMethod: "Freight",
				BoxType:        "Original",
				Accessories: IntakeAccessories{
					SecurityKey: true,
					Camera:      true,
					Bumper:      true,
					RTK:         true,
					RTKPSU:      true,
				},
			},
		},
		{
			ID:           "1002",
			RMANumber:    "RMA-2023-1002",
			TicketNumber: "TKT-10601",
			ProductModel: "Yuka",
			ProductArea:  "Standard",
			ProductName:  "Yuka-Y1-STD-4421",
			Customer: Customer{
				Name:    "Bob Jones",
				Email:   "bobjones@business.co.nz",
				Phone:   "027-123-4567",
				Address: "42 Industrial Blvd, Penrose, Auckland",
			},
			ArrivalDate:      "2023-10-21",
			EntryDate:        "2023-10-22",
			Status:           StatusQuoted,
			FaultDescription: "Unit is dead. Won't turn on even after charging for 24 hours. Cutting disk looks bent.",
			PartsActions: []PartAction{
				{PartID: "e-battery", Action: ActionReplaced},
				{PartID: "cut-disk", Action: ActionReplaced},
			},
			TechnicianNotes: "Battery failing to hold charge. Left cutting disk bent. Quote generated and sent to customer.",
			AIQuote:         "Subject: Service Quotation: RMA-2023-1002 Yuka Standard\n\nDear Bob Jones,\n\nFollowing our diagnostic assessment of your Yuka Standard (RMA: RMA-2023-1002), we have identified that the battery and cutting disk require replacement.\n\n**Proposed Replacements & Repairs**\n- Battery: $600.00\n- Left Cutting Disk: $38.00\n\n**Labor Cost**: $100.00\n\n**Total Estimated Cost**: $738.00\n\nPlease reply to this email to approve the quotation so we can proceed with the repairs.\n\nRobomate Service Team",
			Technician:      "Jeff",
			LaborCost:       100,
			Checklist: &RepairChecklist{
				PreliminaryCheck:   true,
				WaitingForCustomer: true,
			},
			Intake: &IntakeInspection{
				ShippingMethod: "Drop Off",
				BoxType:        "Custom",
				Accessories: IntakeAccessories{
					SecurityKey:   true,
					Camera:        true,
					Bumper:        true,
					PSU:           true,
					ChargingDock:  true,
					ChargingCable: true,
					CuttingDisks:  true,
					CuttingBlades: true,
					Other:         true,
				},
				AccessoriesOther: "Wrapped in bubble wrap, no box",
			},
		},
	}
}
