package store

import (
	"time"

	"github.com/calyxcontainers/supplytrack/internal/domain"
)

// seedStamp is the fixed creation time for seed records so reset always
// produces an identical document.
var seedStamp = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

func seedDate(m time.Month, day int) domain.Date {
	return domain.NewDate(2026, m, day)
}

// Seed returns the 8 built-in Q1 2026 supply-chain objectives: the flexpack
// pricing reduction and material purchasing program. Used on first run, on
// reset, and whenever the backing document cannot be loaded. Each call
// builds fresh values, so callers may mutate the result freely.
func Seed() []*domain.Project {
	jan, feb, mar := time.January, time.February, time.March

	projects := []*domain.Project{
		{
			ID:              "obj-01",
			ObjectiveNumber: 1,
			Name:            "Flexpack Pricing Reduction Initiative",
			Description:     "Reduce flexpack unit pricing by 12% against the 2025 baseline through renegotiated converter agreements and competitive quoting.",
			Priority:        domain.PriorityHigh,
			Status:          domain.StatusInProgress,
			Owner:           "Cory Timmons",
			TeamMembers:     []string{"Cory Timmons", "Finance", "Dazpak Technical"},
			StartDate:       seedDate(jan, 6),
			DueDate:         seedDate(mar, 31),
			EstimatedHours:  120,
			ActualHours:     24,
			Budget:          25000,
			BudgetSpent:     4200,
			CompletionPct:   25,
			Category:        "Pricing",
			Tags:            []string{"flexpack", "pricing", "q1-2026"},
			Subtasks: []domain.Subtask{
				{
					ID:                 "obj-01-st-1",
					Name:               "Baseline current flexpack cost per unit",
					Description:        "Pull 2025 invoice history and normalize to cost per thousand units across all flexpack SKUs.",
					CompletionCriteria: "Cost baseline spreadsheet reviewed by Finance",
					StartDate:          seedDate(jan, 6),
					DueDate:            seedDate(jan, 16),
					Owner:              "Cory Timmons",
					SuccessMetric:      "Baseline covers 100% of active SKUs",
					Completed:          true,
				},
				{
					ID:                 "obj-01-st-2",
					Name:               "Collect competitive quotes from three converters",
					Description:        "Request formal quotes against the standard spec pack from at least three alternate converters.",
					CompletionCriteria: "Three written quotes on file",
					StartDate:          seedDate(jan, 12),
					DueDate:            seedDate(feb, 6),
					Owner:              "Cory Timmons",
					Dependencies:       "Cost baseline complete",
					SuccessMetric:      "At least one quote under baseline by 10%",
				},
				{
					ID:                 "obj-01-st-3",
					Name:               "Renegotiate Dazpak master pricing agreement",
					Description:        "Use competitive quotes as leverage in the annual Dazpak pricing review.",
					CompletionCriteria: "Revised pricing schedule signed",
					StartDate:          seedDate(feb, 9),
					DueDate:            seedDate(mar, 6),
					Owner:              "Cory Timmons",
					Dependencies:       "Competitive quotes in hand",
					SuccessMetric:      "12% reduction on volume SKUs",
				},
				{
					ID:                 "obj-01-st-4",
					Name:               "Lock Q2-Q4 price schedule",
					Description:        "Fix negotiated pricing for the remainder of 2026 with quarterly volume commitments.",
					CompletionCriteria: "Price schedule appended to master agreement",
					StartDate:          seedDate(mar, 9),
					DueDate:            seedDate(mar, 27),
					Owner:              "Cory Timmons",
					Dependencies:       "Renegotiated agreement signed",
					SuccessMetric:      "No price escalators beyond CPI",
				},
			},
			Notes: []domain.Note{
				{Text: "Kickoff complete. Dazpak annual review booked for week of Feb 9.", Timestamp: seedStamp},
			},
			CreatedAt: seedStamp,
			UpdatedAt: seedStamp,
		},
		{
			ID:              "obj-02",
			ObjectiveNumber: 2,
			Name:            "Bulk Resin and Film Purchasing Program",
			Description:     "Shift film and resin purchasing to forecast-driven bulk orders to capture volume tier pricing ahead of Q2 demand.",
			Priority:        domain.PriorityHigh,
			Status:          domain.StatusInProgress,
			Owner:           "Cory Timmons",
			TeamMembers:     []string{"Cory Timmons", "Finance", "Facilities"},
			StartDate:       seedDate(jan, 6),
			DueDate:         seedDate(feb, 27),
			EstimatedHours:  80,
			ActualHours:     30,
			Budget:          150000,
			BudgetSpent:     61000,
			CompletionPct:   50,
			Category:        "Purchasing",
			Tags:            []string{"materials", "bulk-buying", "q1-2026"},
			Subtasks: []domain.Subtask{
				{
					ID:                 "obj-02-st-1",
					Name:               "Build Q1-Q2 material demand forecast",
					Description:        "Roll sales projections into a film and resin demand forecast by month.",
					CompletionCriteria: "Forecast signed off by Sales and Finance",
					StartDate:          seedDate(jan, 6),
					DueDate:            seedDate(jan, 23),
					Owner:              "Cory Timmons",
					SuccessMetric:      "Forecast variance under 15% against January actuals",
					Completed:          true,
				},
				{
					ID:                 "obj-02-st-2",
					Name:               "Volume tier analysis with finance",
					Description:        "Model carrying cost against tier discounts to find the optimal order size.",
					CompletionCriteria: "Recommended order quantity approved",
					StartDate:          seedDate(jan, 19),
					DueDate:            seedDate(feb, 6),
					Owner:              "Finance",
					Dependencies:       "Demand forecast complete",
					SuccessMetric:      "Net savings of 8% or better after carrying cost",
					Completed:          true,
				},
				{
					ID:                 "obj-02-st-3",
					Name:               "Place Q1 bulk film order",
					CompletionCriteria: "PO issued and confirmed by supplier",
					StartDate:          seedDate(feb, 9),
					DueDate:            seedDate(feb, 13),
					Owner:              "Cory Timmons",
					Dependencies:       "Tier analysis approved",
					SuccessMetric:      "Order lands in the top volume tier",
				},
				{
					ID:                 "obj-02-st-4",
					Name:               "Verify warehouse intake capacity",
					Description:        "Confirm racking and floor space for the larger inbound shipments with Facilities.",
					CompletionCriteria: "Intake plan documented",
					StartDate:          seedDate(feb, 9),
					DueDate:            seedDate(feb, 27),
					Owner:              "Facilities",
					SuccessMetric:      "No demurrage or overflow storage fees in Q1",
				},
			},
			CreatedAt: seedStamp,
			UpdatedAt: seedStamp,
		},
		{
			ID:              "obj-03",
			ObjectiveNumber: 3,
			Name:            "Dazpak Strategic Partnership Agreement",
			Description:     "Formalize the Dazpak relationship as a strategic partnership with committed volumes, service levels, and a joint review cadence.",
			Priority:        domain.PriorityHigh,
			Status:          domain.StatusInProgress,
			Owner:           "Cory Timmons",
			TeamMembers:     []string{"Cory Timmons", "Legal", "Dazpak Technical"},
			StartDate:       seedDate(jan, 12),
			DueDate:         seedDate(mar, 13),
			EstimatedHours:  60,
			ActualHours:     12,
			Budget:          10000,
			BudgetSpent:     1500,
			CompletionPct:   0,
			Category:        "Vendor Management",
			Tags:            []string{"dazpak", "partnership", "q1-2026"},
			Subtasks: []domain.Subtask{
				{
					ID:                 "obj-03-st-1",
					Name:               "Draft partnership terms with legal",
					CompletionCriteria: "Draft agreement circulated to Dazpak",
					StartDate:          seedDate(jan, 12),
					DueDate:            seedDate(feb, 13),
					Owner:              "Legal",
					SuccessMetric:      "Terms include committed volume discounts and SLA",
				},
				{
					ID:                 "obj-03-st-2",
					Name:               "Establish joint quarterly business review cadence",
					CompletionCriteria: "Q2 and Q3 QBR dates on both calendars",
					StartDate:          seedDate(feb, 16),
					DueDate:            seedDate(feb, 27),
					Owner:              "Cory Timmons",
					SuccessMetric:      "First QBR agenda agreed",
				},
				{
					ID:                 "obj-03-st-3",
					Name:               "Execute partnership agreement",
					CompletionCriteria: "Agreement signed by both parties",
					StartDate:          seedDate(mar, 2),
					DueDate:            seedDate(mar, 13),
					Owner:              "Cory Timmons",
					Dependencies:       "Legal draft accepted",
					SuccessMetric:      "Signed before end of Q1",
				},
			},
			CreatedAt: seedStamp,
			UpdatedAt: seedStamp,
		},
		{
			ID:              "obj-04",
			ObjectiveNumber: 4,
			Name:            "Domestic Backup Supplier Qualification",
			Description:     "Qualify at least one domestic converter as a backup source to de-risk the import supply chain.",
			Priority:        domain.PriorityMedium,
			Status:          domain.StatusInProgress,
			Owner:           "Greg Furner",
			TeamMembers:     []string{"Greg Furner", "QA Team", "Cory Timmons"},
			StartDate:       seedDate(jan, 12),
			DueDate:         seedDate(mar, 20),
			EstimatedHours:  90,
			ActualHours:     18,
			Budget:          18000,
			BudgetSpent:     2800,
			CompletionPct:   25,
			Category:        "Vendor Management",
			Tags:            []string{"supply-risk", "qualification", "q1-2026"},
			Subtasks: []domain.Subtask{
				{
					ID:                 "obj-04-st-1",
					Name:               "Shortlist domestic converters",
					CompletionCriteria: "Shortlist of 5 with capability summaries",
					StartDate:          seedDate(jan, 12),
					DueDate:            seedDate(jan, 30),
					Owner:              "Greg Furner",
					SuccessMetric:      "All 5 can meet spec on paper",
					Completed:          true,
				},
				{
					ID:                 "obj-04-st-2",
					Name:               "Request samples and spec sheets",
					CompletionCriteria: "Samples received from at least 3 converters",
					StartDate:          seedDate(feb, 2),
					DueDate:            seedDate(feb, 20),
					Owner:              "Greg Furner",
					Dependencies:       "Shortlist approved",
					SuccessMetric:      "3 sample sets received",
				},
				{
					ID:                 "obj-04-st-3",
					Name:               "Run QA sample trials",
					Description:        "Seal strength, barrier, and print fidelity trials against the standard spec pack.",
					CompletionCriteria: "Trial report per candidate",
					StartDate:          seedDate(feb, 23),
					DueDate:            seedDate(mar, 13),
					Owner:              "QA Team",
					Dependencies:       "Samples received",
					SuccessMetric:      "At least one candidate passes all trials",
				},
				{
					ID:                 "obj-04-st-4",
					Name:               "Approve backup supplier",
					CompletionCriteria: "Supplier added to the approved vendor list",
					StartDate:          seedDate(mar, 16),
					DueDate:            seedDate(mar, 20),
					Owner:              "Greg Furner",
					Dependencies:       "QA trials passed",
					SuccessMetric:      "Backup can cover 30% of volume on 4-week lead time",
				},
			},
			CreatedAt: seedStamp,
			UpdatedAt: seedStamp,
		},
		{
			ID:              "obj-05",
			ObjectiveNumber: 5,
			Name:            "HP Press Changeover Efficiency",
			Description:     "Cut HP digital press changeover time in half through calibration, SOPs, and operator training.",
			Priority:        domain.PriorityMedium,
			Status:          domain.StatusNotStarted,
			Owner:           "Greg Furner",
			TeamMembers:     []string{"Greg Furner", "Production Team", "HP Technician"},
			StartDate:       seedDate(feb, 2),
			DueDate:         seedDate(mar, 27),
			EstimatedHours:  70,
			ActualHours:     0,
			Budget:          12000,
			BudgetSpent:     0,
			CompletionPct:   0,
			Category:        "Operations",
			Tags:            []string{"production", "efficiency", "q1-2026"},
			Subtasks: []domain.Subtask{
				{
					ID:                 "obj-05-st-1",
					Name:               "Time-study current changeovers",
					CompletionCriteria: "Ten changeovers timed and logged",
					StartDate:          seedDate(feb, 2),
					DueDate:            seedDate(feb, 13),
					Owner:              "Production Team",
					SuccessMetric:      "Baseline changeover time established",
				},
				{
					ID:                 "obj-05-st-2",
					Name:               "HP technician calibration visit",
					CompletionCriteria: "Calibration report delivered",
					StartDate:          seedDate(feb, 16),
					DueDate:            seedDate(feb, 27),
					Owner:              "HP Technician",
					SuccessMetric:      "Press running at rated speed",
				},
				{
					ID:                 "obj-05-st-3",
					Name:               "Write rapid changeover SOP",
					CompletionCriteria: "SOP reviewed and posted at the press",
					StartDate:          seedDate(mar, 2),
					DueDate:            seedDate(mar, 13),
					Owner:              "Greg Furner",
					Dependencies:       "Time study and calibration complete",
					SuccessMetric:      "SOP target under 25 minutes",
				},
				{
					ID:                 "obj-05-st-4",
					Name:               "Train production team on new SOP",
					CompletionCriteria: "All operators signed off",
					StartDate:          seedDate(mar, 16),
					DueDate:            seedDate(mar, 27),
					Owner:              "Greg Furner",
					Dependencies:       "SOP published",
					SuccessMetric:      "Average changeover under 30 minutes by quarter end",
				},
			},
			CreatedAt: seedStamp,
			UpdatedAt: seedStamp,
		},
		{
			ID:              "obj-06",
			ObjectiveNumber: 6,
			Name:            "Inventory Carrying Cost Reduction",
			Description:     "Reduce flexpack inventory carrying cost by classifying SKUs, setting reorder points, and clearing obsolete stock.",
			Priority:        domain.PriorityMedium,
			Status:          domain.StatusNotStarted,
			Owner:           "Cory Timmons",
			TeamMembers:     []string{"Cory Timmons", "Finance", "IT"},
			StartDate:       seedDate(feb, 2),
			DueDate:         seedDate(mar, 31),
			EstimatedHours:  50,
			ActualHours:     0,
			Budget:          8000,
			BudgetSpent:     0,
			CompletionPct:   0,
			Category:        "Purchasing",
			Tags:            []string{"inventory", "cost", "q1-2026"},
			Subtasks: []domain.Subtask{
				{
					ID:                 "obj-06-st-1",
					Name:               "ABC-classify flexpack SKUs",
					CompletionCriteria: "Every active SKU assigned a class",
					StartDate:          seedDate(feb, 2),
					DueDate:            seedDate(feb, 20),
					Owner:              "Cory Timmons",
					SuccessMetric:      "A-class SKUs identified for weekly review",
				},
				{
					ID:                 "obj-06-st-2",
					Name:               "Set reorder points in the ERP",
					CompletionCriteria: "Reorder points live for A and B SKUs",
					StartDate:          seedDate(feb, 23),
					DueDate:            seedDate(mar, 13),
					Owner:              "IT",
					Dependencies:       "Classification complete",
					SuccessMetric:      "Zero stockouts on A-class SKUs in March",
				},
				{
					ID:                 "obj-06-st-3",
					Name:               "Clear obsolete stock",
					CompletionCriteria: "Obsolete SKUs dispositioned",
					StartDate:          seedDate(mar, 2),
					DueDate:            seedDate(mar, 31),
					Owner:              "Cory Timmons",
					SuccessMetric:      "Carrying cost down 10% versus January",
				},
			},
			CreatedAt: seedStamp,
			UpdatedAt: seedStamp,
		},
		{
			ID:              "obj-07",
			ObjectiveNumber: 7,
			Name:            "Film Waste Reduction Program",
			Description:     "Measure and reduce film scrap on the production floor to below 4% of throughput.",
			Priority:        domain.PriorityMedium,
			Status:          domain.StatusNotStarted,
			Owner:           "Greg Furner",
			TeamMembers:     []string{"Greg Furner", "Production Team", "QA Team"},
			StartDate:       seedDate(jan, 19),
			DueDate:         seedDate(mar, 31),
			EstimatedHours:  65,
			ActualHours:     0,
			Budget:          15000,
			BudgetSpent:     0,
			CompletionPct:   0,
			Category:        "Operations",
			Tags:            []string{"waste", "production", "q1-2026"},
			Subtasks: []domain.Subtask{
				{
					ID:                 "obj-07-st-1",
					Name:               "Measure baseline scrap rate",
					CompletionCriteria: "Four weeks of scrap data collected",
					StartDate:          seedDate(jan, 19),
					DueDate:            seedDate(feb, 13),
					Owner:              "Production Team",
					SuccessMetric:      "Scrap tracked per shift per press",
				},
				{
					ID:                 "obj-07-st-2",
					Name:               "Root-cause top three waste drivers",
					CompletionCriteria: "Root-cause analysis documented",
					StartDate:          seedDate(feb, 16),
					DueDate:            seedDate(mar, 6),
					Owner:              "Greg Furner",
					Dependencies:       "Baseline data collected",
					SuccessMetric:      "Drivers covering 70% of scrap identified",
				},
				{
					ID:                 "obj-07-st-3",
					Name:               "Implement corrective actions on press",
					CompletionCriteria: "Actions closed in the CAPA log",
					StartDate:          seedDate(mar, 9),
					DueDate:            seedDate(mar, 27),
					Owner:              "Production Team",
					Dependencies:       "Root causes identified",
					SuccessMetric:      "Scrap rate below 4% in the final week of March",
				},
			},
			CreatedAt: seedStamp,
			UpdatedAt: seedStamp,
		},
		{
			ID:              "obj-08",
			ObjectiveNumber: 8,
			Name:            "Supplier Quality Audit Program",
			Description:     "Stand up a recurring supplier quality audit program with scorecards for all flexpack material suppliers.",
			Priority:        domain.PriorityLow,
			Status:          domain.StatusNotStarted,
			Owner:           "Greg Furner",
			TeamMembers:     []string{"Greg Furner", "QA Team"},
			StartDate:       seedDate(feb, 9),
			DueDate:         seedDate(mar, 31),
			EstimatedHours:  55,
			ActualHours:     0,
			Budget:          9000,
			BudgetSpent:     0,
			CompletionPct:   0,
			Category:        "Quality",
			Tags:            []string{"quality", "audit", "q1-2026"},
			Subtasks: []domain.Subtask{
				{
					ID:                 "obj-08-st-1",
					Name:               "Build audit checklist with QA",
					CompletionCriteria: "Checklist approved by QA lead",
					StartDate:          seedDate(feb, 9),
					DueDate:            seedDate(feb, 20),
					Owner:              "QA Team",
					SuccessMetric:      "Checklist covers spec, process, and traceability",
				},
				{
					ID:                 "obj-08-st-2",
					Name:               "Audit Dazpak facility",
					CompletionCriteria: "Audit report issued with findings",
					StartDate:          seedDate(feb, 23),
					DueDate:            seedDate(mar, 13),
					Owner:              "Greg Furner",
					Dependencies:       "Checklist approved",
					SuccessMetric:      "No critical findings open past 30 days",
				},
				{
					ID:                 "obj-08-st-3",
					Name:               "Publish supplier scorecards",
					CompletionCriteria: "Scorecards shared with suppliers",
					StartDate:          seedDate(mar, 16),
					DueDate:            seedDate(mar, 31),
					Owner:              "QA Team",
					Dependencies:       "First audits complete",
					SuccessMetric:      "Scorecard per active supplier",
				},
			},
			CreatedAt: seedStamp,
			UpdatedAt: seedStamp,
		},
	}

	// Same slice shape as a decoded document: no nil slices anywhere.
	for _, p := range projects {
		if p.Notes == nil {
			p.Notes = []domain.Note{}
		}
		for i := range p.Subtasks {
			if p.Subtasks[i].Notes == nil {
				p.Subtasks[i].Notes = []domain.Note{}
			}
		}
	}
	return projects
}
