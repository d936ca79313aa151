package obras

// NumColumns is the width of the positional source layout. Shorter rows are
// padded with empty cells, longer rows are truncated.
const NumColumns = 67

// RawRow mirrors the 67-column positional layout of the source spreadsheet.
// Cells keep their raw type (string, float64, time.Time or nil) until the
// assembler normalizes them.
type RawRow struct {
	ID                   any // 0
	Program              any // 1
	ResponsibleArea      any // 2
	InstitutionalAxis    any // 3
	ResourceType         any // 4
	ProgramGroup         any // 5
	SpendingChapter      any // 6
	ModifiedBudget       any // 7  millions of pesos
	PreProjectTotal      any // 8  millions of pesos
	Goal2025             any // 9
	Goal2026             any // 10
	MeasureUnit          any // 11
	UnitCost             any // 12
	ProjectBudget        any // 13
	MultiYear            any // 14
	WorkType             any // 15
	TerritorialScope     any // 16
	FundingSource        any // 17
	DevelopmentStage     any // 18
	TechnicalComplexity  any // 19
	SocialImpactDesc     any // 20
	StrategicAlignment   any // 21
	SocialImpactLevel    any // 22
	Urgency              any // 23
	ExecutionViability   any // 24
	AvailableResources   any // 25
	RiskLevel            any // 26
	DependencyLevel      any // 27
	WeightedScore        any // 28 ignored, always recomputed
	TechnicalLight       any // 29
	BudgetLight          any // 30
	LegalLight           any // 31
	ScheduleLight        any // 32
	AdminLight           any // 33
	Municipalities       any // 34
	SpecificLocation     any // 35
	DirectBeneficiaries  any // 36
	TargetPopulation     any // 37
	PlannedStart         any // 38
	PlannedEnd           any // 39
	DurationMonths       any // 40
	ActualStart          any // 41
	ActualEnd            any // 42
	PhysicalProgress     any // 43
	FinancialProgress    any // 44
	GeneralStatus        any // 45
	RequiredPermits      any // 46
	PermitStatus         any // 47
	SpecificRequirements any // 48
	OperationalManager   any // 49
	Contractor           any // 50
	Observations         any // 51
	IdentifiedProblems   any // 52
	CorrectiveActions    any // 53
	LastUpdate           any // 54
	ProblemSolved        any // 55
	SolutionOffered      any // 56
	CitizenBenefit       any // 57
	NotableFact          any // 58
	GovernmentAlignment  any // 59
	PopulationProfile    any // 60
	CommsRelevance       any // 61
	CommsMilestones      any // 62
	KeyMessages          any // 63
	CommsStrategy        any // 64
	CaptureControl       any // 65
	ControlNotes         any // 66
}

// RowFromCells lays out a raw cell slice into the positional schema.
func RowFromCells(cells []any) RawRow {
	padded := make([]any, NumColumns)
	copy(padded, cells)
	return RawRow{
		ID:                   padded[0],
		Program:              padded[1],
		ResponsibleArea:      padded[2],
		InstitutionalAxis:    padded[3],
		ResourceType:         padded[4],
		ProgramGroup:         padded[5],
		SpendingChapter:      padded[6],
		ModifiedBudget:       padded[7],
		PreProjectTotal:      padded[8],
		Goal2025:             padded[9],
		Goal2026:             padded[10],
		MeasureUnit:          padded[11],
		UnitCost:             padded[12],
		ProjectBudget:        padded[13],
		MultiYear:            padded[14],
		WorkType:             padded[15],
		TerritorialScope:     padded[16],
		FundingSource:        padded[17],
		DevelopmentStage:     padded[18],
		TechnicalComplexity:  padded[19],
		SocialImpactDesc:     padded[20],
		StrategicAlignment:   padded[21],
		SocialImpactLevel:    padded[22],
		Urgency:              padded[23],
		ExecutionViability:   padded[24],
		AvailableResources:   padded[25],
		RiskLevel:            padded[26],
		DependencyLevel:      padded[27],
		WeightedScore:        padded[28],
		TechnicalLight:       padded[29],
		BudgetLight:          padded[30],
		LegalLight:           padded[31],
		ScheduleLight:        padded[32],
		AdminLight:           padded[33],
		Municipalities:       padded[34],
		SpecificLocation:     padded[35],
		DirectBeneficiaries:  padded[36],
		TargetPopulation:     padded[37],
		PlannedStart:         padded[38],
		PlannedEnd:           padded[39],
		DurationMonths:       padded[40],
		ActualStart:          padded[41],
		ActualEnd:            padded[42],
		PhysicalProgress:     padded[43],
		FinancialProgress:    padded[44],
		GeneralStatus:        padded[45],
		RequiredPermits:      padded[46],
		PermitStatus:         padded[47],
		SpecificRequirements: padded[48],
		OperationalManager:   padded[49],
		Contractor:           padded[50],
		Observations:         padded[51],
		IdentifiedProblems:   padded[52],
		CorrectiveActions:    padded[53],
		LastUpdate:           padded[54],
		ProblemSolved:        padded[55],
		SolutionOffered:      padded[56],
		CitizenBenefit:       padded[57],
		NotableFact:          padded[58],
		GovernmentAlignment:  padded[59],
		PopulationProfile:    padded[60],
		CommsRelevance:       padded[61],
		CommsMilestones:      padded[62],
		KeyMessages:          padded[63],
		CommsStrategy:        padded[64],
		CaptureControl:       padded[65],
		ControlNotes:         padded[66],
	}
}

// IsEmpty reports whether every cell of the row is blank.
func (r RawRow) IsEmpty() bool {
	for _, cell := range r.cells() {
		if !isEmptyCell(cell) {
			return false
		}
	}
	return true
}

func (r RawRow) cells() []any {
	return []any{
		r.ID, r.Program, r.ResponsibleArea, r.InstitutionalAxis, r.ResourceType,
		r.ProgramGroup, r.SpendingChapter, r.ModifiedBudget, r.PreProjectTotal,
		r.Goal2025, r.Goal2026, r.MeasureUnit, r.UnitCost, r.ProjectBudget,
		r.MultiYear, r.WorkType, r.TerritorialScope, r.FundingSource,
		r.DevelopmentStage, r.TechnicalComplexity, r.SocialImpactDesc,
		r.StrategicAlignment, r.SocialImpactLevel, r.Urgency,
		r.ExecutionViability, r.AvailableResources, r.RiskLevel,
		r.DependencyLevel, r.WeightedScore, r.TechnicalLight, r.BudgetLight,
		r.LegalLight, r.ScheduleLight, r.AdminLight, r.Municipalities,
		r.SpecificLocation, r.DirectBeneficiaries, r.TargetPopulation,
		r.PlannedStart, r.PlannedEnd, r.DurationMonths, r.ActualStart,
		r.ActualEnd, r.PhysicalProgress, r.FinancialProgress, r.GeneralStatus,
		r.RequiredPermits, r.PermitStatus, r.SpecificRequirements,
		r.OperationalManager, r.Contractor, r.Observations,
		r.IdentifiedProblems, r.CorrectiveActions, r.LastUpdate,
		r.ProblemSolved, r.SolutionOffered, r.CitizenBenefit, r.NotableFact,
		r.GovernmentAlignment, r.PopulationProfile, r.CommsRelevance,
		r.CommsMilestones, r.KeyMessages, r.CommsStrategy, r.CaptureControl,
		r.ControlNotes,
	}
}
