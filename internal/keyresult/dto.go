package keyresult

type KeyResultInput struct {
	Title           string   `json:"kr_title" validate:"required,max=255"`
	TargetValue     *float64 `json:"target_value" validate:"required,gte=0"`
	CurrentValue    *float64 `json:"current_value" validate:"omitempty,gte=0"`
	Unit            string   `json:"unit" validate:"required,max=255"`
	Status          *string  `json:"status" validate:"omitempty,max=255"`
	Weight          *int     `json:"weight" validate:"omitempty,gte=0,lte=100"`
	ProgressPercent *float64 `json:"progress_percent" validate:"omitempty,gte=0,lte=100"`
	CycleID         *uint    `json:"cycle_id"`
}

// New builds a key result from validated input, applying the create defaults.
func New(in KeyResultInput, objectiveID uint, cycleID *uint) KeyResult {
	kr := KeyResult{
		Title:       in.Title,
		TargetValue: *in.TargetValue,
		Unit:        in.Unit,
		Status:      DefaultStatus,
		ObjectiveID: objectiveID,
		CycleID:     cycleID,
	}
	if in.CurrentValue != nil {
		kr.CurrentValue = *in.CurrentValue
	}
	if in.Status != nil && *in.Status != "" {
		kr.Status = *in.Status
	}
	if in.Weight != nil {
		kr.Weight = *in.Weight
	}
	kr.ProgressPercent = ResolveProgress(in.ProgressPercent, kr.CurrentValue, kr.TargetValue)
	return kr
}

// Apply updates kr from validated input. Omitted current value, status,
// weight and cycle keep their stored values.
func Apply(kr *KeyResult, in KeyResultInput) {
	kr.Title = in.Title
	kr.TargetValue = *in.TargetValue
	kr.Unit = in.Unit
	if in.CurrentValue != nil {
		kr.CurrentValue = *in.CurrentValue
	}
	if in.Status != nil && *in.Status != "" {
		kr.Status = *in.Status
	}
	if in.Weight != nil {
		kr.Weight = *in.Weight
	}
	if in.CycleID != nil {
		kr.CycleID = in.CycleID
	}
	kr.ProgressPercent = ResolveProgress(in.ProgressPercent, kr.CurrentValue, kr.TargetValue)
}
