package objective

import "github.com/saulo-duarte/okrun-lambda/internal/keyresult"

type CreateObjectiveInput struct {
	Title           string                     `json:"obj_title" validate:"required,max=255"`
	Level           string                     `json:"level"`
	Description     *string                    `json:"description" validate:"omitempty,max=1000"`
	Status          ObjectiveStatus            `json:"status" validate:"required,oneof=draft active completed"`
	ProgressPercent *float64                   `json:"progress_percent" validate:"omitempty,gte=0,lte=100"`
	CycleID         *uint                      `json:"cycle_id"`
	KeyResults      []keyresult.KeyResultInput `json:"key_results" validate:"-"`
}

// UpdateObjectiveInput replaces title and status. Omitted optional fields keep
// their stored values.
type UpdateObjectiveInput struct {
	Title           string          `json:"obj_title" validate:"required,max=255"`
	Level           *string         `json:"level"`
	Description     *string         `json:"description" validate:"omitempty,max=1000"`
	Status          ObjectiveStatus `json:"status" validate:"required,oneof=draft active completed"`
	ProgressPercent *float64        `json:"progress_percent" validate:"omitempty,gte=0,lte=100"`
	CycleID         *uint           `json:"cycle_id"`
}

type AllowedLevelsView struct {
	Levels []Level `json:"levels"`
}
