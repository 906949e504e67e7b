package cycle

import util "github.com/saulo-duarte/okrun-lambda/internal/utils"

type CycleInput struct {
	Name        string     `json:"cycle_name" validate:"required,max=255"`
	StartDate   *util.Date `json:"start_date" validate:"required"`
	EndDate     *util.Date `json:"end_date" validate:"required"`
	Status      string     `json:"status" validate:"required,oneof=active inactive"`
	Description *string    `json:"description"`
}

func (in CycleInput) validate() map[string]string {
	if in.StartDate == nil || in.EndDate == nil {
		return nil
	}
	if in.EndDate.Before(*in.StartDate) {
		return map[string]string{"end_date": "the end_date must be a date after or equal to start_date"}
	}
	return nil
}
