package cycle

import (
	"time"

	util "github.com/saulo-duarte/okrun-lambda/internal/utils"
)

type Cycle struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"column:cycle_name;type:varchar(255);not null" json:"cycle_name"`
	StartDate   util.Date   `gorm:"not null;index" json:"start_date"`
	EndDate     util.Date   `gorm:"not null" json:"end_date"`
	Status      CycleStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
	Description string      `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
