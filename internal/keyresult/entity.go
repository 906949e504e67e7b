package keyresult

import (
	"time"

	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
)

type KeyResult struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Title           string       `gorm:"column:kr_title;type:varchar(255);not null" json:"kr_title"`
	TargetValue     float64      `gorm:"not null" json:"target_value"`
	CurrentValue    float64      `gorm:"not null;default:0" json:"current_value"`
	Unit            string       `gorm:"type:varchar(255);not null" json:"unit"`
	Status          string       `gorm:"type:varchar(255);not null;default:active" json:"status"`
	Weight          int          `gorm:"not null;default:0" json:"weight"`
	ProgressPercent float64      `gorm:"not null;default:0" json:"progress_percent"`
	ObjectiveID     uint         `gorm:"not null;index" json:"objective_id"`
	CycleID         *uint        `gorm:"index" json:"cycle_id"`
	Cycle           *cycle.Cycle `gorm:"foreignKey:CycleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}
