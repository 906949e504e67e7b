package objective

import (
	"time"

	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
	"github.com/saulo-duarte/okrun-lambda/internal/keyresult"
	"github.com/saulo-duarte/okrun-lambda/internal/user"
)

type Objective struct {
	ID              uint                  `gorm:"primaryKey" json:"id"`
	Title           string                `gorm:"column:obj_title;type:varchar(255);not null" json:"obj_title"`
	Description     *string               `gorm:"type:text" json:"description"`
	Level           Level                 `gorm:"type:varchar(50);not null" json:"level"`
	Status          ObjectiveStatus       `gorm:"type:varchar(20);not null;default:draft" json:"status"`
	ProgressPercent float64               `gorm:"not null;default:0" json:"progress_percent"`
	UserID          uint                  `gorm:"not null;index" json:"user_id"`
	User            *user.User            `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user,omitempty"`
	CycleID         *uint                 `gorm:"index" json:"cycle_id"`
	Cycle           *cycle.Cycle          `gorm:"foreignKey:CycleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"cycle,omitempty"`
	KeyResults      []keyresult.KeyResult `gorm:"foreignKey:ObjectiveID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"key_results"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// CycleDetail is a cycle together with the objectives planned in it.
type CycleDetail struct {
	Cycle      *cycle.Cycle `json:"cycle"`
	Objectives []Objective  `json:"objectives"`
}
