package department

import "time"

type Department struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:d_name;type:varchar(255);not null" json:"d_name"`
	Description string    `gorm:"column:d_description;type:text" json:"d_description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
