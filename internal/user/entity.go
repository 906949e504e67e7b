package user

import (
	"time"

	"github.com/saulo-duarte/okrun-lambda/internal/department"
	"github.com/saulo-duarte/okrun-lambda/internal/role"
)

type User struct {
	ID           uint                   `gorm:"primaryKey" json:"id"`
	FullName     string                 `gorm:"type:varchar(255);not null" json:"full_name"`
	Email        string                 `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	AvatarURL    *string                `gorm:"type:text" json:"avatar_url"`
	RoleID       role.ID                `gorm:"not null;default:3;index" json:"role_id"`
	Role         *role.Role             `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"role,omitempty"`
	DepartmentID *uint                  `gorm:"index" json:"department_id"`
	Department   *department.Department `gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"department,omitempty"`
	Status       UserStatus             `gorm:"type:varchar(20);not null;default:active" json:"status"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.RoleID == role.Admin
}

// RoleName returns the loaded role's name, falling back to the enum name.
func (u *User) RoleName() string {
	if u.Role != nil && u.Role.Name != "" {
		return u.Role.Name
	}
	return u.RoleID.String()
}
