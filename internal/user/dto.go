package user

import "github.com/saulo-duarte/okrun-lambda/internal/role"

// UpdateRoleInput changes a user's role and department. role_id accepts the
// numeric id or the role name ("manager", "Manager").
type UpdateRoleInput struct {
	RoleID       *role.ID `json:"role_id" validate:"required"`
	DepartmentID *uint    `json:"department_id"`
}

type UpdateStatusInput struct {
	Status UserStatus `json:"status" validate:"required,oneof=active inactive"`
}

type ProfileInput struct {
	FullName  *string `json:"full_name" validate:"omitempty,min=1,max=255"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url,max=2048"`
}

type ProfileView struct {
	FullName  string  `json:"full_name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
}

// RoleChange reports a role update with the role names before and after.
type RoleChange struct {
	User    *User  `json:"user"`
	OldRole string `json:"old_role"`
	NewRole string `json:"new_role"`
}

func toProfileView(u *User) ProfileView {
	return ProfileView{
		FullName:  u.FullName,
		Email:     u.Email,
		AvatarURL: u.AvatarURL,
	}
}
