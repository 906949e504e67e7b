package role

import "gorm.io/gorm"

type RoleContainer struct {
	Handler *Handler
	Repo    RoleRepository
}

func NewRoleContainer(db *gorm.DB) *RoleContainer {
	repo := NewRepository(db)

	return &RoleContainer{
		Handler: NewHandler(repo),
		Repo:    repo,
	}
}
