package user

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/cache"
	"github.com/saulo-duarte/okrun-lambda/internal/department"
)

type UserContainer struct {
	Handler *Handler
	Service UserService
	Repo    UserRepository
}

func NewUserContainer(db *gorm.DB, departments department.DepartmentService, c cache.Cache) *UserContainer {
	repo := NewRepository(db)
	service := NewService(repo, departments, c)

	return &UserContainer{
		Handler: NewHandler(service),
		Service: service,
		Repo:    repo,
	}
}
