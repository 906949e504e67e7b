package department

import "gorm.io/gorm"

type DepartmentContainer struct {
	Handler *Handler
	Service DepartmentService
}

func NewDepartmentContainer(db *gorm.DB) *DepartmentContainer {
	repo := NewRepository(db)
	service := NewService(repo)

	return &DepartmentContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
