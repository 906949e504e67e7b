package cycle

import "gorm.io/gorm"

type CycleContainer struct {
	Handler *Handler
	Service CycleService
}

func NewCycleContainer(db *gorm.DB) *CycleContainer {
	repo := NewRepository(db)
	service := NewService(repo)

	return &CycleContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
