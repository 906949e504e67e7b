package objective

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
)

type ObjectiveContainer struct {
	Handler *Handler
	Service ObjectiveService
}

func NewObjectiveContainer(db *gorm.DB, cycles cycle.CycleService) *ObjectiveContainer {
	repo := NewRepository(db)
	service := NewService(repo, cycles)

	return &ObjectiveContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
