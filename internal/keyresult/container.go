package keyresult

import (
	"gorm.io/gorm"

	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
)

type KeyResultContainer struct {
	Handler *Handler
	Service KeyResultService
}

func NewKeyResultContainer(db *gorm.DB, objectives ObjectiveReader, cycles cycle.CycleService) *KeyResultContainer {
	repo := NewRepository(db)
	service := NewService(repo, objectives, cycles)

	return &KeyResultContainer{
		Handler: NewHandler(service),
		Service: service,
	}
}
