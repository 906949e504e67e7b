package cycle

import (
	"context"
	"errors"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/validation"
)

var ErrCycleNotFound = apperror.NotFound("cycle")

type CycleService interface {
	Create(ctx context.Context, in CycleInput) (*Cycle, error)
	List(ctx context.Context) ([]Cycle, error)
	Get(ctx context.Context, id uint) (*Cycle, error)
	Update(ctx context.Context, id uint, in CycleInput) (*Cycle, error)
	Delete(ctx context.Context, id uint) error
	// Current returns the cycle used when an objective or key result names
	// none: the first active cycle, else the latest one. It returns nil when
	// no cycle exists at all.
	Current(ctx context.Context) (*Cycle, error)
}

type cycleService struct {
	repo CycleRepository
}

func NewService(repo CycleRepository) CycleService {
	return &cycleService{repo: repo}
}

func validateInput(in CycleInput) error {
	return validation.Merge(validation.Struct(in), in.validate())
}

func (s *cycleService) Create(ctx context.Context, in CycleInput) (*Cycle, error) {
	log := config.WithContext(ctx)

	if err := validateInput(in); err != nil {
		return nil, err
	}

	c := &Cycle{}
	apply(c, in)

	if err := s.repo.Create(ctx, c); err != nil {
		log.WithError(err).Error("Failed to create cycle")
		return nil, err
	}

	log.WithField("cycle_id", c.ID).Info("Cycle created")
	return c, nil
}

func (s *cycleService) List(ctx context.Context) ([]Cycle, error) {
	return s.repo.FindAll(ctx)
}

func (s *cycleService) Get(ctx context.Context, id uint) (*Cycle, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrCycleNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *cycleService) Update(ctx context.Context, id uint, in CycleInput) (*Cycle, error) {
	log := config.WithContext(ctx)

	if err := validateInput(in); err != nil {
		return nil, err
	}

	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	apply(c, in)

	if err := s.repo.Update(ctx, c); err != nil {
		log.WithError(err).Error("Failed to update cycle")
		return nil, err
	}

	log.WithField("cycle_id", c.ID).Info("Cycle updated")
	return c, nil
}

func (s *cycleService) Delete(ctx context.Context, id uint) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrCycleNotFound
		}
		log.WithError(err).Error("Failed to delete cycle")
		return err
	}

	log.WithField("cycle_id", id).Info("Cycle deleted")
	return nil
}

func (s *cycleService) Current(ctx context.Context) (*Cycle, error) {
	c, err := s.repo.FindFirstActive(ctx)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	c, err = s.repo.FindLatest(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func apply(c *Cycle, in CycleInput) {
	c.Name = in.Name
	c.StartDate = *in.StartDate
	c.EndDate = *in.EndDate
	c.Status = CycleStatus(in.Status)
	c.Description = ""
	if in.Description != nil {
		c.Description = *in.Description
	}
}
