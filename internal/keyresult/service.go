package keyresult

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
	"github.com/saulo-duarte/okrun-lambda/internal/validation"
)

var ErrKeyResultNotFound = apperror.NotFound("key result")

// ObjectiveReader is the slice of the objective store this package needs.
type ObjectiveReader interface {
	// ObjectiveCycleID returns the cycle of an objective, or a not-found
	// error when the objective does not exist.
	ObjectiveCycleID(ctx context.Context, objectiveID uint) (*uint, error)
}

type KeyResultService interface {
	List(ctx context.Context, objectiveID uint) ([]KeyResult, error)
	Get(ctx context.Context, objectiveID, id uint) (*KeyResult, error)
	Create(ctx context.Context, objectiveID uint, in KeyResultInput) (*KeyResult, error)
	Update(ctx context.Context, objectiveID, id uint, in KeyResultInput) (*KeyResult, error)
	Delete(ctx context.Context, objectiveID, id uint) error
}

type keyResultService struct {
	repo       KeyResultRepository
	objectives ObjectiveReader
	cycles     cycle.CycleService
}

func NewService(repo KeyResultRepository, objectives ObjectiveReader, cycles cycle.CycleService) KeyResultService {
	return &keyResultService{
		repo:       repo,
		objectives: objectives,
		cycles:     cycles,
	}
}

// ValidateInput checks field rules and that a referenced cycle exists.
func ValidateInput(ctx context.Context, cycles cycle.CycleService, in KeyResultInput) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	if in.CycleID == nil {
		return nil
	}
	if _, err := cycles.Get(ctx, *in.CycleID); err != nil {
		if errors.Is(err, cycle.ErrCycleNotFound) {
			return apperror.Field("cycle_id", "the selected cycle_id is invalid")
		}
		return err
	}
	return nil
}

func (s *keyResultService) List(ctx context.Context, objectiveID uint) ([]KeyResult, error) {
	if _, err := s.objectives.ObjectiveCycleID(ctx, objectiveID); err != nil {
		return nil, err
	}
	return s.repo.FindAllByObjective(ctx, objectiveID)
}

func (s *keyResultService) Get(ctx context.Context, objectiveID, id uint) (*KeyResult, error) {
	kr, err := s.repo.FindByIDAndObjective(ctx, id, objectiveID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrKeyResultNotFound
		}
		return nil, err
	}
	return kr, nil
}

func (s *keyResultService) Create(ctx context.Context, objectiveID uint, in KeyResultInput) (*KeyResult, error) {
	log := config.WithContext(ctx).WithField("objective_id", objectiveID)

	if err := ValidateInput(ctx, s.cycles, in); err != nil {
		return nil, err
	}

	objectiveCycleID, err := s.objectives.ObjectiveCycleID(ctx, objectiveID)
	if err != nil {
		return nil, err
	}

	cycleID, err := s.resolveCycle(ctx, in.CycleID, objectiveCycleID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve cycle for key result")
		return nil, err
	}

	kr := New(in, objectiveID, cycleID)
	if err := s.repo.Create(ctx, &kr); err != nil {
		log.WithError(err).Error("Failed to create key result")
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"key_result_id": kr.ID,
		"progress":      kr.ProgressPercent,
	}).Info("Key result created")
	return &kr, nil
}

// resolveCycle picks the explicit cycle, then the objective's, then the current one.
func (s *keyResultService) resolveCycle(ctx context.Context, explicit, objectiveCycleID *uint) (*uint, error) {
	if explicit != nil {
		return explicit, nil
	}
	if objectiveCycleID != nil {
		return objectiveCycleID, nil
	}
	current, err := s.cycles.Current(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	return &current.ID, nil
}

func (s *keyResultService) Update(ctx context.Context, objectiveID, id uint, in KeyResultInput) (*KeyResult, error) {
	log := config.WithContext(ctx).WithField("key_result_id", id)

	if err := ValidateInput(ctx, s.cycles, in); err != nil {
		return nil, err
	}

	kr, err := s.Get(ctx, objectiveID, id)
	if err != nil {
		return nil, err
	}

	Apply(kr, in)

	if err := s.repo.Update(ctx, kr); err != nil {
		log.WithError(err).Error("Failed to update key result")
		return nil, err
	}

	log.WithField("progress", kr.ProgressPercent).Info("Key result updated")
	return kr, nil
}

func (s *keyResultService) Delete(ctx context.Context, objectiveID, id uint) error {
	log := config.WithContext(ctx).WithField("key_result_id", id)

	if err := s.repo.Delete(ctx, id, objectiveID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrKeyResultNotFound
		}
		log.WithError(err).Error("Failed to delete key result")
		return err
	}

	log.Info("Key result deleted")
	return nil
}
