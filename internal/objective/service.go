package objective

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
	"github.com/saulo-duarte/okrun-lambda/internal/auth"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/cycle"
	"github.com/saulo-duarte/okrun-lambda/internal/keyresult"
	"github.com/saulo-duarte/okrun-lambda/internal/validation"
)

const PerPage = 10

var (
	ErrObjectiveNotFound = apperror.NotFound("objective")
	ErrUnauthenticated   = apperror.Unauthorized("authentication required")
)

type ObjectiveService interface {
	List(ctx context.Context, page int) ([]Objective, *config.PageMeta, error)
	Get(ctx context.Context, id uint) (*Objective, error)
	Create(ctx context.Context, in CreateObjectiveInput) (*Objective, error)
	Update(ctx context.Context, id uint, in UpdateObjectiveInput) (*Objective, error)
	Delete(ctx context.Context, id uint) error
	AllowedLevels(ctx context.Context) ([]Level, error)
	CycleDetail(ctx context.Context, cycleID uint) (*CycleDetail, error)
	ObjectiveCycleID(ctx context.Context, objectiveID uint) (*uint, error)
}

type objectiveService struct {
	repo   ObjectiveRepository
	cycles cycle.CycleService
}

func NewService(repo ObjectiveRepository, cycles cycle.CycleService) ObjectiveService {
	return &objectiveService{
		repo:   repo,
		cycles: cycles,
	}
}

func (s *objectiveService) List(ctx context.Context, page int) ([]Objective, *config.PageMeta, error) {
	if page < 1 {
		page = 1
	}

	objectives, total, err := s.repo.FindPage(ctx, page, PerPage)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list objectives")
		return nil, nil, err
	}
	return objectives, &config.PageMeta{Page: page, PerPage: PerPage, Total: total}, nil
}

func (s *objectiveService) Get(ctx context.Context, id uint) (*Objective, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrObjectiveNotFound
		}
		return nil, err
	}
	return o, nil
}

// authorizeLevel resolves the requested level and checks it against the
// actor's role. A level outside the role's set is an authorization error
// naming the level.
func authorizeLevel(actor auth.Actor, requested string) (Level, error) {
	level, ok := ParseLevel(requested)
	if !ok {
		return "", levelDenied(strings.TrimSpace(requested))
	}
	if !CanCreate(actor.RoleID, level) {
		return "", levelDenied(string(level))
	}
	return level, nil
}

func levelDenied(level string) error {
	return apperror.Unauthorized(fmt.Sprintf("you are not allowed to create OKRs at level %s", level))
}

func (s *objectiveService) validateCycle(ctx context.Context, cycleID *uint) error {
	if cycleID == nil {
		return nil
	}
	if _, err := s.cycles.Get(ctx, *cycleID); err != nil {
		if errors.Is(err, cycle.ErrCycleNotFound) {
			return apperror.Field("cycle_id", "the selected cycle_id is invalid")
		}
		return err
	}
	return nil
}

func (s *objectiveService) Create(ctx context.Context, in CreateObjectiveInput) (*Objective, error) {
	log := config.WithContext(ctx)

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	log = log.WithField("user_id", actor.UserID)

	level, err := authorizeLevel(actor, in.Level)
	if err != nil {
		log.WithField("level", in.Level).Warn("Rejected objective level")
		return nil, err
	}

	// Key results without a title are dropped before validation.
	var (
		kept   []keyresult.KeyResultInput
		krErrs []error
	)
	for i, kr := range in.KeyResults {
		if strings.TrimSpace(kr.Title) == "" {
			continue
		}
		kept = append(kept, kr)
		krErrs = append(krErrs, validation.Prefix(keyresult.ValidateInput(ctx, s.cycles, kr), fmt.Sprintf("key_results.%d", i)))
	}

	errs := append([]error{validation.Struct(in), s.validateCycle(ctx, in.CycleID)}, krErrs...)
	if err := validation.Join(errs...); err != nil {
		return nil, err
	}

	cycleID := in.CycleID
	if cycleID == nil {
		current, err := s.cycles.Current(ctx)
		if err != nil {
			return nil, err
		}
		if current != nil {
			cycleID = &current.ID
		}
	}

	o := &Objective{
		Title:       in.Title,
		Description: in.Description,
		Level:       level,
		Status:      in.Status,
		UserID:      actor.UserID,
		CycleID:     cycleID,
	}
	if in.ProgressPercent != nil {
		o.ProgressPercent = *in.ProgressPercent
	}

	krs := make([]keyresult.KeyResult, 0, len(kept))
	for _, kr := range kept {
		krCycleID := kr.CycleID
		if krCycleID == nil {
			krCycleID = cycleID
		}
		krs = append(krs, keyresult.New(kr, 0, krCycleID))
	}

	if err := s.repo.CreateWithKeyResults(ctx, o, krs); err != nil {
		log.WithError(err).Error("Failed to create objective with key results")
		return nil, apperror.Transaction("failed to create objective", err)
	}

	log.WithFields(logrus.Fields{
		"objective_id": o.ID,
		"level":        o.Level,
		"key_results":  len(krs),
		"skipped":      len(in.KeyResults) - len(krs),
	}).Info("Objective created")
	return o, nil
}

func (s *objectiveService) Update(ctx context.Context, id uint, in UpdateObjectiveInput) (*Objective, error) {
	log := config.WithContext(ctx).WithField("objective_id", id)

	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}

	var level Level
	if in.Level != nil {
		level, err = authorizeLevel(actor, *in.Level)
		if err != nil {
			log.WithField("level", *in.Level).Warn("Rejected objective level")
			return nil, err
		}
	}

	if err := validation.Join(validation.Struct(in), s.validateCycle(ctx, in.CycleID)); err != nil {
		return nil, err
	}

	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	o.Title = in.Title
	o.Status = in.Status
	if level != "" {
		o.Level = level
	}
	if in.Description != nil {
		o.Description = in.Description
	}
	if in.ProgressPercent != nil {
		o.ProgressPercent = *in.ProgressPercent
	}
	if in.CycleID != nil {
		o.CycleID = in.CycleID
		o.Cycle = nil
	}

	if err := s.repo.Update(ctx, o); err != nil {
		log.WithError(err).Error("Failed to update objective")
		return nil, err
	}

	log.Info("Objective updated")
	return o, nil
}

func (s *objectiveService) Delete(ctx context.Context, id uint) error {
	log := config.WithContext(ctx).WithField("objective_id", id)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrObjectiveNotFound
		}
		log.WithError(err).Error("Failed to delete objective")
		return err
	}

	log.Info("Objective deleted with its key results")
	return nil
}

func (s *objectiveService) AllowedLevels(ctx context.Context) ([]Level, error) {
	actor, err := auth.ActorFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return AllowedLevels(actor.RoleID), nil
}

func (s *objectiveService) CycleDetail(ctx context.Context, cycleID uint) (*CycleDetail, error) {
	c, err := s.cycles.Get(ctx, cycleID)
	if err != nil {
		return nil, err
	}

	objectives, err := s.repo.FindByCycle(ctx, cycleID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load cycle objectives")
		return nil, err
	}
	return &CycleDetail{Cycle: c, Objectives: objectives}, nil
}

// ObjectiveCycleID lets the key result service resolve an objective's cycle.
func (s *objectiveService) ObjectiveCycleID(ctx context.Context, objectiveID uint) (*uint, error) {
	cycleID, err := s.repo.FindCycleID(ctx, objectiveID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrObjectiveNotFound
		}
		return nil, err
	}
	return cycleID, nil
}
