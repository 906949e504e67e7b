package department

import (
	"context"
	"errors"

	"github.com/saulo-duarte/okrun-lambda/internal/apperror"
	"github.com/saulo-duarte/okrun-lambda/internal/config"
	"github.com/saulo-duarte/okrun-lambda/internal/validation"
)

var ErrDepartmentNotFound = apperror.NotFound("department")

type DepartmentService interface {
	Create(ctx context.Context, in DepartmentInput) (*Department, error)
	List(ctx context.Context) ([]Department, error)
	Get(ctx context.Context, id uint) (*Department, error)
	Update(ctx context.Context, id uint, in DepartmentInput) (*Department, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, id uint) error
}

type departmentService struct {
	repo DepartmentRepository
}

func NewService(repo DepartmentRepository) DepartmentService {
	return &departmentService{repo: repo}
}

func (s *departmentService) Create(ctx context.Context, in DepartmentInput) (*Department, error) {
	log := config.WithContext(ctx)

	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	d := &Department{Name: in.Name}
	if in.Description != nil {
		d.Description = *in.Description
	}

	if err := s.repo.Create(ctx, d); err != nil {
		log.WithError(err).Error("Failed to create department")
		return nil, err
	}

	log.WithField("department_id", d.ID).Info("Department created")
	return d, nil
}

func (s *departmentService) List(ctx context.Context) ([]Department, error) {
	return s.repo.FindAll(ctx)
}

func (s *departmentService) Get(ctx context.Context, id uint) (*Department, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrDepartmentNotFound
		}
		return nil, err
	}
	return d, nil
}

func (s *departmentService) Update(ctx context.Context, id uint, in DepartmentInput) (*Department, error) {
	log := config.WithContext(ctx)

	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	d.Name = in.Name
	if in.Description != nil {
		d.Description = *in.Description
	} else {
		d.Description = ""
	}

	if err := s.repo.Update(ctx, d); err != nil {
		log.WithError(err).Error("Failed to update department")
		return nil, err
	}

	log.WithField("department_id", d.ID).Info("Department updated")
	return d, nil
}

func (s *departmentService) Delete(ctx context.Context, id uint) error {
	log := config.WithContext(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrDepartmentNotFound
		}
		log.WithError(err).Error("Failed to delete department")
		return err
	}

	log.WithField("department_id", id).Info("Department deleted")
	return nil
}

func (s *departmentService) Exists(ctx context.Context, id uint) error {
	_, err := s.Get(ctx, id)
	return err
}
