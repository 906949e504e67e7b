package cycle

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type CycleRepository interface {
	Create(ctx context.Context, c *Cycle) error
	FindAll(ctx context.Context) ([]Cycle, error)
	FindByID(ctx context.Context, id uint) (*Cycle, error)
	FindFirstActive(ctx context.Context) (*Cycle, error)
	FindLatest(ctx context.Context) (*Cycle, error)
	Update(ctx context.Context, c *Cycle) error
	Delete(ctx context.Context, id uint) error
}

type cycleRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) CycleRepository {
	return &cycleRepository{db: db}
}

func (r *cycleRepository) Create(ctx context.Context, c *Cycle) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cycleRepository) FindAll(ctx context.Context) ([]Cycle, error) {
	var cycles []Cycle
	if err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Order("id DESC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (r *cycleRepository) FindByID(ctx context.Context, id uint) (*Cycle, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *cycleRepository) FindFirstActive(ctx context.Context) (*Cycle, error) {
	return r.first(r.db.WithContext(ctx).Where("status = ?", CycleStatusActive).Order("id ASC"))
}

func (r *cycleRepository) FindLatest(ctx context.Context) (*Cycle, error) {
	return r.first(r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC"))
}

func (r *cycleRepository) first(q *gorm.DB) (*Cycle, error) {
	var c Cycle
	if err := q.First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *cycleRepository) Update(ctx context.Context, c *Cycle) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cycleRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&Cycle{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
