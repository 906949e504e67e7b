package objective

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saulo-duarte/okrun-lambda/internal/keyresult"
)

var ErrNotFound = errors.New("record not found")

type ObjectiveRepository interface {
	// CreateWithKeyResults inserts o and krs in one transaction. The key
	// results get o's id before insert.
	CreateWithKeyResults(ctx context.Context, o *Objective, krs []keyresult.KeyResult) error
	FindPage(ctx context.Context, page, perPage int) ([]Objective, int64, error)
	FindByID(ctx context.Context, id uint) (*Objective, error)
	FindByCycle(ctx context.Context, cycleID uint) ([]Objective, error)
	FindCycleID(ctx context.Context, id uint) (*uint, error)
	Update(ctx context.Context, o *Objective) error
	// Delete removes the objective and its key results in one transaction.
	Delete(ctx context.Context, id uint) error
}

type objectiveRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ObjectiveRepository {
	return &objectiveRepository{db: db}
}

func (r *objectiveRepository) CreateWithKeyResults(ctx context.Context, o *Objective, krs []keyresult.KeyResult) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
			return err
		}

		for i := range krs {
			krs[i].ObjectiveID = o.ID
			if err := tx.Omit(clause.Associations).Create(&krs[i]).Error; err != nil {
				return err
			}
		}

		o.KeyResults = krs
		return nil
	})
}

func (r *objectiveRepository) FindPage(ctx context.Context, page, perPage int) ([]Objective, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Objective{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var objectives []Objective
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Cycle").
		Preload("KeyResults", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Order("id ASC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&objectives).Error; err != nil {
		return nil, 0, err
	}
	return objectives, total, nil
}

func (r *objectiveRepository) FindByID(ctx context.Context, id uint) (*Objective, error) {
	var o Objective
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Cycle").
		Preload("KeyResults", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *objectiveRepository) FindByCycle(ctx context.Context, cycleID uint) ([]Objective, error) {
	var objectives []Objective
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("KeyResults", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("cycle_id = ?", cycleID).
		Order("id ASC").
		Find(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}

func (r *objectiveRepository) FindCycleID(ctx context.Context, id uint) (*uint, error) {
	var o Objective
	if err := r.db.WithContext(ctx).Select("id", "cycle_id").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o.CycleID, nil
}

func (r *objectiveRepository) Update(ctx context.Context, o *Objective) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(o).Error
}

func (r *objectiveRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("objective_id = ?", id).Delete(&keyresult.KeyResult{}).Error; err != nil {
			return err
		}

		res := tx.Delete(&Objective{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
