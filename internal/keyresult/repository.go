package keyresult

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type KeyResultRepository interface {
	Create(ctx context.Context, kr *KeyResult) error
	FindAllByObjective(ctx context.Context, objectiveID uint) ([]KeyResult, error)
	FindByIDAndObjective(ctx context.Context, id, objectiveID uint) (*KeyResult, error)
	Update(ctx context.Context, kr *KeyResult) error
	Delete(ctx context.Context, id, objectiveID uint) error
}

type keyResultRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) KeyResultRepository {
	return &keyResultRepository{db: db}
}

func (r *keyResultRepository) Create(ctx context.Context, kr *KeyResult) error {
	return r.db.WithContext(ctx).Create(kr).Error
}

func (r *keyResultRepository) FindAllByObjective(ctx context.Context, objectiveID uint) ([]KeyResult, error) {
	var krs []KeyResult
	if err := r.db.WithContext(ctx).
		Where("objective_id = ?", objectiveID).
		Order("id ASC").
		Find(&krs).Error; err != nil {
		return nil, err
	}
	return krs, nil
}

func (r *keyResultRepository) FindByIDAndObjective(ctx context.Context, id, objectiveID uint) (*KeyResult, error) {
	var kr KeyResult
	if err := r.db.WithContext(ctx).
		Where("id = ? AND objective_id = ?", id, objectiveID).
		First(&kr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &kr, nil
}

func (r *keyResultRepository) Update(ctx context.Context, kr *KeyResult) error {
	return r.db.WithContext(ctx).Save(kr).Error
}

func (r *keyResultRepository) Delete(ctx context.Context, id, objectiveID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND objective_id = ?", id, objectiveID).
		Delete(&KeyResult{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
