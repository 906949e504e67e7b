package role

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RoleRepository interface {
	List(ctx context.Context) ([]Role, error)
	EnsureDefaults(ctx context.Context) error
}

type roleRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) List(ctx context.Context) ([]Role, error) {
	var roles []Role
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *roleRepository) EnsureDefaults(ctx context.Context) error {
	rows := make([]Role, 0, len(AllRoles))
	for _, id := range AllRoles {
		rows = append(rows, Role{ID: id, Name: id.String()})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}
