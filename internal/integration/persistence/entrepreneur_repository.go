// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizportal/backend/internal/application/adapter"
	"github.com/bizportal/backend/internal/domain/entity"
	domainerror "github.com/bizportal/backend/internal/domain/error"
	"github.com/bizportal/backend/internal/integration/persistence/model"
)

// entrepreneurRepository implements the adapter.EntrepreneurRepository interface.
type entrepreneurRepository struct {
	db *gorm.DB
}

// NewEntrepreneurRepository creates a new entrepreneur repository instance.
func NewEntrepreneurRepository(db *gorm.DB) adapter.EntrepreneurRepository {
	return &entrepreneurRepository{
		db: db,
	}
}

// Save writes one entrepreneur by ID. Goals are not touched.
func (r *entrepreneurRepository) Save(ctx context.Context, entrepreneur *entity.Entrepreneur) error {
	return saveEntrepreneurs(r.db.WithContext(ctx), []*entity.Entrepreneur{entrepreneur})
}

// Delete removes one entrepreneur and its goals.
func (r *entrepreneurRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteEntrepreneurs(tx, []uuid.UUID{id}, true)
	})
}

// FindByID retrieves an entrepreneur with its goals.
func (r *entrepreneurRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Entrepreneur, error) {
	var entrepreneurModel model.EntrepreneurModel
	result := r.withGoals(ctx).Where("id = ?", id).First(&entrepreneurModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntrepreneurNotFound
		}
		return nil, result.Error
	}
	return entrepreneurModel.ToEntity(), nil
}

// FindAll returns every entrepreneur with goals in insertion order.
func (r *entrepreneurRepository) FindAll(ctx context.Context) ([]*entity.Entrepreneur, error) {
	var entrepreneurModels []model.EntrepreneurModel
	result := r.withGoals(ctx).Order("start_date ASC, created_at ASC").Find(&entrepreneurModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entrepreneurs := make([]*entity.Entrepreneur, len(entrepreneurModels))
	for i := range entrepreneurModels {
		entrepreneurs[i] = entrepreneurModels[i].ToEntity()
	}
	return entrepreneurs, nil
}

// ReplaceAll overwrites the entire collection, goals included.
func (r *entrepreneurRepository) ReplaceAll(ctx context.Context, entrepreneurs []*entity.Entrepreneur) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		global := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := global.Delete(&model.GoalModel{}).Error; err != nil {
			return err
		}
		if err := global.Delete(&model.EntrepreneurModel{}).Error; err != nil {
			return err
		}
		if err := saveEntrepreneurs(tx, entrepreneurs); err != nil {
			return err
		}
		for _, e := range entrepreneurs {
			for i := range e.Goals {
				if err := tx.Create(model.GoalFromEntity(&e.Goals[i], i)).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// SaveGoal writes one goal of an entrepreneur, appending it when new.
func (r *entrepreneurRepository) SaveGoal(ctx context.Context, goal *entity.Goal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveGoal(tx, goal)
	})
}

// DeleteGoal removes one goal of an entrepreneur.
func (r *entrepreneurRepository) DeleteGoal(ctx context.Context, entrepreneurID, goalID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("entrepreneur_id = ?", entrepreneurID).
		Delete(&model.GoalModel{}, "id = ?", goalID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}

func (r *entrepreneurRepository) withGoals(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Goals", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, created_at ASC")
	})
}

func saveEntrepreneurs(db *gorm.DB, entrepreneurs []*entity.Entrepreneur) error {
	if len(entrepreneurs) == 0 {
		return nil
	}
	models := make([]*model.EntrepreneurModel, len(entrepreneurs))
	for i, e := range entrepreneurs {
		models[i] = model.EntrepreneurFromEntity(e)
	}
	return db.Omit("Goals").Clauses(upsertByID).CreateInBatches(models, replaceBatchSize).Error
}

// saveGoal keeps the position of an existing goal and appends a new one.
func saveGoal(tx *gorm.DB, goal *entity.Goal) error {
	var existing model.GoalModel
	err := tx.Where("id = ?", goal.ID).First(&existing).Error
	switch {
	case err == nil:
		return tx.Save(model.GoalFromEntity(goal, existing.Position)).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		var next int64
		if err := tx.Model(&model.GoalModel{}).
			Where("entrepreneur_id = ?", goal.EntrepreneurID).
			Select("COALESCE(MAX(position) + 1, 0)").
			Scan(&next).Error; err != nil {
			return err
		}
		return tx.Create(model.GoalFromEntity(goal, int(next))).Error
	default:
		return err
	}
}

// deleteEntrepreneurs removes entrepreneurs with their goals. When strict, a
// missing ID is reported as not found.
func deleteEntrepreneurs(tx *gorm.DB, ids []uuid.UUID, strict bool) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("entrepreneur_id IN ?", ids).Delete(&model.GoalModel{}).Error; err != nil {
		return err
	}
	result := tx.Where("id IN ?", ids).Delete(&model.EntrepreneurModel{})
	if result.Error != nil {
		return result.Error
	}
	if strict && result.RowsAffected == 0 {
		return domainerror.ErrEntrepreneurNotFound
	}
	return nil
}
