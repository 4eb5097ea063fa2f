package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gearshop/internal/domain/mechanic"
	"gearshop/internal/infrastructure/persistence/mappers"
	"gearshop/internal/infrastructure/persistence/models"
	"gearshop/internal/shared/db"
	apperrors "gearshop/internal/shared/errors"
)

type MechanicRepository struct {
	db     *gorm.DB
	mapper mappers.MechanicMapper
}

func NewMechanicRepository(db *gorm.DB) *MechanicRepository {
	return &MechanicRepository{
		db:     db,
		mapper: mappers.NewMechanicMapper(),
	}
}

func (r *MechanicRepository) Save(ctx context.Context, m *mechanic.Mechanic) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewValidationError(
				fmt.Sprintf("mechanic with email %s already exists", m.Email()),
			)
		}
		return fmt.Errorf("failed to save mechanic: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MechanicRepository) Update(ctx context.Context, m *mechanic.Mechanic) error {
	model := r.mapper.ToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MechanicModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewValidationError(
				fmt.Sprintf("mechanic with email %s already exists", m.Email()),
			)
		}
		return fmt.Errorf("failed to update mechanic: %w", result.Error)
	}

	return nil
}

// Delete removes the mechanic together with its ticket association rows,
// in one transaction so a failure leaves both intact.
func (r *MechanicRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("mechanic_id = ?", id).
			Delete(&models.TicketMechanicModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete mechanic associations: %w", err)
		}

		result := tx.Delete(&models.MechanicModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete mechanic: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError(
				fmt.Sprintf("no mechanic found with id: %d", id),
			)
		}
		return nil
	})
}

func (r *MechanicRepository) FindByID(ctx context.Context, id uint) (*mechanic.Mechanic, error) {
	var model models.MechanicModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("no mechanic found with id: %d", id),
			)
		}
		return nil, fmt.Errorf("failed to find mechanic: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *MechanicRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.MechanicModel{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check mechanic email: %w", err)
	}

	return count > 0, nil
}

func (r *MechanicRepository) List(ctx context.Context) ([]*mechanic.Mechanic, error) {
	var mechanicModels []models.MechanicModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Find(&mechanicModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list mechanics: %w", err)
	}

	mechanics := make([]*mechanic.Mechanic, len(mechanicModels))
	for i, model := range mechanicModels {
		m, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		mechanics[i] = m
	}

	return mechanics, nil
}
