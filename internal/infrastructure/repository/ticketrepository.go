package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gearshop/internal/domain/ticket"
	"gearshop/internal/infrastructure/persistence/mappers"
	"gearshop/internal/infrastructure/persistence/models"
	"gearshop/internal/shared/db"
	apperrors "gearshop/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError(
				fmt.Sprintf("no ticket found with id: %d", id),
			)
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("customer_id = ?", customerID).
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list customer tickets: %w", err)
	}

	return r.toDomainSlice(ticketModels)
}

func (r *TicketRepository) MechanicIDs(ctx context.Context, ticketID uint) ([]uint, error) {
	var ids []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketMechanicModel{}).
		Where("ticket_id = ?", ticketID).
		Pluck("mechanic_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket mechanic ids: %w", err)
	}

	return ids, nil
}

func (r *TicketRepository) ListMechanics(ctx context.Context, ticketID uint) ([]ticket.AssignedMechanic, error) {
	var assigned []ticket.AssignedMechanic
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketMechanicModel{}).
		Select("mechanics.id AS id, mechanics.name AS name").
		Joins("JOIN mechanics ON mechanics.id = ticket_mechanics.mechanic_id").
		Where("ticket_mechanics.ticket_id = ?", ticketID).
		Order("mechanics.id ASC").
		Scan(&assigned).Error; err != nil {
		return nil, fmt.Errorf("failed to list ticket mechanics: %w", err)
	}

	return assigned, nil
}

func (r *TicketRepository) AssignMechanic(ctx context.Context, ticketID, mechanicID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := &models.TicketMechanicModel{
		TicketID:   ticketID,
		MechanicID: mechanicID,
	}
	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("mechanic is already assigned to this ticket")
		}
		return fmt.Errorf("failed to assign mechanic: %w", err)
	}

	return nil
}

func (r *TicketRepository) RemoveMechanic(ctx context.Context, ticketID, mechanicID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("ticket_id = ? AND mechanic_id = ?", ticketID, mechanicID).
		Delete(&models.TicketMechanicModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to remove mechanic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError(
			fmt.Sprintf("mechanic id: %d is not assigned to ticket id: %d", mechanicID, ticketID),
		)
	}

	return nil
}

// LinkedInventoryIDs returns the subset of inventoryIDs already attached
// to the ticket, via a single IN query.
func (r *TicketRepository) LinkedInventoryIDs(ctx context.Context, ticketID uint, inventoryIDs []uint) ([]uint, error) {
	if len(inventoryIDs) == 0 {
		return nil, nil
	}

	var linked []uint
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Model(&models.TicketInventoryModel{}).
		Where("ticket_id = ? AND inventory_id IN ?", ticketID, inventoryIDs).
		Pluck("inventory_id", &linked).Error; err != nil {
		return nil, fmt.Errorf("failed to look up linked inventory ids: %w", err)
	}

	return linked, nil
}

func (r *TicketRepository) AddInventoryLines(ctx context.Context, ticketID uint, lines []ticket.InventoryLine) error {
	if len(lines) == 0 {
		return nil
	}

	rows := make([]models.TicketInventoryModel, len(lines))
	for i, line := range lines {
		rows[i] = models.TicketInventoryModel{
			TicketID:    ticketID,
			InventoryID: line.InventoryID,
			Quantity:    line.Quantity,
		}
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&rows).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(
				"one or more inventory items were already associated with this ticket",
			)
		}
		return fmt.Errorf("failed to add inventory lines: %w", err)
	}

	return nil
}

func (r *TicketRepository) ListInventoryLines(ctx context.Context, ticketID uint) ([]ticket.InventoryLine, error) {
	var rows []models.TicketInventoryModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("inventory_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list inventory lines: %w", err)
	}

	lines := make([]ticket.InventoryLine, len(rows))
	for i, row := range rows {
		lines[i] = ticket.InventoryLine{
			InventoryID: row.InventoryID,
			Quantity:    row.Quantity,
		}
	}

	return lines, nil
}

func (r *TicketRepository) toDomainSlice(ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}
	return tickets, nil
}
