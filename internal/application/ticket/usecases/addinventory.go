package usecases

import (
	"context"
	"sort"

	"gearshop/internal/domain/inventory"
	"gearshop/internal/domain/ticket"
	"gearshop/internal/shared/errors"
	"gearshop/internal/shared/logger"
)

type InventoryLineInput struct {
	InventoryID uint
	Quantity    int
}

type AddInventoryCommand struct {
	TicketID uint
	Lines    []InventoryLineInput
}

type AddInventoryResult struct {
	TicketID              uint
	AddedInventoryIDs     []uint
	DuplicateInventoryIDs []uint
	RequestedCount        int
	AddedCount            int
	DuplicateCount        int
}

// AddInventoryUseCase attaches inventory parts to a ticket in bulk.
// The operation is all-or-nothing on unknown part ids and idempotent
// on parts that are already attached.
type AddInventoryUseCase struct {
	ticketRepo    ticket.Repository
	inventoryRepo inventory.Repository
	txRunner      TransactionRunner
	logger        logger.Interface
}

func NewAddInventoryUseCase(
	ticketRepo ticket.Repository,
	inventoryRepo inventory.Repository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *AddInventoryUseCase {
	return &AddInventoryUseCase{
		ticketRepo:    ticketRepo,
		inventoryRepo: inventoryRepo,
		txRunner:      txRunner,
		logger:        logger,
	}
}

func (uc *AddInventoryUseCase) Execute(ctx context.Context, cmd AddInventoryCommand) (*AddInventoryResult, error) {
	if len(cmd.Lines) == 0 {
		return nil, errors.NewValidationError("at least one inventory item is required")
	}

	// Reject payloads that name the same part twice before touching
	// the database.
	requested := make([]uint, 0, len(cmd.Lines))
	quantities := make(map[uint]int, len(cmd.Lines))
	for _, line := range cmd.Lines {
		if line.InventoryID == 0 {
			return nil, errors.NewValidationError("inventory id must be a positive integer")
		}
		if line.Quantity <= 0 {
			return nil, errors.NewValidationError("quantity must be a positive integer")
		}
		if _, seen := quantities[line.InventoryID]; seen {
			return nil, errors.NewValidationError("duplicate inventory ids in request payload")
		}
		requested = append(requested, line.InventoryID)
		quantities[line.InventoryID] = line.Quantity
	}

	if _, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	// All requested parts must exist; otherwise nothing is attached
	// and the missing ids are reported together.
	existingIDs, err := uc.inventoryRepo.FindExistingIDs(ctx, requested)
	if err != nil {
		uc.logger.Errorw("failed to look up inventory ids", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	existing := make(map[uint]bool, len(existingIDs))
	for _, id := range existingIDs {
		existing[id] = true
	}

	var missing []uint
	for _, id := range requested {
		if !existing[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })
		return nil, errors.NewNotFoundError("one or more inventory items do not exist").
			WithData(map[string]interface{}{"missing_ids": missing})
	}

	linkedIDs, err := uc.ticketRepo.LinkedInventoryIDs(ctx, cmd.TicketID, requested)
	if err != nil {
		uc.logger.Errorw("failed to look up linked inventory", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}
	linked := make(map[uint]bool, len(linkedIDs))
	for _, id := range linkedIDs {
		linked[id] = true
	}

	added := make([]uint, 0, len(requested))
	duplicates := make([]uint, 0)
	lines := make([]ticket.InventoryLine, 0, len(requested))
	for _, id := range requested {
		if linked[id] {
			duplicates = append(duplicates, id)
			continue
		}
		added = append(added, id)
		lines = append(lines, ticket.InventoryLine{
			InventoryID: id,
			Quantity:    quantities[id],
		})
	}

	if len(lines) > 0 {
		err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
			return uc.ticketRepo.AddInventoryLines(txCtx, cmd.TicketID, lines)
		})
		if err != nil {
			// A concurrent request attached one of the parts between
			// the read and the insert.
			if errors.IsConflictError(err) {
				return nil, err
			}
			uc.logger.Errorw("failed to add inventory lines", "ticket_id", cmd.TicketID, "error", err)
			return nil, err
		}
	}

	uc.logger.Infow("inventory attached to ticket",
		"ticket_id", cmd.TicketID,
		"added", len(added),
		"duplicates", len(duplicates))

	sort.Slice(added, func(i, j int) bool { return added[i] < added[j] })
	sort.Slice(duplicates, func(i, j int) bool { return duplicates[i] < duplicates[j] })

	return &AddInventoryResult{
		TicketID:              cmd.TicketID,
		AddedInventoryIDs:     added,
		DuplicateInventoryIDs: duplicates,
		RequestedCount:        len(requested),
		AddedCount:            len(added),
		DuplicateCount:        len(duplicates),
	}, nil
}
