package inventory

import "context"

type Repository interface {
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	// Delete removes the item and cascades deletion of its ticket
	// association rows.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Item, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	// FindExistingIDs returns the subset of ids that exist, in one
	// set-membership query.
	FindExistingIDs(ctx context.Context, ids []uint) ([]uint, error)
	// List returns a page of items plus the total count. A zero PageSize
	// returns the full unpaginated set.
	List(ctx context.Context, page, pageSize int) ([]*Item, int64, error)
}
