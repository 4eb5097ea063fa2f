package mechanic

import "context"

type Repository interface {
	Save(ctx context.Context, mechanic *Mechanic) error
	Update(ctx context.Context, mechanic *Mechanic) error
	// Delete removes the mechanic and its ticket association rows.
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Mechanic, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*Mechanic, error)
}
