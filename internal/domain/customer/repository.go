package customer

import "context"

type Repository interface {
	Save(ctx context.Context, customer *Customer) error
	Update(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]*Customer, error)
}
