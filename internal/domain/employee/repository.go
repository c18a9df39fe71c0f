package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository is the storage contract for employee records. The store
// only knows about primary-key uniqueness; every other business rule
// lives in the service.
type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (Employee, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindByEmail(ctx context.Context, email string) (Employee, error)
	FindByActiveTrue(ctx context.Context) ([]Employee, error)
	FindByPosition(ctx context.Context, position string) ([]Employee, error)
	SearchByName(ctx context.Context, name string) ([]Employee, error)
	FindHiredInYear(ctx context.Context, year int) ([]Employee, error)
	FindEarningAtLeast(ctx context.Context, amount decimal.Decimal) ([]Employee, error)
	CountActiveByPosition(ctx context.Context, position string) (int64, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Deactivate(ctx context.Context, id string) error
	DeleteByID(ctx context.Context, id string) error
}

// TxManager runs a function inside a single storage transaction,
// passing a context that scopes repository calls to that transaction.
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
