package orders

//go:generate mockgen -source=repo.go -destination=ordersmock/repo_mock.go -package=ordersmock

import "context"

// Repository is the order store. Implementations live in internal/postgres
// and internal/sqlite.
type Repository interface {
	// Insert stores o and returns the id assigned by the store.
	Insert(ctx context.Context, o Order) (int64, error)
	// List returns all orders, newest (highest id) first.
	List(ctx context.Context) ([]Order, error)
	// UpdateStatus overwrites the status of one order and returns
	// apperr.ErrNotFound when the id does not exist.
	UpdateStatus(ctx context.Context, id int64, status Status) error
}

// Notifier is told about every order that was durably stored.
type Notifier interface {
	OrderPlaced(ctx context.Context, o Order) error
}
