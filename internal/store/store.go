package store

import (
	"context"
	"errors"

	"github.com/spendwise/spendwise/internal/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrInvalidReference means a write pointed at a row that doesn't
	// exist, e.g. an expense referencing an unknown category.
	ErrInvalidReference = errors.New("store: invalid reference")
)

// Store is the root data access interface. Concrete drivers (sqlite today,
// postgres conceivably) implement this. It exposes sub-repositories to keep
// concerns tidy and testable.
type Store interface {
	Users() Users
	Expenses() Expenses
	Categories() Categories
	Stats() Stats

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. A non-nil error from fn
	// rolls back, nil commits.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user and returns the assigned row id.
	// A duplicate email surfaces as ErrAlreadyExists; uniqueness is
	// enforced by the schema, not application locking.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// GetUserByEmail is used during login. The caller is expected to
	// normalize the email to lowercase first.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type Expenses interface {
	// ListByUser returns all of a user's expenses joined with category
	// name/color, newest date first.
	ListByUser(ctx context.Context, userID int64) ([]domain.Expense, error)

	// GetByID returns one expense. The userID guard means a foreign row
	// is indistinguishable from a missing one (ErrNotFound for both).
	GetByID(ctx context.Context, id, userID int64) (domain.Expense, error)

	// Create inserts a new expense and returns the assigned row id.
	Create(ctx context.Context, e domain.Expense) (int64, error)

	// Update mutates title/amount/category/description/date and bumps
	// updated_at, returning rows affected (0 means not found or not owned).
	Update(ctx context.Context, e domain.Expense) (int64, error)

	// Delete removes an owned expense, returning rows affected.
	Delete(ctx context.Context, id, userID int64) (int64, error)
}

type Categories interface {
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]domain.Category, error)

	// GetByID returns one category.
	GetByID(ctx context.Context, id int64) (domain.Category, error)

	// Create inserts a category; a duplicate name is ErrAlreadyExists.
	Create(ctx context.Context, name, color string) (int64, error)

	// Update renames/recolors a category, returning rows affected.
	// A duplicate name is ErrAlreadyExists.
	Update(ctx context.Context, id int64, name, color string) (int64, error)

	// Delete removes a category, returning rows affected.
	Delete(ctx context.Context, id int64) (int64, error)
}

type Stats interface {
	// Summary aggregates one user's expenses: grand total, count,
	// per-category breakdown and the five most recent records.
	Summary(ctx context.Context, userID int64) (domain.Stats, error)
}
