package service

import (
	"context"

	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/store"
)

// ExpenseService owns expense CRUD. Every operation is scoped by the
// authenticated user id; a client-supplied owner is never trusted.
type ExpenseService struct {
	Store store.Store
}

func (s *ExpenseService) List(ctx context.Context, userID int64) ([]domain.Expense, error) {
	return s.Store.Expenses().ListByUser(ctx, userID)
}

func (s *ExpenseService) Get(ctx context.Context, id, userID int64) (domain.Expense, error) {
	return s.Store.Expenses().GetByID(ctx, id, userID)
}

// Create inserts the expense and reads it back joined with its category.
// Insert and read-back share a transaction so the response reflects exactly
// the row that was written.
func (s *ExpenseService) Create(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	var created domain.Expense
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		id, err := tx.Expenses().Create(ctx, e)
		if err != nil {
			return err
		}
		created, err = tx.Expenses().GetByID(ctx, id, e.UserID)
		return err
	})
	if err != nil {
		return domain.Expense{}, err
	}
	return created, nil
}

// Update mutates an owned expense. Zero rows affected means the row is
// missing or owned by someone else; both are ErrNotFound.
func (s *ExpenseService) Update(ctx context.Context, e domain.Expense) (domain.Expense, error) {
	var updated domain.Expense
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		affected, err := tx.Expenses().Update(ctx, e)
		if err != nil {
			return err
		}
		if affected == 0 {
			return store.ErrNotFound
		}
		updated, err = tx.Expenses().GetByID(ctx, e.ID, e.UserID)
		return err
	})
	if err != nil {
		return domain.Expense{}, err
	}
	return updated, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id, userID int64) error {
	affected, err := s.Store.Expenses().Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
