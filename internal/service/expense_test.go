package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/store"
	"github.com/spendwise/spendwise/pkg/jwtx"
)

// fixture registers two users and returns their ids plus the seeded
// "Food & Dining" category.
func expenseFixture(t *testing.T) (store.Store, int64, int64, domain.Category) {
	t.Helper()

	st := newTestStore(t)
	auth := &AuthService{
		Store:      st,
		Tokens:     jwtx.New([]byte("expense-test-secret"), "spendwise", jwtx.DefaultTTL),
		BcryptCost: bcrypt.MinCost,
	}

	ctx := context.Background()
	alice, err := auth.Register(ctx, "Alice", "alice@x.com", "secret1")
	require.NoError(t, err)
	bob, err := auth.Register(ctx, "Bob", "bob@x.com", "secret2")
	require.NoError(t, err)

	cats, err := st.Categories().List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, cats, "migrations should seed default categories")

	var food domain.Category
	for _, c := range cats {
		if c.Name == "Food & Dining" {
			food = c
		}
	}
	require.NotZero(t, food.ID)

	return st, alice.ID, bob.ID, food
}

func TestExpenseCRUD(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st, aliceID, _, food := expenseFixture(t)
	svc := &ExpenseService{Store: st}

	created, err := svc.Create(ctx, domain.Expense{
		UserID:      aliceID,
		Title:       "Groceries",
		Amount:      42.50,
		CategoryID:  food.ID,
		Description: "weekly shop",
		Date:        "2025-06-01",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "Food & Dining", created.CategoryName)
	require.Equal(t, food.Color, created.CategoryColor)

	got, err := svc.Get(ctx, created.ID, aliceID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, 42.50, got.Amount)

	updated, err := svc.Update(ctx, domain.Expense{
		ID:          created.ID,
		UserID:      aliceID,
		Title:       "Groceries and snacks",
		Amount:      55.00,
		CategoryID:  food.ID,
		Description: "",
		Date:        "2025-06-02",
	})
	require.NoError(t, err)
	require.Equal(t, "Groceries and snacks", updated.Title)
	require.Equal(t, 55.00, updated.Amount)
	require.Equal(t, "2025-06-02", updated.Date)

	list, err := svc.List(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, created.ID, aliceID))

	_, err = svc.Get(ctx, created.ID, aliceID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestExpenseOwnershipIsolation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st, aliceID, bobID, food := expenseFixture(t)
	svc := &ExpenseService{Store: st}

	created, err := svc.Create(ctx, domain.Expense{
		UserID:     aliceID,
		Title:      "Dinner",
		Amount:     30,
		CategoryID: food.ID,
		Date:       "2025-06-01",
	})
	require.NoError(t, err)

	// Bob cannot see, mutate or delete Alice's expense; every path looks
	// like the row doesn't exist.
	_, err = svc.Get(ctx, created.ID, bobID)
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = svc.Update(ctx, domain.Expense{
		ID: created.ID, UserID: bobID,
		Title: "Hijacked", Amount: 1, CategoryID: food.ID, Date: "2025-06-01",
	})
	require.ErrorIs(t, err, store.ErrNotFound)

	err = svc.Delete(ctx, created.ID, bobID)
	require.ErrorIs(t, err, store.ErrNotFound)

	// Alice still owns the untouched row.
	got, err := svc.Get(ctx, created.ID, aliceID)
	require.NoError(t, err)
	require.Equal(t, "Dinner", got.Title)

	list, err := svc.List(ctx, bobID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestExpenseUnknownCategory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st, aliceID, _, _ := expenseFixture(t)
	svc := &ExpenseService{Store: st}

	_, err := svc.Create(ctx, domain.Expense{
		UserID:     aliceID,
		Title:      "Mystery",
		Amount:     5,
		CategoryID: 9999,
		Date:       "2025-06-01",
	})
	require.ErrorIs(t, err, store.ErrInvalidReference)
}

func TestExpenseListOrdering(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st, aliceID, _, food := expenseFixture(t)
	svc := &ExpenseService{Store: st}

	for _, date := range []string{"2025-01-15", "2025-03-01", "2025-02-10"} {
		_, err := svc.Create(ctx, domain.Expense{
			UserID:     aliceID,
			Title:      "on " + date,
			Amount:     10,
			CategoryID: food.ID,
			Date:       date,
		})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx, aliceID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "2025-03-01", list[0].Date)
	require.Equal(t, "2025-02-10", list[1].Date)
	require.Equal(t, "2025-01-15", list[2].Date)
}
