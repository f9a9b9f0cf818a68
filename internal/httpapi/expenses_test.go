package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type expenseJSON struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"user_id"`
	Title         string  `json:"title"`
	Amount        float64 `json:"amount"`
	CategoryID    int64   `json:"category_id"`
	Description   string  `json:"description"`
	Date          string  `json:"date"`
	CategoryName  string  `json:"category_name"`
	CategoryColor string  `json:"category_color"`
}

// firstCategoryID grabs a seeded category to hang expenses off.
func firstCategoryID(t *testing.T, api *testAPI) int64 {
	t.Helper()

	status, env := api.do(http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, status)

	var categories []struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	require.NotEmpty(t, categories)
	return categories[0].ID
}

func TestExpenseCRUD(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	token := api.signup("Alice", "alice@x.com", "secret1")
	catID := firstCategoryID(t, api)

	// An account starts with no expenses and an empty JSON array, not null.
	status, env := api.do(http.MethodGet, "/api/expenses", token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "[]", string(env.Data))

	status, env = api.do(http.MethodPost, "/api/expenses", token, map[string]any{
		"title":       "Groceries",
		"amount":      42.50,
		"category_id": catID,
		"description": "weekly shop",
		"date":        "2026-08-20",
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "Expense created successfully", env.Message)

	var created expenseJSON
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotZero(t, created.ID)
	require.Equal(t, "Groceries", created.Title)
	require.Equal(t, 42.50, created.Amount)
	require.Equal(t, catID, created.CategoryID)
	require.Equal(t, "2026-08-20", created.Date)
	require.NotEmpty(t, created.CategoryName)
	require.NotEmpty(t, created.CategoryColor)

	status, env = api.do(http.MethodGet, fmt.Sprintf("/api/expenses/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, status)

	var fetched expenseJSON
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	require.Equal(t, created.ID, fetched.ID)

	status, env = api.do(http.MethodPut, fmt.Sprintf("/api/expenses/%d", created.ID), token, map[string]any{
		"title":       "Groceries and wine",
		"amount":      55.00,
		"category_id": catID,
		"date":        "2026-08-21",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Expense updated successfully", env.Message)

	var updated expenseJSON
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Equal(t, "Groceries and wine", updated.Title)
	require.Equal(t, 55.00, updated.Amount)
	require.Equal(t, "2026-08-21", updated.Date)

	status, env = api.do(http.MethodDelete, fmt.Sprintf("/api/expenses/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Expense deleted successfully", env.Message)

	status, _ = api.do(http.MethodGet, fmt.Sprintf("/api/expenses/%d", created.ID), token, nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestExpenseOwnership(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	alice := api.signup("Alice", "alice@x.com", "secret1")
	bob := api.signup("Bob", "bob@x.com", "secret2")
	catID := firstCategoryID(t, api)

	status, env := api.do(http.MethodPost, "/api/expenses", alice, map[string]any{
		"title": "Rent", "amount": 900.0, "category_id": catID, "date": "2026-08-01",
	})
	require.Equal(t, http.StatusCreated, status)

	var created expenseJSON
	require.NoError(t, json.Unmarshal(env.Data, &created))
	path := fmt.Sprintf("/api/expenses/%d", created.ID)

	// Bob cannot see, change or remove Alice's expense. Every probe reads
	// like the row doesn't exist.
	status, env = api.do(http.MethodGet, path, bob, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Expense not found", env.Message)

	status, _ = api.do(http.MethodPut, path, bob, map[string]any{
		"title": "Hijacked", "amount": 1.0, "category_id": catID, "date": "2026-08-01",
	})
	require.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(http.MethodDelete, path, bob, nil)
	require.Equal(t, http.StatusNotFound, status)

	// Still intact for Alice.
	status, _ = api.do(http.MethodGet, path, alice, nil)
	require.Equal(t, http.StatusOK, status)

	status, env = api.do(http.MethodGet, "/api/expenses", bob, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "[]", string(env.Data))
}

func TestExpenseValidation(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	token := api.signup("Alice", "alice@x.com", "secret1")

	status, env := api.do(http.MethodPost, "/api/expenses", token, map[string]any{
		"title": "", "amount": -5.0, "category_id": 0, "date": "21-08-2026",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Validation failed", env.Message)

	messages := make(map[string]string, len(env.Errors))
	for _, fe := range env.Errors {
		messages[fe.Field] = fe.Message
	}
	require.Equal(t, "Title is required", messages["title"])
	require.Equal(t, "Amount must be a positive number", messages["amount"])
	require.Equal(t, "Valid category ID is required", messages["category_id"])
	require.Equal(t, "Valid date is required", messages["date"])

	// A well-formed body pointing at a category that doesn't exist.
	status, env = api.do(http.MethodPost, "/api/expenses", token, map[string]any{
		"title": "Ghost", "amount": 10.0, "category_id": 99999, "date": "2026-08-20",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Valid category ID is required", env.Message)
}

func TestExpenseUnknownID(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	token := api.signup("Alice", "alice@x.com", "secret1")

	for _, path := range []string{"/api/expenses/99999", "/api/expenses/abc"} {
		status, env := api.do(http.MethodGet, path, token, nil)
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "Expense not found", env.Message)
	}
}
