package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spendwise/spendwise/internal/domain"
)

type categoryJSON struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func TestCategoriesSeeded(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	status, env := api.do(http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, status)

	var categories []categoryJSON
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	require.Len(t, categories, 9)

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		require.NotEmpty(t, c.Color)
		names = append(names, c.Name)
	}
	require.Contains(t, names, "Food & Dining")
	require.Contains(t, names, "Other")
	require.IsIncreasing(t, names)
}

func TestCategoryCRUD(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	status, env := api.do(http.MethodPost, "/api/categories", "", map[string]string{
		"name": "Subscriptions", "color": "#FF00AA",
	})
	require.Equal(t, http.StatusCreated, status)
	require.Equal(t, "Category created successfully", env.Message)

	var created categoryJSON
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Equal(t, "Subscriptions", created.Name)
	require.Equal(t, "#FF00AA", created.Color)

	path := fmt.Sprintf("/api/categories/%d", created.ID)

	status, env = api.do(http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, status)

	status, env = api.do(http.MethodPut, path, "", map[string]string{
		"name": "Streaming", "color": "#00FFAA",
	})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Category updated successfully", env.Message)

	var updated categoryJSON
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	require.Equal(t, "Streaming", updated.Name)

	status, env = api.do(http.MethodDelete, path, "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Category deleted successfully", env.Message)

	status, _ = api.do(http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusNotFound, status)
}

func TestCategoryDefaultColor(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	status, env := api.do(http.MethodPost, "/api/categories", "", map[string]string{
		"name": "Colorless",
	})
	require.Equal(t, http.StatusCreated, status)

	var created categoryJSON
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.Equal(t, domain.DefaultCategoryColor, created.Color)
}

func TestCategoryDuplicateName(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	status, env := api.do(http.MethodPost, "/api/categories", "", map[string]string{
		"name": "Food & Dining",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Category name already exists", env.Message)

	// Renaming onto an existing name fails the same way.
	catID := firstCategoryID(t, api)
	status, env = api.do(http.MethodPut, fmt.Sprintf("/api/categories/%d", catID), "", map[string]string{
		"name": "Other",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Category name already exists", env.Message)
}

func TestCategoryNotFound(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	for _, probe := range []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "/api/categories/99999", nil},
		{http.MethodPut, "/api/categories/99999", map[string]string{"name": "Ghost"}},
		{http.MethodDelete, "/api/categories/99999", nil},
	} {
		status, env := api.do(probe.method, probe.path, "", probe.body)
		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "Category not found", env.Message)
	}
}

func TestCategoryValidation(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)

	status, env := api.do(http.MethodPost, "/api/categories", "", map[string]string{
		"name": "", "color": "teal",
	})
	require.Equal(t, http.StatusBadRequest, status)
	require.Equal(t, "Validation failed", env.Message)

	messages := make(map[string]string, len(env.Errors))
	for _, fe := range env.Errors {
		messages[fe.Field] = fe.Message
	}
	require.Equal(t, "Category name is required", messages["name"])
	require.Equal(t, "Color must be a valid hex color", messages["color"])
}

func TestCategoryDeleteDetachesExpenses(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	token := api.signup("Alice", "alice@x.com", "secret1")

	status, env := api.do(http.MethodPost, "/api/categories", "", map[string]string{
		"name": "Doomed",
	})
	require.Equal(t, http.StatusCreated, status)

	var doomed categoryJSON
	require.NoError(t, json.Unmarshal(env.Data, &doomed))

	status, env = api.do(http.MethodPost, "/api/expenses", token, map[string]any{
		"title": "Orphan-to-be", "amount": 5.0, "category_id": doomed.ID, "date": "2026-08-20",
	})
	require.Equal(t, http.StatusCreated, status)

	var created expenseJSON
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, _ = api.do(http.MethodDelete, fmt.Sprintf("/api/categories/%d", doomed.ID), "", nil)
	require.Equal(t, http.StatusOK, status)

	// The expense survives with its category reference cleared.
	status, env = api.do(http.MethodGet, fmt.Sprintf("/api/expenses/%d", created.ID), token, nil)
	require.Equal(t, http.StatusOK, status)

	var orphan expenseJSON
	require.NoError(t, json.Unmarshal(env.Data, &orphan))
	require.Zero(t, orphan.CategoryID)
	require.Empty(t, orphan.CategoryName)
}
