package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/service"
	"github.com/spendwise/spendwise/internal/store"
	"github.com/spendwise/spendwise/pkg/httpx"
	"github.com/spendwise/spendwise/pkg/slogx"
)

type ExpensesHandler struct {
	ExpenseService *service.ExpenseService
}

// HandleList godoc
//
//	@Summary	List the authenticated user's expenses
//	@Tags		Expenses
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	httpx.Response	"Expenses joined with category name/color"
//	@Router		/api/expenses [get].
func (h *ExpensesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := httpx.IdentityFromContext(ctx)

	expenses, err := h.ExpenseService.List(ctx, identity.UserID)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list expenses", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch expenses")
		return
	}

	if expenses == nil {
		expenses = []domain.Expense{}
	}
	httpx.WriteData(w, http.StatusOK, expenses)
}

// HandleGet godoc
//
//	@Summary	Fetch one expense
//	@Tags		Expenses
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Expense id"
//	@Success	200	{object}	httpx.Response
//	@Failure	404	{object}	httpx.Response	"Unknown or foreign expense"
//	@Router		/api/expenses/{id} [get].
func (h *ExpensesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := httpx.IdentityFromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Expense not found")
		return
	}

	expense, err := h.ExpenseService.Get(ctx, id, identity.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Expense not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to fetch expense", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch expense")
		return
	}

	httpx.WriteData(w, http.StatusOK, expense)
}

// HandleCreate godoc
//
//	@Summary	Create an expense
//	@Tags		Expenses
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		expenseRequest	true	"title, amount, category_id, date, description"
//	@Success	201		{object}	httpx.Response
//	@Failure	400		{object}	httpx.Response	"Validation failure or unknown category"
//	@Router		/api/expenses [post].
func (h *ExpensesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := httpx.IdentityFromContext(ctx)

	var req expenseRequest
	if errs := decodeAndValidate(r, &req); errs != nil {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	expense, err := h.ExpenseService.Create(ctx, domain.Expense{
		UserID:      identity.UserID,
		Title:       req.Title,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidReference) {
			httpx.WriteError(w, http.StatusBadRequest, "Valid category ID is required")
			return
		}
		slogx.FromContext(ctx).Error("failed to create expense", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to create expense")
		return
	}

	httpx.WriteMessage(w, http.StatusCreated, "Expense created successfully", expense)
}

// HandleUpdate godoc
//
//	@Summary	Update an owned expense
//	@Tags		Expenses
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Expense id"
//	@Param		body	body		expenseRequest	true	"title, amount, category_id, date, description"
//	@Success	200		{object}	httpx.Response
//	@Failure	404		{object}	httpx.Response	"Unknown or foreign expense"
//	@Router		/api/expenses/{id} [put].
func (h *ExpensesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := httpx.IdentityFromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Expense not found")
		return
	}

	var req expenseRequest
	if errs := decodeAndValidate(r, &req); errs != nil {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	expense, err := h.ExpenseService.Update(ctx, domain.Expense{
		ID:          id,
		UserID:      identity.UserID,
		Title:       req.Title,
		Amount:      req.Amount,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Expense not found")
		case errors.Is(err, store.ErrInvalidReference):
			httpx.WriteError(w, http.StatusBadRequest, "Valid category ID is required")
		default:
			slogx.FromContext(ctx).Error("failed to update expense", "id", id, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to update expense")
		}
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Expense updated successfully", expense)
}

// HandleDelete godoc
//
//	@Summary	Delete an owned expense
//	@Tags		Expenses
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Expense id"
//	@Success	200	{object}	httpx.Response
//	@Failure	404	{object}	httpx.Response	"Unknown or foreign expense"
//	@Router		/api/expenses/{id} [delete].
func (h *ExpensesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := httpx.IdentityFromContext(ctx)

	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Expense not found")
		return
	}

	if err := h.ExpenseService.Delete(ctx, id, identity.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Expense not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to delete expense", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Expense deleted successfully", nil)
}

// pathID parses the {id} path segment. A non-numeric id behaves like a row
// that doesn't exist rather than a malformed request.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}
