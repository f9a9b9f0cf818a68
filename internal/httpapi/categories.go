package httpapi

import (
	"errors"
	"net/http"

	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/service"
	"github.com/spendwise/spendwise/internal/store"
	"github.com/spendwise/spendwise/pkg/httpx"
	"github.com/spendwise/spendwise/pkg/slogx"
)

type CategoriesHandler struct {
	CategoryService *service.CategoryService
}

// HandleList godoc
//
//	@Summary	List categories
//	@Tags		Categories
//	@Produce	json
//	@Success	200	{object}	httpx.Response
//	@Router		/api/categories [get].
func (h *CategoriesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.CategoryService.List(ctx)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to list categories", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	if categories == nil {
		categories = []domain.Category{}
	}
	httpx.WriteData(w, http.StatusOK, categories)
}

// HandleGet godoc
//
//	@Summary	Fetch one category
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		int	true	"Category id"
//	@Success	200	{object}	httpx.Response
//	@Failure	404	{object}	httpx.Response
//	@Router		/api/categories/{id} [get].
func (h *CategoriesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Category not found")
		return
	}

	category, err := h.CategoryService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to fetch category", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to fetch category")
		return
	}

	httpx.WriteData(w, http.StatusOK, category)
}

// HandleCreate godoc
//
//	@Summary	Create a category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		body	body		categoryRequest	true	"name, optional hex color"
//	@Success	201		{object}	httpx.Response
//	@Failure	400		{object}	httpx.Response	"Validation failure or duplicate name"
//	@Router		/api/categories [post].
func (h *CategoriesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req categoryRequest
	if errs := decodeAndValidate(r, &req); errs != nil {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	category, err := h.CategoryService.Create(ctx, req.Name, req.Color)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			httpx.WriteError(w, http.StatusBadRequest, "Category name already exists")
			return
		}
		slogx.FromContext(ctx).Error("failed to create category", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	httpx.WriteMessage(w, http.StatusCreated, "Category created successfully", category)
}

// HandleUpdate godoc
//
//	@Summary	Update a category
//	@Tags		Categories
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Category id"
//	@Param		body	body		categoryRequest	true	"name, optional hex color"
//	@Success	200		{object}	httpx.Response
//	@Failure	404		{object}	httpx.Response
//	@Router		/api/categories/{id} [put].
func (h *CategoriesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Category not found")
		return
	}

	var req categoryRequest
	if errs := decodeAndValidate(r, &req); errs != nil {
		httpx.WriteValidationErrors(w, errs)
		return
	}

	category, err := h.CategoryService.Update(ctx, id, req.Name, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteError(w, http.StatusNotFound, "Category not found")
		case errors.Is(err, store.ErrAlreadyExists):
			httpx.WriteError(w, http.StatusBadRequest, "Category name already exists")
		default:
			slogx.FromContext(ctx).Error("failed to update category", "id", id, "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to update category")
		}
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Category updated successfully", category)
}

// HandleDelete godoc
//
//	@Summary	Delete a category
//	@Description	Expenses referencing the category keep their rows; the reference is cleared.
//	@Tags		Categories
//	@Produce	json
//	@Param		id	path		int	true	"Category id"
//	@Success	200	{object}	httpx.Response
//	@Failure	404	{object}	httpx.Response
//	@Router		/api/categories/{id} [delete].
func (h *CategoriesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := pathID(r)
	if !ok {
		httpx.WriteError(w, http.StatusNotFound, "Category not found")
		return
	}

	if err := h.CategoryService.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteError(w, http.StatusNotFound, "Category not found")
			return
		}
		slogx.FromContext(ctx).Error("failed to delete category", "id", id, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	httpx.WriteMessage(w, http.StatusOK, "Category deleted successfully", nil)
}
