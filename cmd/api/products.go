package main

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/restomenu/restomenu/internal/adapter"
	"github.com/restomenu/restomenu/internal/domain"
	"github.com/restomenu/restomenu/internal/pagination"
)

// listItemsHandler godoc
//
//	@Summary		List menu items
//	@Description	Paginated, searchable item list for a menu; optionally filtered by category
//	@Tags			products
//	@Produce		json
//	@Param			menu_id		path		string	true	"Menu ID"
//	@Param			page		query		int		false	"Page number"
//	@Param			search		query		string	false	"Search term"
//	@Param			category_id	query		string	false	"Category filter"
//	@Success		200			{object}	map[string]interface{}
//	@Router			/menus/{menu_id}/items [get]
func (app *application) listItemsHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	search := r.URL.Query().Get("search")
	categoryID := r.URL.Query().Get("category_id")

	all := app.products.List(r.Context(), menuID)

	filtered := make([]domain.MenuItem, 0, len(all))
	for _, item := range all {
		if categoryID != "" && item.CategoryID != categoryID {
			continue
		}
		if pagination.MatchesSearch(search, item.Name, item.NameI18n.EN, item.NameI18n.AR) {
			filtered = append(filtered, item)
		}
	}

	meta := pagination.NewMeta(page, perPage, len(filtered))
	start, end := pagination.Bounds(meta.Page, meta.PerPage, len(filtered))

	if err := app.jsonResponse(w, http.StatusOK, map[string]any{
		"data": filtered[start:end],
		"meta": meta,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) getItemHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	itemID := chi.URLParam(r, "item_id")
	if menuID == "" || itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	item, err := app.products.Get(r.Context(), menuID, itemID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createItemHandler godoc
//
//	@Summary		Create menu item
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			menu_id	path		string					true	"Menu ID"
//	@Param			request	body		adapter.ProductInput	true	"Item payload"
//	@Success		201		{object}	map[string]interface{}
//	@Router			/menus/{menu_id}/items [post]
func (app *application) createItemHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var in adapter.ProductInput
	if err := readJson(w, r, &in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.products.Create(r.Context(), menuID, in)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusCreated, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) updateItemHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	itemID := chi.URLParam(r, "item_id")
	if menuID == "" || itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var in adapter.ProductInput
	if err := readJson(w, r, &in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, err := app.products.Update(r.Context(), menuID, itemID, in)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) deleteItemHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	itemID := chi.URLParam(r, "item_id")
	if menuID == "" || itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.products.Delete(r.Context(), menuID, itemID); err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, nil); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateItemStatusRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// updateItemStatusHandler godoc
//
//	@Summary		Toggle item availability
//	@Description	Last write wins on overlapping toggles; the dashboard disables the control while a request is in flight.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			menu_id	path		string					true	"Menu ID"
//	@Param			item_id	path		string					true	"Item ID"
//	@Param			request	body		UpdateItemStatusRequest	true	"Status payload"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/menus/{menu_id}/items/{item_id}/status [patch]
func (app *application) updateItemStatusHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	itemID := chi.URLParam(r, "item_id")
	if menuID == "" || itemID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req UpdateItemStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if req.Available == nil {
		app.badRequestResponse(w, r, errors.New("available is required"))
		return
	}

	if err := app.products.SetAvailability(r.Context(), menuID, itemID, *req.Available); err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, map[string]any{
		"item_id":   itemID,
		"available": *req.Available,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}
