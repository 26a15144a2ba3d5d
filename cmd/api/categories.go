package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/restomenu/restomenu/internal/adapter"
	"github.com/restomenu/restomenu/internal/domain"
	"github.com/restomenu/restomenu/internal/pagination"
)

// listCategoriesHandler godoc
//
//	@Summary		List categories
//	@Description	Paginated, searchable category list for a menu
//	@Tags			categories
//	@Produce		json
//	@Param			menu_id	path		string	true	"Menu ID"
//	@Param			page	query		int		false	"Page number"
//	@Param			search	query		string	false	"Search term"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/menus/{menu_id}/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	search := r.URL.Query().Get("search")

	all := app.categories.List(r.Context(), menuID)

	filtered := make([]domain.Category, 0, len(all))
	for _, c := range all {
		if pagination.MatchesSearch(search, c.Name, c.NameI18n.EN, c.NameI18n.AR) {
			filtered = append(filtered, c)
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

func (app *application) getCategoryHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	categoryID := chi.URLParam(r, "category_id")
	if menuID == "" || categoryID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	category, err := app.categories.Get(r.Context(), menuID, categoryID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createCategoryHandler godoc
//
//	@Summary		Create category
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			menu_id	path		string					true	"Menu ID"
//	@Param			request	body		adapter.CategoryInput	true	"Category payload"
//	@Success		201		{object}	map[string]interface{}
//	@Router			/menus/{menu_id}/categories [post]
func (app *application) createCategoryHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var in adapter.CategoryInput
	if err := readJson(w, r, &in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category, err := app.categories.Create(r.Context(), menuID, in)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusCreated, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) updateCategoryHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	categoryID := chi.URLParam(r, "category_id")
	if menuID == "" || categoryID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var in adapter.CategoryInput
	if err := readJson(w, r, &in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	category, err := app.categories.Update(r.Context(), menuID, categoryID, in)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, category); err != nil {
		app.internalServerError(w, r, err)
	}
}

// deleteCategoryHandler godoc
//
//	@Summary		Delete category
//	@Description	Deletion is permanent; the dashboard confirms before calling this.
//	@Tags			categories
//	@Produce		json
//	@Param			menu_id		path		string	true	"Menu ID"
//	@Param			category_id	path		string	true	"Category ID"
//	@Success		200			{object}	map[string]interface{}
//	@Router			/menus/{menu_id}/categories/{category_id} [delete]
func (app *application) deleteCategoryHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	categoryID := chi.URLParam(r, "category_id")
	if menuID == "" || categoryID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.categories.Delete(r.Context(), menuID, categoryID); err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, nil); err != nil {
		app.internalServerError(w, r, err)
	}
}
