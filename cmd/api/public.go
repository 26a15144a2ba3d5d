package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/restomenu/restomenu/internal/adapter"
	"github.com/restomenu/restomenu/internal/domain"
	"github.com/restomenu/restomenu/internal/view"
)

func (app *application) getMenuHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	menu, err := app.menus.Get(r.Context(), menuID)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, menu); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) updateBrandingHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var in adapter.BrandingInput
	if err := readJson(w, r, &in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.menus.UpdateBranding(r.Context(), menuID, in); err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, nil); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getPublicMenuHandler godoc
//
//	@Summary		Render model for a public menu page
//	@Description	Returns the full view for one menu, template and locale. Served from cache when a fresh copy exists.
//	@Tags			public
//	@Produce		json
//	@Param			menu_id		path		string	true	"Menu ID or slug"
//	@Param			template	query		string	false	"Template name (default, neon, coffee, sky)"
//	@Param			locale		query		string	false	"Locale (en, ar)"
//	@Success		200			{object}	view.MenuView
//	@Router			/public/menus/{menu_id} [get]
func (app *application) getPublicMenuHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	tmpl := view.Normalize(r.URL.Query().Get("template"))
	locale := domain.NormalizeLocale(r.URL.Query().Get("locale"))

	if cached, ok := app.cache.GetView(r.Context(), menuID, tmpl, locale); ok {
		if err := app.jsonResponse(w, http.StatusOK, cached); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	data, err := app.menus.FetchMenuData(r.Context(), menuID)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	v := view.Build(*data, tmpl, locale)
	app.cache.SetView(r.Context(), menuID, tmpl, locale, &v)

	if err := app.jsonResponse(w, http.StatusOK, v); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) listPublicAdsHandler(w http.ResponseWriter, r *http.Request) {
	position := r.URL.Query().Get("position")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	ads := app.ads.ListPublic(r.Context(), position, limit)

	if err := app.jsonResponse(w, http.StatusOK, ads); err != nil {
		app.internalServerError(w, r, err)
	}
}

// adImpressionHandler godoc
//
//	@Summary		Record an ad impression
//	@Description	Fire-and-forget beacon from public menus; the increment is processed asynchronously.
//	@Tags			public
//	@Produce		json
//	@Param			ad_id	path	string	true	"Ad ID"
//	@Success		202
//	@Router			/public/ads/{ad_id}/impression [post]
func (app *application) adImpressionHandler(w http.ResponseWriter, r *http.Request) {
	app.recordAdEvent(w, r, domain.AdEventImpression)
}

func (app *application) adClickHandler(w http.ResponseWriter, r *http.Request) {
	app.recordAdEvent(w, r, domain.AdEventClick)
}

func (app *application) recordAdEvent(w http.ResponseWriter, r *http.Request, eventType string) {
	adID := chi.URLParam(r, "ad_id")
	if adID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	menuID := r.URL.Query().Get("menu_id")
	locale := localeFrom(r)

	if err := app.metricsService.RecordEvent(r.Context(), eventType, adID, menuID, locale); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusAccepted, nil); err != nil {
		app.internalServerError(w, r, err)
	}
}
