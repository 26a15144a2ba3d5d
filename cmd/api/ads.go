package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/restomenu/restomenu/internal/adapter"
)

// listAdminAdsHandler godoc
//
//	@Summary	List platform ads
//	@Tags		ads
//	@Produce	json
//	@Success	200	{array}	domain.Ad
//	@Router		/admin/ads [get]
func (app *application) listAdminAdsHandler(w http.ResponseWriter, r *http.Request) {
	ads := app.ads.ListAdmin(r.Context())

	if err := app.jsonResponse(w, http.StatusOK, ads); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) listMenuAdsHandler(w http.ResponseWriter, r *http.Request) {
	menuID := chi.URLParam(r, "menu_id")
	if menuID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	ads := app.ads.ListForMenu(r.Context(), menuID)

	if err := app.jsonResponse(w, http.StatusOK, ads); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createAdHandler godoc
//
//	@Summary	Create ad
//	@Tags		ads
//	@Accept		json
//	@Produce	json
//	@Param		request	body		adapter.AdInput	true	"Ad payload"
//	@Success	201		{object}	map[string]interface{}
//	@Router		/admin/ads [post]
func (app *application) createAdHandler(w http.ResponseWriter, r *http.Request) {
	var in adapter.AdInput
	if err := readJson(w, r, &in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ad, err := app.ads.Create(r.Context(), in)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusCreated, ad); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) updateAdHandler(w http.ResponseWriter, r *http.Request) {
	adID := chi.URLParam(r, "ad_id")
	if adID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var in adapter.AdInput
	if err := readJson(w, r, &in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ad, err := app.ads.Update(r.Context(), adID, in)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, ad); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) deleteAdHandler(w http.ResponseWriter, r *http.Request) {
	adID := chi.URLParam(r, "ad_id")
	if adID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.ads.Delete(r.Context(), adID); err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, nil); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getAdMetricsHandler godoc
//
//	@Summary	Recent impression/click records for an ad
//	@Tags		ads
//	@Produce	json
//	@Param		ad_id	path		string	true	"Ad ID"
//	@Param		limit	query		int		false	"Max records"
//	@Success	200		{array}		domain.AdMetricRecord
//	@Router		/ads/{ad_id}/metrics [get]
func (app *application) getAdMetricsHandler(w http.ResponseWriter, r *http.Request) {
	adID := chi.URLParam(r, "ad_id")
	if adID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	records, err := app.metricsService.GetAdMetrics(r.Context(), adID, limit)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, records); err != nil {
		app.internalServerError(w, r, err)
	}
}
