package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/restomenu/restomenu/internal/adapter"
	"github.com/restomenu/restomenu/internal/domain"
	"github.com/restomenu/restomenu/internal/pagination"
)

// adminStatsHandler godoc
//
//	@Summary	Platform-wide dashboard stats
//	@Tags		admin
//	@Produce	json
//	@Success	200	{object}	domain.AdminStats
//	@Router		/admin/stats [get]
func (app *application) adminStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats := app.admin.Stats(r.Context())

	if err := app.jsonResponse(w, http.StatusOK, stats); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listUsersHandler godoc
//
//	@Summary		List users
//	@Description	The backend paginates users; page, limit and search are forwarded as-is.
//	@Tags			admin
//	@Produce		json
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Param			search	query		string	false	"Search term"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/admin/users [get]
func (app *application) listUsersHandler(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = pagination.DefaultPerPage
	}

	search := r.URL.Query().Get("search")

	result := app.admin.Users(r.Context(), page, limit, search)
	meta := pagination.NewMeta(page, limit, result.Total)

	if err := app.jsonResponse(w, http.StatusOK, map[string]any{
		"data": result.Users,
		"meta": meta,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) getUserDetailsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	user, err := app.admin.UserDetails(r.Context(), userID)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, user); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateSubscriptionHandler godoc
//
//	@Summary	Change a user's subscription plan
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		user_id	path		string						true	"User ID"
//	@Param		request	body		adapter.SubscriptionUpdate	true	"Subscription payload"
//	@Success	200		{object}	map[string]interface{}
//	@Router		/admin/users/{user_id}/subscription [put]
func (app *application) updateSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var in adapter.SubscriptionUpdate
	if err := readJson(w, r, &in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.admin.UpdateSubscription(r.Context(), userID, in); err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, nil); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) applyFreeLimitsHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	if err := app.admin.ApplyFreeLimits(r.Context(), userID); err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, nil); err != nil {
		app.internalServerError(w, r, err)
	}
}

type SuspendUserRequest struct {
	Suspended *bool `json:"suspended" validate:"required"`
}

func (app *application) suspendUserHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var req SuspendUserRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.admin.SetSuspended(r.Context(), userID, *req.Suspended); err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, map[string]any{
		"user_id":   userID,
		"suspended": *req.Suspended,
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) listPlansHandler(w http.ResponseWriter, r *http.Request) {
	plans := app.admin.Plans(r.Context())

	if err := app.jsonResponse(w, http.StatusOK, plans); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) listSubscriptionPlansHandler(w http.ResponseWriter, r *http.Request) {
	plans, err := app.admin.SubscriptionPlans(r.Context())
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, plans); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updatePlanHandler godoc
//
//	@Summary		Update plan pricing and limits
//	@Description	Only the fields present in the payload are changed.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			plan_id	path		string				true	"Plan ID"
//	@Param			request	body		domain.PlanUpdate	true	"Plan fields"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/admin/plans/{plan_id} [put]
func (app *application) updatePlanHandler(w http.ResponseWriter, r *http.Request) {
	planID := chi.URLParam(r, "plan_id")
	if planID == "" {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	var in domain.PlanUpdate
	if err := readJson(w, r, &in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.admin.UpdatePlan(r.Context(), planID, in); err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, nil); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) listAdminsHandler(w http.ResponseWriter, r *http.Request) {
	admins := app.admin.Admins(r.Context())

	if err := app.jsonResponse(w, http.StatusOK, admins); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createAdminHandler godoc
//
//	@Summary	Create admin account
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		request	body		adapter.AdminInput	true	"Admin payload"
//	@Success	201		{object}	map[string]interface{}
//	@Router		/admin/admins [post]
func (app *application) createAdminHandler(w http.ResponseWriter, r *http.Request) {
	var in adapter.AdminInput
	if err := readJson(w, r, &in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(in); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	admin, err := app.admin.CreateAdmin(r.Context(), in)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusCreated, admin); err != nil {
		app.internalServerError(w, r, err)
	}
}
