package main

import (
	"net/http"

	"github.com/go-chi/chi"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateImportTaskRequest struct {
	SpreadsheetID string `json:"spreadsheet_id" validate:"required"`
	MenuID        string `json:"menu_id" validate:"required"`
}

// createImportTaskHandler godoc
//
//	@Summary		Queue a spreadsheet menu import
//	@Description	Creates a tracking task and enqueues it; the import runs asynchronously.
//	@Tags			imports
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateImportTaskRequest	true	"Import payload"
//	@Success		201		{object}	map[string]interface{}
//	@Router			/imports [post]
func (app *application) createImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateImportTaskRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	taskID, err := app.importService.CreateImportTask(r.Context(), req.SpreadsheetID, req.MenuID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusCreated, map[string]any{
		"task_id": taskID.Hex(),
		"status":  "queued",
	}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getImportTaskHandler godoc
//
//	@Summary	Import task status
//	@Tags		imports
//	@Produce	json
//	@Param		task_id	path		string	true	"Task ID"
//	@Success	200		{object}	domain.ImportTask
//	@Router		/imports/{task_id} [get]
func (app *application) getImportTaskHandler(w http.ResponseWriter, r *http.Request) {
	taskID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "task_id"))
	if err != nil {
		app.badRequestResponse(w, r, ErrInvalidID)
		return
	}

	task, err := app.importService.GetTaskStatus(r.Context(), taskID)
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, task); err != nil {
		app.internalServerError(w, r, err)
	}
}
