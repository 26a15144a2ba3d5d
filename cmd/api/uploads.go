package main

import (
	"errors"
	"net/http"

	"github.com/restomenu/restomenu/internal/adapter"
	"github.com/restomenu/restomenu/internal/i18n"
)

// uploadImageHandler godoc
//
//	@Summary		Upload an image
//	@Description	Validates size and MIME type locally, then forwards the file to backend storage. Ads allow up to 5MB, category and item images up to 1MB.
//	@Tags			uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"Image file"
//	@Param			type	formData	string	true	"Upload kind (ads, categories, menu-items)"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/uploads [post]
func (app *application) uploadImageHandler(w http.ResponseWriter, r *http.Request) {
	// the ads cap plus form overhead
	if err := r.ParseMultipartForm(6 << 20); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		app.badRequestResponse(w, r, errors.New("file is required"))
		return
	}
	defer file.Close()

	kind := r.FormValue("type")
	contentType := header.Header.Get("Content-Type")

	if err := adapter.ValidateImage(header.Size, contentType, kind); err != nil {
		app.uploadValidationError(w, r, err, kind)
		return
	}

	url, err := app.uploads.Upload(r.Context(), file, header.Filename, contentType, kind, header.Size)
	if err != nil {
		app.adapterError(w, r, err)
		return
	}

	if err := app.successResponse(w, http.StatusOK, map[string]any{"url": url}); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) uploadValidationError(w http.ResponseWriter, r *http.Request, err error, kind string) {
	locale := localeFrom(r)

	var msg string
	switch {
	case errors.Is(err, adapter.ErrUploadTooLarge) && kind == adapter.UploadKindAds:
		msg = i18n.T(locale, i18n.MsgImageTooLargeAd)
	case errors.Is(err, adapter.ErrUploadTooLarge):
		msg = i18n.T(locale, i18n.MsgImageTooLarge)
	case errors.Is(err, adapter.ErrUploadNotImage):
		msg = i18n.T(locale, i18n.MsgImageWrongType)
	default:
		msg = err.Error()
	}

	app.logger.Warnw("upload rejected", "kind", kind, "error", err)

	_ = writeJson(w, http.StatusBadRequest, failureBody(msg))
}
