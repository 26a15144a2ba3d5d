package main

import (
	"errors"
	"net/http"

	"github.com/restomenu/restomenu/internal/backend"
	"github.com/restomenu/restomenu/internal/domain"
	"github.com/restomenu/restomenu/internal/i18n"
)

var ErrInvalidID = errors.New("invalid ID format")

// localeFrom picks the UI locale for error messages; ar|en, en by default.
func localeFrom(r *http.Request) string {
	return domain.NormalizeLocale(r.URL.Query().Get("locale"))
}

func failureBody(message string) map[string]any {
	return map[string]any{
		"success": false,
		"error":   message,
	}
}

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err)

	_ = writeJson(w, http.StatusInternalServerError, failureBody(i18n.T(localeFrom(r), i18n.MsgSomethingWentWrong)))
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err)

	_ = writeJson(w, http.StatusBadRequest, failureBody(err.Error()))
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found", "method", r.Method, "path", r.URL.Path, "error", err)

	_ = writeJson(w, http.StatusNotFound, failureBody(i18n.T(localeFrom(r), i18n.MsgNotFound)))
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "path", r.URL.Path, "retry_after", retryAfter)

	w.Header().Set("Retry-After", retryAfter)
	_ = writeJson(w, http.StatusTooManyRequests, failureBody(i18n.T(localeFrom(r), i18n.MsgTooManyRequests)))
}

// adapterError maps a failed backend mutation onto the write-path contract:
// the server-provided message passes through, transport failures become the
// generic localized toast.
func (app *application) adapterError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}

		app.logger.Warnw("backend rejected request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", apiErr.StatusCode,
			"error", apiErr.Message,
		)

		_ = writeJson(w, status, failureBody(apiErr.Message))
		return
	}

	app.internalServerError(w, r, err)
}
