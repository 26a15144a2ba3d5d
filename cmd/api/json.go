package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

func writeJson(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(data)
}

func readJson(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(data)
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	return writeJson(w, status, data)
}

// successResponse is the write-path contract: {success, data}.
func (app *application) successResponse(w http.ResponseWriter, status int, data any) error {
	return writeJson(w, status, map[string]any{
		"success": true,
		"data":    data,
	})
}
