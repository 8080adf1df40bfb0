package handlers

import (
	"errors"
	"net/http"

	"github.com/diewo77/go-quotes/httpx"
	"github.com/diewo77/go-quotes/internal/policy"
	"github.com/diewo77/go-quotes/internal/quoting"
	"github.com/diewo77/go-quotes/validation"
	"github.com/rs/zerolog"
)

// writeError maps service errors to HTTP responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var v validation.Violations
	switch {
	case errors.As(err, &v):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
	case errors.Is(err, httpx.ErrBadRequest):
		httpx.JSONError(w, http.StatusBadRequest, "bad_request", nil)
	case errors.Is(err, policy.ErrUnauthenticated):
		httpx.JSONError(w, http.StatusUnauthorized, "unauthorized", nil)
	case errors.Is(err, policy.ErrForbidden):
		httpx.JSONError(w, http.StatusForbidden, "forbidden", nil)
	case errors.Is(err, quoting.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
