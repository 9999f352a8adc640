package handlers

import (
	"errors"
	"net/http"

	"seo-optimizer-backend/internal/provider"
	"seo-optimizer-backend/internal/services"
	"seo-optimizer-backend/internal/supabase"
)

// statusForError maps pipeline error kinds to HTTP statuses: validation 400,
// missing record 404, provider trouble 502, anything else (storage) 500. Auth
// failures never reach here; the middleware answers 401 directly.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrEmptyText),
		errors.Is(err, services.ErrNoTags),
		errors.Is(err, services.ErrTooManyTags),
		errors.Is(err, services.ErrBlankTag):
		return http.StatusBadRequest
	case errors.Is(err, supabase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, provider.ErrUnavailable),
		errors.Is(err, provider.ErrMalformedResponse),
		errors.Is(err, provider.ErrTimeout):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
