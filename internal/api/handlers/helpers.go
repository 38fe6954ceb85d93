package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pratik-mahalle/gigmarket/internal/auth"
	"github.com/pratik-mahalle/gigmarket/internal/api/middleware"
	apperrors "github.com/pratik-mahalle/gigmarket/internal/pkg/errors"
	"github.com/pratik-mahalle/gigmarket/internal/pkg/validator"
)

// urlID parses the {id}/{pk} path parameter
func urlID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.BadRequest("invalid ID in URL")
	}
	return id, nil
}

// decodeAndValidate decodes the JSON body into dst and runs struct
// validation on it
func decodeAndValidate(r *http.Request, v *validator.Validator, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.BadRequest("invalid JSON body")
	}
	if errs := v.Validate(dst); len(errs) > 0 {
		return apperrors.ValidationError("validation failed", errs)
	}
	return nil
}

func badQueryParam(name string) *apperrors.AppError {
	return apperrors.BadRequest("invalid value for query parameter " + name)
}

func apperrBadUpload() *apperrors.AppError {
	return apperrors.BadRequest("expected multipart form data with a file field")
}

// callerIdentity extracts the authenticated caller set by the auth
// middleware
func callerIdentity(r *http.Request) (auth.Identity, error) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		return auth.Identity{}, apperrors.Unauthorized("authentication required")
	}
	return identity, nil
}
