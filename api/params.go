package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site-backend/errs"
)

const maxAdminBody = 1 << 20

// uintParam reads a positive integer path parameter
func uintParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewMissingRequiredFieldError(name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errs.NewInvalidFieldError(name, "must be a positive integer")
	}
	return uint(id), nil
}

// decodeJSON decodes the request body into dst, rejecting unknown fields
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAdminBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if err == io.EOF {
			return errs.NewMalformedPayloadError("empty", err)
		}
		return errs.NewInvalidJSONError(err)
	}
	return nil
}
