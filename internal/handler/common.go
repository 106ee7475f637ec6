package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/anz-davar/giuson/internal/domain"
	"github.com/anz-davar/giuson/internal/middleware"
	"github.com/anz-davar/giuson/internal/service"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Message string `json:"message"`
	Kind    string `json:"error,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Message: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// handleError logs err and writes the status matching its kind. Internal
// errors are reported without detail.
func handleError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	kind := domain.KindOf(err)
	if kind == domain.KindInternal {
		slog.ErrorContext(r.Context(), msg, "error", err, "requestID", chmw.GetReqID(r.Context()))
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	slog.WarnContext(r.Context(), msg, "error", err, "kind", kind.String(), "requestID", chmw.GetReqID(r.Context()))

	var status int
	switch kind {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindUnauthenticated:
		status = http.StatusUnauthorized
	case domain.KindUnauthorized:
		status = http.StatusForbidden
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict:
		status = http.StatusConflict
		if domain.IsDuplicate(err) {
			status = http.StatusBadRequest
		}
	}
	respondWithJSON(w, status, ErrorResponse{Message: capitalize(err.Error()), Kind: kind.String()})
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// readBody returns the request body, at most maxBodyBytes of it.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable request body", domain.ErrInvalidInput)
	}
	return body, nil
}

// decodeJSON decodes the body into v, rejecting unknown fields. An empty
// body leaves v untouched when allowEmpty is set.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) error {
	body, err := readBody(w, r)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: request body is required", domain.ErrInvalidInput)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// decodeFields decodes a JSON object for an allow-listed partial update.
func decodeFields(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, error) {
	body, err := readBody(w, r)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON object", domain.ErrInvalidInput)
	}
	return fields, nil
}

// urlParamID parses a positive integer route parameter.
func urlParamID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", domain.ErrInvalidInput, name)
	}
	return uint(id), nil
}

// caller returns the identity stored by the authentication middleware.
func caller(r *http.Request) (*service.Identity, error) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return id, nil
}
