package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/agency-api/internal/api/shared"
	"github.com/phrazzld/agency-api/internal/redact"
)

// idParam is the chi URL parameter holding a resource identifier.
const idParam = "id"

// getPathID extracts a positive integer identifier from the URL path.
//
// Returns:
//   - (id, nil): the parsed identifier
//   - (0, error): an error wrapping ErrInvalidID if the parameter is missing,
//     not an integer, or not positive
func getPathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, idParam)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidID, idParam)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, raw)
	}

	return id, nil
}

// handlePathID extracts the path identifier, writing a 400 response and
// returning false if it is invalid.
func handlePathID(w http.ResponseWriter, r *http.Request, log *slog.Logger) (int64, bool) {
	id, err := getPathID(r)
	if err != nil {
		log.Warn("invalid path identifier", slog.String("value", chi.URLParam(r, idParam)))
		HandleAPIError(w, r, err, "")
		return 0, false
	}
	return id, true
}

// decodeAndValidate decodes the JSON body into v and validates it, writing a
// 400 response and returning false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		log.Warn("invalid request", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}

	return true
}
