package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/jsamuelsen11/phonebook/internal/domain"
)

// ErrorResponse is an RFC 9457 problem details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail locates one invalid input, e.g. "body.phone" or "path.handle".
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemKinds maps domain error kinds to a status, first match wins. When
// public is false the client sees only the sentinel text: a persistence
// error carries the data file path and the OS cause, which stay in the log.
var problemKinds = []struct {
	kind   error
	status int
	public bool
}{
	{domain.ErrValidation, http.StatusBadRequest, true},
	{domain.ErrNotFound, http.StatusNotFound, true},
	{domain.ErrUnavailable, http.StatusServiceUnavailable, true},
	{domain.ErrPersistenceWrite, http.StatusInternalServerError, false},
	{domain.ErrPersistenceRead, http.StatusInternalServerError, false},
}

// fieldLocations places validation fields that do not come from the JSON
// body. Everything else is reported as "body.<field>".
var fieldLocations = map[string]string{
	"body":   "body",
	"handle": "path.handle",
	"sort":   "query.sort",
	"q":      "query.q",
}

// NewErrorResponse builds the problem body for err. Errors of unknown kind
// become an opaque 500.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, detail := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	for _, k := range problemKinds {
		if !errors.Is(err, k.kind) {
			continue
		}
		status, detail = k.status, k.kind.Error()
		if k.public {
			detail = err.Error()
		}
		break
	}

	resp := problem(r, status, detail)
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteProblem writes a problem response for failures raised by the
// transport itself, such as throttling and timeouts.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	writeProblem(w, r, problem(r, status, detail))
}

// WriteErrorResponse writes the problem response for a domain error.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, NewErrorResponse(r, err))
}

func problem(r *http.Request, status int, detail string) ErrorResponse {
	return ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.RequestURI,
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, resp ErrorResponse) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.WarnContext(r.Context(), "writing problem response failed", slog.Any("error", err))
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		loc, ok := fieldLocations[field]
		if !ok {
			loc = "body." + field
		}
		details = append(details, ErrorDetail{Location: loc, Message: msg})
	}
	slices.SortFunc(details, func(a, b ErrorDetail) int {
		return strings.Compare(a.Location, b.Location)
	})
	return details
}
