package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/phonebook/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phonebook/internal/domain"
	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
	"github.com/jsamuelsen11/phonebook/internal/platform/logging"
	"github.com/jsamuelsen11/phonebook/internal/ports"
)

// handleParam is the chi URL parameter holding a contact handle.
const handleParam = "handle"

// maxBodyBytes caps request bodies. A contact is three short strings.
const maxBodyBytes = 64 << 10

// request is implemented by the request DTOs: a pointer that can validate
// its decoded value.
type request[T any] interface {
	*T
	Validate() error
}

// decodeRequest reads a JSON body into a T and validates it. Unknown fields
// are rejected. On failure the problem response is already written and ok is
// false.
func decodeRequest[T any, P request[T]](w http.ResponseWriter, r *http.Request) (req T, ok bool) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(P(&req)); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return req, false
	}
	if err := P(&req).Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return req, false
	}
	return req, true
}

// storedContact resolves the {handle} path parameter to the stored contact.
// A malformed handle is a validation error, an unknown one ErrNotFound. On
// failure the problem response is already written and ok is false.
func storedContact(w http.ResponseWriter, r *http.Request, store ports.ContactStore) (*contact.Contact, uuid.UUID, bool) {
	handle, err := uuid.Parse(chi.URLParam(r, handleParam))
	if err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{handleParam: "must be a valid UUID"},
		})
		return nil, uuid.Nil, false
	}
	c, err := store.Lookup(handle)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return nil, uuid.Nil, false
	}
	return c, handle, true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "writing response failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
}
