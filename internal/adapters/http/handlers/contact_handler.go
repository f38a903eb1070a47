package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/phonebook/internal/adapters/http/dto"
	"github.com/jsamuelsen11/phonebook/internal/domain"
	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
	"github.com/jsamuelsen11/phonebook/internal/ports"
)

// ContactHandler handles HTTP requests against the contact directory.
type ContactHandler struct {
	store ports.ContactStore
}

// NewContactHandler creates a new ContactHandler with the given store port.
func NewContactHandler(store ports.ContactStore) *ContactHandler {
	return &ContactHandler{store: store}
}

// ListContacts handles GET /api/v1/contacts.
//
// Query parameters:
//   - q: case-insensitive substring matched against name and phone
//   - sort: "name" or "phone"; orders the returned view only
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var field contact.SortField
	if raw := query.Get("sort"); raw != "" {
		f, err := contact.ParseSortField(raw)
		if err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
		field = f
	}

	all := h.store.Contacts()
	view := contact.Filter(all, h.store.Search(query.Get("q")))
	if field != "" {
		contact.Sort(view, field)
	}

	writeJSON(w, r, http.StatusOK, dto.ToContactListResponse(view, len(all), h.store.Handle))
}

// GetContact handles GET /api/v1/contacts/{handle}.
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	c, handle, ok := storedContact(w, r, h.store)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToContactResponse(c, handle))
}

// CreateContact handles POST /api/v1/contacts.
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[dto.CreateContactRequest](w, r)
	if !ok {
		return
	}

	c := req.ToContact()
	if err := h.store.Add(r.Context(), c); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	handle, ok := h.store.Handle(c)
	if !ok {
		// Removed by a concurrent request before we could answer.
		dto.WriteErrorResponse(w, r, fmt.Errorf("contact %w after add", domain.ErrNotFound))
		return
	}

	w.Header().Set("Location", "/api/v1/contacts/"+handle.String())
	writeJSON(w, r, http.StatusCreated, dto.ToContactResponse(c, handle))
}

// DeleteContact handles DELETE /api/v1/contacts/{handle}.
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	c, _, ok := storedContact(w, r, h.store)
	if !ok {
		return
	}
	if !h.store.Remove(r.Context(), c) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SortContacts handles POST /api/v1/contacts/sort. Unlike the sort query
// parameter of ListContacts, it reorders the stored sequence.
func (h *ContactHandler) SortContacts(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[dto.SortRequest](w, r)
	if !ok {
		return
	}

	h.store.Sort(r.Context(), req.SortField())

	all := h.store.Contacts()
	writeJSON(w, r, http.StatusOK, dto.ToContactListResponse(all, len(all), h.store.Handle))
}

// SaveContacts handles POST /api/v1/contacts/save.
func (h *ContactHandler) SaveContacts(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Save(r.Context()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SaveResponse{Saved: h.store.Len()})
}
