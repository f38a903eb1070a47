// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/google/uuid"

	"github.com/jsamuelsen11/phonebook/internal/domain/contact"
)

// ContactResponse represents a single contact in HTTP responses. Handle is
// the runtime identifier used to delete the contact; it changes across
// restarts.
type ContactResponse struct {
	Handle   string `json:"handle"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Category string `json:"category"`
	Display  string `json:"display"`
}

// ContactListResponse represents a filtered view of the directory.
// Count is the number of contacts returned, Total the size of the directory.
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Count    int               `json:"count"`
	Total    int               `json:"total"`
}

// SaveResponse reports a completed save.
type SaveResponse struct {
	Saved int `json:"saved"`
}

// HandleResolver maps stored contacts to their runtime handles.
type HandleResolver func(*contact.Contact) (uuid.UUID, bool)

// ToContactResponse converts a stored contact to an HTTP response DTO.
func ToContactResponse(c *contact.Contact, handle uuid.UUID) ContactResponse {
	return ContactResponse{
		Handle:   handle.String(),
		Name:     c.Name,
		Phone:    c.Phone,
		Category: c.Category.String(),
		Display:  c.String(),
	}
}

// ToContactListResponse converts a view of the directory to an HTTP list
// response DTO. Contacts without a handle were removed concurrently and are
// left out.
func ToContactListResponse(contacts []*contact.Contact, total int, resolve HandleResolver) ContactListResponse {
	items := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		h, ok := resolve(c)
		if !ok {
			continue
		}
		items = append(items, ToContactResponse(c, h))
	}
	return ContactListResponse{
		Contacts: items,
		Count:    len(items),
		Total:    total,
	}
}

// LivenessResponse is the body of GET /health/live.
type LivenessResponse struct {
	Status string `json:"status"`
}

// ReadinessResponse is the body of GET /health/ready. Checks maps every
// registered checker to "ok" or its failure message.
type ReadinessResponse struct {
	Status   string            `json:"status"`
	Checks   map[string]string `json:"checks"`
	Contacts int               `json:"contacts"`
}
