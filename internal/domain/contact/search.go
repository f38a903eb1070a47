package contact

import "strings"

// Predicate reports whether a contact belongs to a view.
type Predicate func(*Contact) bool

// Search returns the predicate for query: a case-insensitive substring match
// against the name or the phone. Category is never matched. An empty query
// matches every contact.
func Search(query string) Predicate {
	if query == "" {
		return func(*Contact) bool { return true }
	}
	q := strings.ToLower(query)
	return func(c *Contact) bool {
		if c == nil {
			return false
		}
		return strings.Contains(strings.ToLower(c.Name), q) ||
			strings.Contains(strings.ToLower(c.Phone), q)
	}
}

// Filter returns the contacts matching pred, preserving order. A nil
// predicate matches everything.
func Filter(contacts []*Contact, pred Predicate) []*Contact {
	out := make([]*Contact, 0, len(contacts))
	for _, c := range contacts {
		if pred == nil || pred(c) {
			out = append(out, c)
		}
	}
	return out
}
