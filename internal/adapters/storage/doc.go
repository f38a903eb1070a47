// Package storage implements ports.ContactRepository on the local file
// system.
//
// The contact sequence is written as one versioned document:
//
//	{"version": 1, "contacts": [{"name": "...", "phone": "...", "category": "..."}]}
//
// in JSON (the default) or YAML. JSON documents are checked against an
// embedded JSON Schema before decoding. When a passphrase is configured the
// encoded document is sealed with a key derived by scrypt and encrypted with
// ChaCha20-Poly1305.
//
// Writes go to a temporary file in the target directory which then replaces
// the target with a rename, so a failed save never truncates the previous
// file.
package storage
