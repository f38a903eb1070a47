// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/contact).
// This root package holds sentinel errors and the error types returned by the
// contact store and its persistence adapters.
package domain
