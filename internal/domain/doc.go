// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/group, domain/todo).
// This root package holds sentinel errors, the validation and storage error
// types, shared validation messages, and the Action interface consumed by the
// application-layer unit of work.
package domain
