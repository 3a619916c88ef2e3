package domain

import "context"

// Action is one reversible persistence step, such as writing the todo
// collection under its storage key. The unit of work in the app layer
// sequences actions and undoes the applied ones when a later step fails.
type Action interface {
	// Execute applies the step.
	Execute(ctx context.Context) error

	// Rollback undoes a step whose Execute returned nil. It may run with a
	// different context than Execute saw.
	Rollback(ctx context.Context) error

	// Description names the step in logs, e.g. "save todos".
	Description() string
}
