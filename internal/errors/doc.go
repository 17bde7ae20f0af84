// Package errors provides the structured error handling used across battle-core.
//
// The package provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for component configs
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("player not found")
//	err := errors.InvalidArgumentf("unknown enemy tier: %q", tier)
//
// Adding metadata:
//
//	err := errors.NotFound("session not found").
//	    WithMeta("channel_id", channelID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load player")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // Handle not found case
//	}
//
// # Validation Errors
//
// Component configs validate their dependencies with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Roller == nil {
//	    vb.RequiredField("Roller")
//	}
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return domain-specific errors (NotFound, AlreadyExists)
//   - Include relevant keys in metadata
//   - Wrap storage errors with context
//
// Content layer:
//   - Reject corrupt or out-of-range definitions with InvalidArgument at
//     load time, before any encounter can use them
//
// Engine layer:
//   - Expected game-flow outcomes (missed item, full inventory, no living
//     target) are result fields, never errors; errors are reserved for
//     programmer mistakes and broken preconditions
package errors
