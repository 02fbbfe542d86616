// Package errors provides structured error handling for the combat-api project.
//
// It carries:
//   - Structured errors with codes, messages, and metadata
//   - gRPC status conversion in both directions
//   - Error context preservation through wrapping
//   - Validation error helpers
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("encounter not found")
//	err := errors.InvalidArgumentf("damage amount must not be negative, got %d", amount)
//
// Adding metadata:
//
//	err := errors.NotFound("participant not found").
//	    WithMeta("encounter_id", encounterID).
//	    WithMeta("participant_id", participantID)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load encounter")
//	}
//
// State errors follow the gRPC convention: an operation that is not valid in
// the aggregate's current state (death save on a conscious participant, turn
// advance on a completed encounter) is a FailedPrecondition, not an
// InvalidArgument.
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // handle missing encounter
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Validation Errors
//
// Using the validation builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("EncounterID", input.EncounterID, vb)
//	errors.ValidateRange("Roll", input.Roll, 1, 20, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
