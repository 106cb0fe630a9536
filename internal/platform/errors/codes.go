// Package errors provides structured domain errors with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Player errors
	CodePlayerIDEmpty       Code = "PLAYER_ID_EMPTY"
	CodePlayerUsernameEmpty Code = "PLAYER_USERNAME_EMPTY"
	CodePlayerUsernameTaken Code = "PLAYER_USERNAME_TAKEN"
	CodePlayerNotFound      Code = "PLAYER_NOT_FOUND"
	CodePlayerMoodEmpty     Code = "PLAYER_MOOD_EMPTY"

	// Time errors
	CodeTimeInvalid      Code = "TIME_INVALID"
	CodeTimeCostNegative Code = "TIME_COST_NEGATIVE"

	// Content lookups
	CodeActionNotFound   Code = "ACTION_NOT_FOUND"
	CodeEventNotFound    Code = "EVENT_NOT_FOUND"
	CodeChoiceNotFound   Code = "CHOICE_NOT_FOUND"
	CodeItemNotFound     Code = "ITEM_NOT_FOUND"
	CodeMinigameNotFound Code = "MINIGAME_NOT_FOUND"
	CodeMaskNotFound     Code = "MASK_NOT_FOUND"
	CodeZoneNotFound     Code = "ZONE_NOT_FOUND"
	CodeNPCNotFound      Code = "NPC_NOT_FOUND"

	// Rule errors
	CodeActionUnavailable  Code = "ACTION_UNAVAILABLE"
	CodeItemNotInInventory Code = "ITEM_NOT_IN_INVENTORY"
	CodeMaskLocked         Code = "MASK_LOCKED"
	CodeMaskAlreadyOwned   Code = "MASK_ALREADY_OWNED"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodePlayerIDEmpty,
		CodePlayerUsernameEmpty,
		CodePlayerMoodEmpty,
		CodeTimeInvalid,
		CodeTimeCostNegative:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeActionUnavailable,
		CodeItemNotInInventory,
		CodeMaskLocked:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodePlayerNotFound,
		CodeActionNotFound,
		CodeEventNotFound,
		CodeChoiceNotFound,
		CodeItemNotFound,
		CodeMinigameNotFound,
		CodeMaskNotFound,
		CodeZoneNotFound,
		CodeNPCNotFound:
		return codes.NotFound

	// AlreadyExists - unique resource constraint
	case CodePlayerUsernameTaken,
		CodeMaskAlreadyOwned:
		return codes.AlreadyExists

	default:
		return codes.Internal
	}
}
