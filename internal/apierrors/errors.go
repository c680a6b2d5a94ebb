// Package apierrors defines the stable error taxonomy returned by every
// engine and service-layer operation: a single concrete error type carrying
// a machine-readable code, an HTTP status, a human message, and optional
// structured details.
package apierrors

import "fmt"

// Error is the envelope every exported operation in this module returns on
// failure. It mirrors the {message, code, status, details} shape the
// teacher's writeError helpers emit directly onto the wire.
type Error struct {
	Message string            `json:"message"`
	Code    string            `json:"code"`
	Status  int               `json:"status"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(status int, code, message string) *Error {
	return &Error{Message: message, Code: code, Status: status}
}

func (e *Error) WithDetails(details map[string]string) *Error {
	return &Error{Message: e.Message, Code: e.Code, Status: e.Status, Details: details}
}

// Sentinel errors, one per stable error code. Construct a fresh copy via
// the With* helpers when details are needed — callers compare against
// these with errors.Is after unwrapping, or by Code.
var (
	ErrGameNotFound            = New(404, "GAME_NOT_FOUND", "Game not found")
	ErrPlayerNotInGame         = New(403, "PLAYER_NOT_IN_GAME", "Player not in this game")
	ErrPlayerAlreadyBusted     = New(400, "PLAYER_BUSTED", "Player already busted")
	ErrInvalidPlayerCount      = New(400, "INVALID_PLAYER_COUNT", "Invalid player count")
	ErrGameFull                = New(400, "GAME_FULL", "Game is at maximum capacity (10 players)")
	ErrEnrollmentClosed        = New(410, "ENROLLMENT_CLOSED", "Enrollment for this game is closed")
	ErrInvalidEmail            = New(400, "INVALID_EMAIL", "Invalid email address")
	ErrDeckEmpty               = New(400, "DECK_EMPTY", "No more cards in deck")
	ErrGameAlreadyFinished     = New(409, "GAME_FINISHED", "Game has already finished")
	ErrUserNotFound            = New(404, "USER_NOT_FOUND", "User not found")
	ErrUserAlreadyExists       = New(409, "USER_EXISTS", "User already exists")
	ErrUnauthorized            = New(401, "UNAUTHORIZED", "Authentication required")
	ErrInvalidCredentials      = New(401, "INVALID_CREDENTIALS", "Invalid email or password")
	ErrInvitationNotFound      = New(404, "INVITATION_NOT_FOUND", "Invitation not found")
	ErrInvitationExpired       = New(410, "INVITATION_EXPIRED", "Invitation has expired")
	ErrInvalidTimeout          = New(400, "INVALID_TIMEOUT", "Timeout exceeds maximum allowed")
	ErrNotPlayerTurn           = New(403, "NOT_YOUR_TURN", "It's not your turn")
	ErrPlayerNotActive         = New(403, "PLAYER_NOT_ACTIVE", "Player is not active")
	ErrNotGameCreator          = New(403, "NOT_GAME_CREATOR", "Only the game creator can perform this action")
	ErrEnrollmentNotClosed     = New(409, "ENROLLMENT_NOT_CLOSED", "Cannot play until enrollment is closed")
	ErrPlayerAlreadyEnrolled   = New(409, "PLAYER_ALREADY_ENROLLED", "Player is already enrolled in this game")
	ErrGameNotActive           = New(410, "GAME_NOT_ACTIVE", "Game is not active or has been deleted")
	ErrWeakPassword            = New(400, "WEAK_PASSWORD", "Password does not meet strength requirements")
	ErrAccountInactive         = New(403, "ACCOUNT_INACTIVE", "Account is inactive or suspended")
	ErrInsufficientPermissions = New(403, "INSUFFICIENT_PERMISSIONS", "You don't have permission to perform this action")
	ErrAccountLocked           = New(403, "ACCOUNT_LOCKED", "Account is locked due to too many failed login attempts")
	ErrValidationError         = New(400, "VALIDATION_ERROR", "Validation failed")
	ErrPasswordHashError       = New(500, "PASSWORD_HASH_ERROR", "Failed to hash password")
	ErrRateLimitExceeded       = New(429, "RATE_LIMIT_EXCEEDED", "Rate limit exceeded. Please try again later.")
	ErrInternal                = New(500, "INTERNAL_ERROR", "Internal error")
	ErrCardNotFound            = New(400, "CARD_NOT_FOUND", "Card not found in player's hand")
	ErrNotAnAce                = New(400, "NOT_AN_ACE", "Can only change value of Ace cards")
	// Grouped with the other 403 authorization failures above.
	ErrCannotKickCreator = New(403, "CANNOT_KICK_CREATOR", "Cannot kick the game creator")
)

// InvalidPlayerCount builds the 400 INVALID_PLAYER_COUNT error with the
// {min, max, provided} detail triple.
func InvalidPlayerCount(min, max, provided int) *Error {
	return New(400, "INVALID_PLAYER_COUNT",
		fmt.Sprintf("Player count must be between %d and %d", min, max)).
		WithDetails(map[string]string{
			"min":      fmt.Sprintf("%d", min),
			"max":      fmt.Sprintf("%d", max),
			"provided": fmt.Sprintf("%d", provided),
		})
}

// InvalidTimeout builds the 400 INVALID_TIMEOUT error with the configured
// ceiling so clients know how far over they went.
func InvalidTimeout(max int) *Error {
	return New(400, "INVALID_TIMEOUT",
		fmt.Sprintf("Timeout exceeds maximum of %d seconds", max)).
		WithDetails(map[string]string{"max": fmt.Sprintf("%d", max)})
}

// MissingPasswordRequirements builds the 400 WEAK_PASSWORD error carrying the
// full list of unmet requirements, matching validation.rs's
// PasswordMissingRequirements behavior of enumerating everything missing.
func MissingPasswordRequirements(missing []string) *Error {
	joined := ""
	for i, m := range missing {
		if i > 0 {
			joined += ", "
		}
		joined += m
	}
	return New(400, "WEAK_PASSWORD", fmt.Sprintf("Password missing requirements: %s", joined)).
		WithDetails(map[string]string{"missing": joined})
}
