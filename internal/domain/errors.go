package domain

import "errors"

// Business-rule errors surfaced to API callers. Handlers map these to
// HTTP statuses; anything else is an internal error.
var (
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrUserNotFound     = errors.New("user not found")
	ErrCodeNotFound     = errors.New("no code found for this phone number")
	ErrCodeUsed         = errors.New("this code has already been used")
	ErrCodeExpired      = errors.New("code has expired")
	ErrCodeMismatch     = errors.New("incorrect code")
	ErrPhoneNotVerified = errors.New("phone number must be verified first")
	ErrNationalIDTaken  = errors.New("national id already registered")
	ErrAlreadySpun      = errors.New("wheel already spun today")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInsufficientGold = errors.New("insufficient gold balance")
	ErrKycRequired      = errors.New("identity verification required")
	ErrMissingImage     = errors.New("bank card image is required")
	ErrSMSDelivery      = errors.New("failed to send verification sms")
)
