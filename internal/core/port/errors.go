package port

import "errors"

// Sentinel errors returned by usecases and repositories. HTTP adapters map
// them to response statuses; callers match with errors.Is.
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("forbidden")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDisabled     = errors.New("account disabled")
	ErrProfileExists       = errors.New("campaign already exists for this user")
	ErrCampaignNotEligible = errors.New("campaign not eligible for donations")
	ErrConcurrencyConflict = errors.New("concurrent update conflict")
	ErrRefundWindowExpired = errors.New("refund window expired")
	ErrRefundUnauthorized  = errors.New("refund not authorized")
	ErrAlreadyRefunded     = errors.New("donation already refunded")
)
