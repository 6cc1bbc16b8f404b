package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking request not found")
	ErrAccountNotFound = errors.New("account not found")
)

var (
	ErrAlreadyDecided      = errors.New("booking request has already been decided")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidTransition   = errors.New("status transition is not allowed")
	ErrApprovalUnavailable = errors.New("approval workflow is unavailable in legacy mode")
	ErrNotApprover         = errors.New("identity is not an approver")
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUsernameTaken       = errors.New("username is already taken")
	ErrInvalidAccessCode   = errors.New("invalid registration access code")
	ErrRepairNotConfirmed  = errors.New("repair requires explicit confirmation")
)

var ErrValidation = errors.New("validation error")
