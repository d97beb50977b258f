package domain

import "errors"

// Validation errors: bad arguments, never retried.
var (
	ErrNilArgument      = errors.New("argument must not be nil or empty")
	ErrInvalidShift     = errors.New("invalid shift")
	ErrInvalidTier      = errors.New("invalid exclusivity tier")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrZonesRequired    = errors.New("at least one zone is required")
	ErrNameRequired     = errors.New("name is required")
	ErrInvalidCount     = errors.New("ticket count must be positive")
	ErrWrongRole        = errors.New("employee role does not match the assignment")
	ErrCookNotCertified = errors.New("cook is not certified")
	ErrNotACafeteria    = errors.New("service place is not a cafeteria")
)

// Not-found errors: the referenced entity is absent from the park catalogue.
var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrAttractionNotFound   = errors.New("attraction not found")
	ErrServicePlaceNotFound = errors.New("service place not found")
	ErrShowNotFound         = errors.New("show not found")
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrFastPassNotFound     = errors.New("fast pass not found")
)

// Conflict errors: the operation collides with existing state.
var (
	ErrEmployeeAlreadyAssigned   = errors.New("employee already assigned for that day and shift")
	ErrEmployeeAlreadyExists     = errors.New("employee already exists")
	ErrAttractionAlreadyExists   = errors.New("attraction already exists")
	ErrServicePlaceAlreadyExists = errors.New("service place already exists")
	ErrShowAlreadyExists         = errors.New("show already exists")
	ErrFastPassInvalid           = errors.New("fast pass is not valid for that day")
)
