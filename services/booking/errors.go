package booking

// The booking engine reports failures through five error kinds. They are
// raised at the point of detection and propagate unchanged to the handler
// boundary, which maps each kind to a transport status.

// ValidationError signals malformed or policy-violating input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// NotFoundError signals that a referenced tutor, booking, or profile does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFoundError builds a NotFoundError with the given message.
func NewNotFoundError(msg string) error {
	return &NotFoundError{Message: msg}
}

// ConflictError signals an overlapping reservation, detected either by the
// pre-check or by the storage-level transaction.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflictError builds a ConflictError with the given message.
func NewConflictError(msg string) error {
	return &ConflictError{Message: msg}
}

// ForbiddenError signals that the actor lacks permission to view or act on
// an existing resource.
type ForbiddenError struct {
	Message string
}

func (e *ForbiddenError) Error() string { return e.Message }

// NewForbiddenError builds a ForbiddenError with the given message.
func NewForbiddenError(msg string) error {
	return &ForbiddenError{Message: msg}
}

// InvalidTransitionError signals a status-change or delete request that
// violates the booking lifecycle.
type InvalidTransitionError struct {
	Message string
}

func (e *InvalidTransitionError) Error() string { return e.Message }

// NewInvalidTransitionError builds an InvalidTransitionError with the given message.
func NewInvalidTransitionError(msg string) error {
	return &InvalidTransitionError{Message: msg}
}
