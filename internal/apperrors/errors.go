package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthenticated indicates that no authenticated principal was attached to the request.
var ErrUnauthenticated = errors.New("authentication required")

// ErrForbidden indicates that the authenticated principal lacks the required permission.
var ErrForbidden = errors.New("permission denied")

// ErrUnbalanced indicates that a transaction's debit and credit entries do not sum to equal amounts.
var ErrUnbalanced = errors.New("transaction entries do not balance")

// ErrConflict indicates that the requested operation conflicts with the current state of the resource.
var ErrConflict = errors.New("operation conflicts with resource state")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")
