package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCategory indicates that a referenced category does not exist.
var ErrInvalidCategory = errors.New("category_id not found")

// ErrInvalidParent indicates that a category parent reference is missing or points at itself.
var ErrInvalidParent = errors.New("invalid parent category")

// ErrInactiveTemplate indicates that an inactive recurring template was executed.
var ErrInactiveTemplate = errors.New("recurring transaction is inactive")

// ErrNotSupported indicates that the configured backend cannot perform the operation.
var ErrNotSupported = errors.New("operation not supported")
