package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername  = errors.New("username must be 3-64 characters without spaces")
	ErrInvalidPassword  = errors.New("password must be 6-72 bytes")
	ErrEmptyName        = errors.New("name is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrEmptyAddress     = errors.New("address is required")
	ErrInvalidPhone     = errors.New("phone must be exactly 10 digits")
	ErrInvalidTotal     = errors.New("total must be positive")
	ErrEmptyItems       = errors.New("order must contain at least one item")
	ErrInvalidStatus    = errors.New("invalid order status")
)
