package validators

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-order-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldUsername    = "username"
	FieldPassword    = "password"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldTotal       = "total"
	FieldItems       = "items"
	FieldStatus      = "status"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 64
	minPasswordLength = 6
	// bcrypt ignores everything past 72 bytes
	maxPasswordLength = 72
	phoneDigits       = 10
)

// DomainValidator implements [Validator] for the request models of the
// order service: Credentials, Product, ProductUpdate and Order.
//
// Both value and pointer forms of each model are accepted.
type DomainValidator struct {
}

// NewDomainValidator constructs a new DomainValidator
// and returns it as the Validator interface.
func NewDomainValidator() Validator {
	return &DomainValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the model is validated.
func (v *DomainValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.Product:
		return v.validateProduct(value, fields...)
	case *models.Product:
		return v.validateProduct(*value, fields...)

	case models.ProductUpdate:
		return v.validateProductUpdate(value)
	case *models.ProductUpdate:
		return v.validateProductUpdate(*value)

	case models.Order:
		return v.validateOrder(value, fields...)
	case *models.Order:
		return v.validateOrder(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *DomainValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !validUsername(c.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if len(c.Password) < minPasswordLength || len(c.Password) > maxPasswordLength {
				return ErrInvalidPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *DomainValidator) validateProduct(p models.Product, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldDescription, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(p.Name) == "" {
				return ErrEmptyName
			}
		case FieldDescription:
			if strings.TrimSpace(p.Description) == "" {
				return ErrEmptyDescription
			}
		case FieldPrice:
			if p.Price < 0 {
				return ErrNegativePrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProductUpdate checks only the fields present in the update.
func (v *DomainValidator) validateProductUpdate(u models.ProductUpdate) error {
	if u.Empty() {
		return ErrNoFieldsToUpdate
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return ErrEmptyName
	}
	if u.Description != nil && strings.TrimSpace(*u.Description) == "" {
		return ErrEmptyDescription
	}
	if u.Price != nil && *u.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

func (v *DomainValidator) validateOrder(o models.Order, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPhone, FieldAddress, FieldTotal, FieldItems, FieldStatus}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(o.CustomerName) == "" {
				return ErrEmptyName
			}
		case FieldPhone:
			if !validPhone(o.Phone) {
				return ErrInvalidPhone
			}
		case FieldAddress:
			if strings.TrimSpace(o.Address) == "" {
				return ErrEmptyAddress
			}
		case FieldTotal:
			if o.Total <= 0 {
				return ErrInvalidTotal
			}
		case FieldItems:
			if !nonEmptyItems(o.Items) {
				return ErrEmptyItems
			}
		case FieldStatus:
			if parsed, ok := models.ParseOrderStatus(string(o.Status)); !ok || parsed != o.Status {
				return ErrInvalidStatus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validUsername(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < minUsernameLength || n > maxUsernameLength {
		return false
	}
	return strings.IndexFunc(s, unicode.IsSpace) == -1
}

func validPhone(s string) bool {
	if len(s) != phoneDigits {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// nonEmptyItems accepts a JSON array with at least one element.
func nonEmptyItems(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return false
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return false
	}
	return len(items) > 0
}
