package contact

import (
	"github.com/go-playground/validator/v10"
)

// phoneRule accepts exactly ten ASCII digits.
const phoneRule = "required,len=10,number"

// validate is shared by all constructors; validator.Validate caches parsed
// rules and is safe for reuse.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Phone is a ten-digit phone number.
type Phone struct {
	value string
}

// NewPhone validates value and returns it as a Phone.
func NewPhone(value string) (Phone, error) {
	if err := validate.Var(value, phoneRule); err != nil {
		return Phone{}, &ValidationError{
			Field:   "phone",
			Value:   value,
			Message: "Phone number must be 10 digits.",
		}
	}
	return Phone{value: value}, nil
}

// Value returns the digits of the number.
func (p Phone) Value() string {
	return p.value
}

// String implements fmt.Stringer.
func (p Phone) String() string {
	return p.value
}
