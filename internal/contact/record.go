package contact

import (
	"slices"
	"strings"
)

// Record is one contact. The name is fixed at construction; phones and the
// birthday are changed in place through the methods below.
type Record struct {
	name     string
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a Record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{
			Field:   "name",
			Value:   name,
			Message: "Contact name must not be empty.",
		}
	}
	return &Record{name: name}, nil
}

// Name returns the contact name.
func (r *Record) Name() string {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	return slices.Clone(r.phones)
}

// AddPhone validates value and appends it. Duplicates are allowed.
func (r *Record) AddPhone(value string) error {
	phone, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, phone)
	return nil
}

// RemovePhone removes the first phone equal to value.
func (r *Record) RemovePhone(value string) error {
	i := r.indexOf(value)
	if i < 0 {
		return &NotFoundError{Kind: "Phone", Key: value}
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// EditPhone replaces oldValue with newValue. The new number is validated and
// appended before the old one is removed, so a rejected newValue leaves the
// list as it was.
func (r *Record) EditPhone(oldValue, newValue string) error {
	if r.indexOf(oldValue) < 0 {
		return &NotFoundError{Kind: "Phone", Key: oldValue}
	}
	if err := r.AddPhone(newValue); err != nil {
		return err
	}
	return r.RemovePhone(oldValue)
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	i := r.indexOf(value)
	if i < 0 {
		return Phone{}, false
	}
	return r.phones[i], true
}

// AddBirthday parses value and replaces any existing birthday.
func (r *Record) AddBirthday(value string) error {
	birthday, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

// Birthday returns the birthday, if one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record as "Contact name: <name>, phones: <p1>; <p2>".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}
	return "Contact name: " + r.name + ", phones: " + strings.Join(values, "; ")
}

func (r *Record) indexOf(value string) int {
	return slices.IndexFunc(r.phones, func(p Phone) bool { return p.value == value })
}
