// Package contact defines a single address-book entry: a validated name, an
// ordered list of phone numbers and an optional birthday.
//
// Every constructor validates its input and reports malformed values as a
// *ValidationError. Lookups that reference an absent phone report a
// *NotFoundError. Both match their sentinel (ErrInvalid, ErrNotFound) with
// errors.Is, so callers can branch on the kind without a type assertion.
package contact
