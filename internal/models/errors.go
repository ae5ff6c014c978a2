package models

import "fmt"

// RangeError reports a birth-date component outside its valid domain.
// The message names the offending component and values so callers can
// surface it verbatim.
type RangeError struct {
	Msg string
}

func (e *RangeError) Error() string {
	return e.Msg
}

// NewRangeError builds a RangeError from a format string.
func NewRangeError(format string, args ...any) *RangeError {
	return &RangeError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownLocaleError reports a request for a locale with no dataset
// directory.
type UnknownLocaleError struct {
	Locale string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("unknown locale %q", e.Locale)
}

// MissingDatasetError reports an empty or absent category collection that
// generation needed a value from.
type MissingDatasetError struct {
	Locale   string
	Category string
}

func (e *MissingDatasetError) Error() string {
	return fmt.Sprintf("locale %q has no data for category %q", e.Locale, e.Category)
}

// InvalidArgumentError reports a malformed caller argument, such as a
// non-positive record count.
type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return e.Msg
}

// FieldNotFoundError reports a requested export field outside the strict
// exporter's canonical vocabulary.
type FieldNotFoundError struct {
	Field string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %q is not a recognized export field", e.Field)
}
