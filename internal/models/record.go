package models

import "strings"

// Field names that can appear in a generated record. The set actually
// present depends on the locale's datasets and the caller's request.
const (
	FieldName       = "Name"
	FieldSurname    = "Surname"
	FieldID         = "ID"
	FieldBirthDate  = "Birth Date"
	FieldStreet     = "Street"
	FieldCity       = "City"
	FieldPostalCode = "Postal Code"
	FieldCountry    = "Country"
	FieldDistrict   = "District"
	FieldCounty     = "County"
	FieldRegion     = "Region"
)

// CanonicalField normalizes a field name for matching: lowercase with
// spaces and underscores stripped. "Birth Date", "birthdate" and
// "birth_date" all canonicalize to "birthdate". Both exporters and the
// record lookup use this single definition.
func CanonicalField(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "_", "")
	return name
}

// Record is an ordered mapping from field name to value for one generated
// person. Field order is preserved from insertion so exports are stable.
type Record struct {
	keys   []string
	values map[string]string
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]string)}
}

// Set adds or replaces a field value, keeping first-insertion order.
func (r *Record) Set(field, value string) {
	if _, ok := r.values[field]; !ok {
		r.keys = append(r.keys, field)
	}
	r.values[field] = value
}

// Get returns the value stored under the exact field name.
func (r *Record) Get(field string) (string, bool) {
	v, ok := r.values[field]
	return v, ok
}

// Lookup returns the value whose key matches the given name after
// canonicalization, so "birthdate" finds a field stored as "Birth Date".
func (r *Record) Lookup(field string) (string, bool) {
	want := CanonicalField(field)
	for _, k := range r.keys {
		if CanonicalField(k) == want {
			return r.values[k], true
		}
	}
	return "", false
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Filter returns a new record containing only the fields matching the
// requested names (canonical matching). Original key spellings and their
// relative order are preserved; requested fields with no match are dropped.
func (r *Record) Filter(fields []string) *Record {
	wanted := make(map[string]bool, len(fields))
	for _, f := range fields {
		wanted[CanonicalField(f)] = true
	}
	out := NewRecord()
	for _, k := range r.keys {
		if wanted[CanonicalField(k)] {
			out.Set(k, r.values[k])
		}
	}
	return out
}
