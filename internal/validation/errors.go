package validation

import "sort"

// FieldErrors maps a boundary field name to its messages, in the order they were raised.
// An empty FieldErrors means the input passed.
type FieldErrors map[string][]string

func (e *FieldErrors) Add(field, message string) {
	if *e == nil {
		*e = FieldErrors{}
	}
	(*e)[field] = append((*e)[field], message)
}

// Merge appends every message of other after the messages already held for the same field.
func (e *FieldErrors) Merge(other FieldErrors) {
	for _, field := range other.Fields() {
		for _, message := range other[field] {
			e.Add(field, message)
		}
	}
}

func (e FieldErrors) Empty() bool {
	return len(e) == 0
}

func (e FieldErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// Fields returns the failing field names sorted alphabetically.
func (e FieldErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}
