// Package specialty defines the fixed enumeration of services that orders
// request and specialists provide, together with the capability set an account
// carries once specialist mode is enabled. The enumeration is the single source
// of truth for the backend: orders are created against one of these ids and a
// specialist may only claim orders whose specialty is in their set.
package specialty

import (
	"servicedesk/internal/pkg/errs"
)

// ID identifies a single service specialty.
type ID string

// The allowed specialty enumeration.
const (
	Plumber     ID = "santehnik"
	Electrician ID = "elektrik"
	Cleaning    ID = "cleaning"
	Cargo       ID = "cargo"
	Repair      ID = "repair"
	Loader      ID = "loader"
)

// labels maps each specialty to its display label.
func labels() map[ID]string {
	return map[ID]string{
		Plumber:     "Сантехник",
		Electrician: "Электрик",
		Cleaning:    "Уборка / Клининг",
		Cargo:       "Грузоперевозки",
		Repair:      "Ремонт техники",
		Loader:      "Грузчик",
	}
}

// All returns the full enumeration in a stable order, for listing endpoints.
func All() []ID {
	return []ID{Plumber, Electrician, Cleaning, Cargo, Repair, Loader}
}

// IsAllowed reports whether id belongs to the enumeration.
func IsAllowed(id ID) bool {
	_, ok := labels()[id]
	return ok
}

// Parse converts a raw string into a specialty ID.
// Returns a validation error when the string is not in the enumeration.
func Parse(raw string) (ID, error) {
	id := ID(raw)
	if !IsAllowed(id) {
		return "", errs.NewValueIsInvalidError("specialtyId")
	}
	return id, nil
}

// String returns the raw identifier.
func (id ID) String() string {
	return string(id)
}

// Label returns the display label for the specialty, or the raw id when the
// specialty is unknown.
func (id ID) Label() string {
	if label, ok := labels()[id]; ok {
		return label
	}
	return string(id)
}

// Validate checks that the ID belongs to the enumeration.
func (id ID) Validate() error {
	if !IsAllowed(id) {
		return errs.NewValueIsInvalidError("specialtyId")
	}
	return nil
}

// Set is the capability set of a specialist: the specialties they are
// permitted to service. The zero value is a valid empty set.
type Set struct {
	ids []ID
}

// NewSet builds a capability set from raw identifiers, silently dropping
// entries outside the enumeration and duplicates. Unknown ids are filtered
// rather than rejected so a stale client never locks a specialist out of
// their remaining valid capabilities.
func NewSet(raw []string) Set {
	seen := make(map[ID]bool, len(raw))
	ids := make([]ID, 0, len(raw))
	for _, r := range raw {
		id := ID(r)
		if !IsAllowed(id) || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return Set{ids: ids}
}

// Contains reports whether the capability set includes the given specialty.
func (s Set) Contains(id ID) bool {
	for _, member := range s.ids {
		if member == id {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the set contains no specialties.
func (s Set) IsEmpty() bool {
	return len(s.ids) == 0
}

// IDs returns the members of the set in insertion order.
func (s Set) IDs() []ID {
	out := make([]ID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Strings returns the members as raw strings, for persistence and projections.
func (s Set) Strings() []string {
	out := make([]string, len(s.ids))
	for i, id := range s.ids {
		out[i] = string(id)
	}
	return out
}
