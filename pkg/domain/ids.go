// Package domain holds typed identifiers shared across modules.
//
// Each ID is a distinct UUID type so a PlotID cannot be passed where a
// DistrictID is expected. Parse functions enforce the invariant that IDs are
// valid, non-empty, non-nil UUIDs at trust boundaries.
package domain

import (
	"github.com/google/uuid"

	dErrors "kleingarten/pkg/domain-errors"
)

// PlotID identifies a single allotment plot.
type PlotID uuid.UUID

// DistrictID identifies a district (Bezirk).
type DistrictID uuid.UUID

// ApplicationID identifies an assignment application (Antrag).
type ApplicationID uuid.UUID

// PersonID identifies a natural person in the applicant registry.
type PersonID uuid.UUID

func (id PlotID) String() string        { return uuid.UUID(id).String() }
func (id DistrictID) String() string    { return uuid.UUID(id).String() }
func (id ApplicationID) String() string { return uuid.UUID(id).String() }
func (id PersonID) String() string      { return uuid.UUID(id).String() }

// IsNil reports whether the ID is the zero UUID.
func (id PlotID) IsNil() bool        { return uuid.UUID(id) == uuid.Nil }
func (id DistrictID) IsNil() bool    { return uuid.UUID(id) == uuid.Nil }
func (id ApplicationID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id PersonID) IsNil() bool      { return uuid.UUID(id) == uuid.Nil }

// MarshalText renders the ID as its canonical UUID string in JSON and logs.
func (id PlotID) MarshalText() ([]byte, error)        { return []byte(id.String()), nil }
func (id DistrictID) MarshalText() ([]byte, error)    { return []byte(id.String()), nil }
func (id ApplicationID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id PersonID) MarshalText() ([]byte, error)      { return []byte(id.String()), nil }

// UnmarshalText parses the canonical UUID string form.
func (id *PlotID) UnmarshalText(b []byte) error {
	parsed, err := ParsePlotID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *DistrictID) UnmarshalText(b []byte) error {
	parsed, err := ParseDistrictID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *ApplicationID) UnmarshalText(b []byte) error {
	parsed, err := ParseApplicationID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id *PersonID) UnmarshalText(b []byte) error {
	parsed, err := ParsePersonID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// NewPlotID returns a fresh random PlotID.
func NewPlotID() PlotID { return PlotID(uuid.New()) }

// NewDistrictID returns a fresh random DistrictID.
func NewDistrictID() DistrictID { return DistrictID(uuid.New()) }

// NewApplicationID returns a fresh random ApplicationID.
func NewApplicationID() ApplicationID { return ApplicationID(uuid.New()) }

// NewPersonID returns a fresh random PersonID.
func NewPersonID() PersonID { return PersonID(uuid.New()) }

// ParsePlotID validates and returns a PlotID.
func ParsePlotID(s string) (PlotID, error) {
	parsed, err := parse(s, "plot id")
	return PlotID(parsed), err
}

// ParseDistrictID validates and returns a DistrictID.
func ParseDistrictID(s string) (DistrictID, error) {
	parsed, err := parse(s, "district id")
	return DistrictID(parsed), err
}

// ParseApplicationID validates and returns an ApplicationID.
func ParseApplicationID(s string) (ApplicationID, error) {
	parsed, err := parse(s, "application id")
	return ApplicationID(parsed), err
}

// ParsePersonID validates and returns a PersonID.
func ParsePersonID(s string) (PersonID, error) {
	parsed, err := parse(s, "person id")
	return PersonID(parsed), err
}

func parse(s, kind string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is required", kind)
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s is not a valid UUID", kind)
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.Newf(dErrors.CodeInvalidInput, "%s must not be the nil UUID", kind)
	}
	return parsed, nil
}
