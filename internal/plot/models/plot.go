package models

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	id "kleingarten/pkg/domain"
	dErrors "kleingarten/pkg/domain-errors"
)

const maxNumberLength = 16

// Plot is the aggregate root for one allocatable unit of garden land
// (Parzelle).
//
// Invariants:
//   - Number is non-empty, at most 16 characters, stored upper-cased
//   - Area is strictly positive; Price, if present, is non-negative
//   - AssignedOn is non-nil if and only if Status is assigned
//   - (DistrictID, Number) is unique among non-deleted plots (store-enforced)
//   - DistrictID is immutable after creation
//
// Status transitions go through the Can/Apply pairs below so every path
// keeps the AssignedOn invariant and stamps the audit columns.
type Plot struct {
	ID              id.PlotID        `json:"id"`
	DistrictID      id.DistrictID    `json:"district_id"`
	Number          string           `json:"number"`
	Area            decimal.Decimal  `json:"area"`
	Status          PlotStatus       `json:"status"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	AssignedOn      *time.Time       `json:"assigned_on,omitempty"`
	Notes           string           `json:"notes,omitempty"`
	SpecialFeatures string           `json:"special_features,omitempty"`
	HasWater        bool             `json:"has_water"`
	HasElectricity  bool             `json:"has_electricity"`
	Priority        int              `json:"priority"`

	CreatedAt time.Time `json:"created_at"`
	CreatedBy string    `json:"created_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	Deleted   bool      `json:"-"`
	Version   int64     `json:"version"`
}

// NewPlot constructs a plot in the available state.
func NewPlot(plotID id.PlotID, districtID id.DistrictID, number string, area decimal.Decimal, now time.Time, actor string) (*Plot, error) {
	number = NormalizeNumber(number)
	if number == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "plot number cannot be empty")
	}
	if len(number) > maxNumberLength {
		return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "plot number must be %d characters or less", maxNumberLength)
	}
	if districtID.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "plot requires a district")
	}
	if !area.IsPositive() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "plot area must be positive")
	}
	return &Plot{
		ID:         plotID,
		DistrictID: districtID,
		Number:     number,
		Area:       area,
		Status:     PlotStatusAvailable,
		CreatedAt:  now,
		CreatedBy:  actor,
		UpdatedAt:  now,
		UpdatedBy:  actor,
	}, nil
}

// NormalizeNumber upper-cases and trims a plot number for case-insensitive
// uniqueness within a district.
func NormalizeNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

// AvailableForAssignment reports whether the plot may be assigned without
// forcing.
func (p *Plot) AvailableForAssignment() bool {
	return p.Status.AvailableForAssignment()
}

// CanAssign checks whether an assignment may start. With force the
// availability check is bypassed, but a decommissioned plot can never be
// assigned.
func (p *Plot) CanAssign(force bool) error {
	if p.Status.Terminal() {
		return dErrors.New(dErrors.CodeInvariantViolation, "plot is decommissioned")
	}
	if !force && !p.AvailableForAssignment() {
		return dErrors.Newf(dErrors.CodeInvariantViolation,
			"plot is not available for assignment (status %s); use forceAssignment to override", p.Status)
	}
	return nil
}

// ApplyAssignment transitions the plot to assigned as of the given date.
// Call CanAssign first.
func (p *Plot) ApplyAssignment(on time.Time, now time.Time, actor string) {
	p.Status = PlotStatusAssigned
	p.AssignedOn = &on
	p.touch(now, actor)
}

// Assign validates and applies the assignment in one call. Prefer
// CanAssign + ApplyAssignment when validation runs up front.
func (p *Plot) Assign(on time.Time, force bool, now time.Time, actor string) error {
	if err := p.CanAssign(force); err != nil {
		return err
	}
	p.ApplyAssignment(on, now, actor)
	return nil
}

// CanReserve checks whether the plot may be reserved. Only available plots
// can be reserved.
func (p *Plot) CanReserve() error {
	if !p.Status.CanTransitionTo(PlotStatusReserved) {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "plot cannot be reserved from status %s", p.Status)
	}
	return nil
}

// ApplyReservation transitions the plot to reserved. Call CanReserve first.
func (p *Plot) ApplyReservation(now time.Time, actor string) {
	p.Status = PlotStatusReserved
	p.touch(now, actor)
}

// CanDecommission checks whether the plot may be retired in place.
func (p *Plot) CanDecommission() error {
	if p.Status.Terminal() {
		return dErrors.New(dErrors.CodeInvariantViolation, "plot is already decommissioned")
	}
	return nil
}

// ApplyDecommission irreversibly retires the plot while keeping its record.
// Clearing AssignedOn keeps the assigned-on invariant. Call CanDecommission
// first.
func (p *Plot) ApplyDecommission(now time.Time, actor string) {
	p.Status = PlotStatusDecommissioned
	p.AssignedOn = nil
	p.touch(now, actor)
}

// AppendNote adds a dated audit line to the free-text notes. Notes are
// append-only by convention: existing content is never rewritten.
func (p *Plot) AppendNote(now time.Time, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	line := fmt.Sprintf("[%s] %s", now.Format("2006-01-02"), text)
	if p.Notes == "" {
		p.Notes = line
		return
	}
	p.Notes = p.Notes + "\n" + line
}

// NumericSuffix returns the trailing digits of the plot number and whether
// there are any. "A-103" yields 103. The related-plot heuristic compares
// suffixes of neighbouring numbers.
func (p *Plot) NumericSuffix() (int, bool) {
	runes := []rune(p.Number)
	end := len(runes)
	start := end
	for start > 0 && unicode.IsDigit(runes[start-1]) {
		start--
	}
	if start == end {
		return 0, false
	}
	suffix := 0
	for _, r := range runes[start:end] {
		suffix = suffix*10 + int(r-'0')
	}
	return suffix, true
}

func (p *Plot) touch(now time.Time, actor string) {
	p.UpdatedAt = now
	p.UpdatedBy = actor
}

// Touch stamps the audit columns. Exported for the update command, which
// mutates attribute fields directly.
func (p *Plot) Touch(now time.Time, actor string) {
	p.touch(now, actor)
}

// Clone returns a deep copy. Stores hand out clones so callers cannot mutate
// persisted state behind the store's back.
func (p *Plot) Clone() *Plot {
	clone := *p
	if p.Price != nil {
		price := *p.Price
		clone.Price = &price
	}
	if p.AssignedOn != nil {
		on := *p.AssignedOn
		clone.AssignedOn = &on
	}
	return &clone
}

// CheckInvariants verifies the entity-level invariants. Stores call this
// before persisting so a buggy caller cannot write inconsistent state.
func (p *Plot) CheckInvariants() error {
	if !p.Status.Valid() {
		return dErrors.Newf(dErrors.CodeInvariantViolation, "unknown plot status %q", p.Status)
	}
	if !p.Area.IsPositive() {
		return dErrors.New(dErrors.CodeInvariantViolation, "plot area must be positive")
	}
	if p.Price != nil && p.Price.IsNegative() {
		return dErrors.New(dErrors.CodeInvariantViolation, "plot price must not be negative")
	}
	assigned := p.Status == PlotStatusAssigned
	if assigned != (p.AssignedOn != nil) {
		return dErrors.New(dErrors.CodeInvariantViolation, "assigned_on must be set exactly when status is assigned")
	}
	return nil
}
