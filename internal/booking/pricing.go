package booking

import (
	"mentorlane/internal/errors"
	"mentorlane/internal/mentor"
)

// UnitMinutes is the mentor's minimum session unit. Pricing tables quote
// per-unit prices, and partial units bill as whole ones.
const UnitMinutes = 15

// ComputePrice prices a selection of totalMinutes in the given session type
// against the mentor's pricing table.
//
// Returns ErrPricingUnavailable when the table has no entry for the mode,
// and ErrInvalidInput for a non-positive duration. Billing uses ceiling
// division: a 20-minute selection bills as two 15-minute units.
func ComputePrice(totalMinutes int, mode mentor.SessionType, table mentor.PricingTable) (int64, error) {
	if totalMinutes <= 0 {
		return 0, errors.Wrapf(errors.ErrInvalidInput, "duration %d minutes", totalMinutes)
	}
	perUnit, ok := table.PerUnit(mode)
	if !ok {
		return 0, errors.Wrapf(errors.ErrPricingUnavailable, "mode %s", mode)
	}
	units := int64((totalMinutes + UnitMinutes - 1) / UnitMinutes)
	return units * perUnit, nil
}

// Quote is the priced summary of a selection, for display before submission.
type Quote struct {
	TotalMinutes int
	Units        int
	Price        int64
	Mode         mentor.SessionType
}

// QuoteSelection computes the display quote for a selection.
func QuoteSelection(sel *Selection, table mentor.PricingTable) (*Quote, error) {
	total, err := sel.TotalDurationMinutes()
	if err != nil {
		return nil, err
	}
	price, err := ComputePrice(total, sel.Mode, table)
	if err != nil {
		return nil, err
	}
	return &Quote{
		TotalMinutes: total,
		Units:        (total + UnitMinutes - 1) / UnitMinutes,
		Price:        price,
		Mode:         sel.Mode,
	}, nil
}
