package pricing

import "math"

// Inputs is everything the totalizer needs: the three line collections, the
// GST flag and the requested discount.
type Inputs struct {
	Venues     []VenueLine
	Rooms      []RoomLine
	Menus      []MenuSelection
	IncludeGST bool
	Discount   DiscountSpec
}

// CategoryBreakdown is the per-category slice of the quotation summary.
type CategoryBreakdown struct {
	Base         float64
	GST          float64
	TotalWithGST float64
	Discount     float64
}

// Totals is the full recomputed quotation summary. It is a pure projection of
// Inputs and is safe to recompute on every edit.
type Totals struct {
	Venue          CategoryBreakdown
	Room           CategoryBreakdown
	Menu           CategoryBreakdown
	TotalWithGST   float64
	DiscountAmount float64
	ExceedsLimit   bool
	BanquetTotal   float64
	GrandTotal     float64
	FinalTotal     float64
}

// RoundUp rounds a monetary value up to the next whole rupee. The epsilon
// keeps exact results from being bumped a rupee by float noise.
func RoundUp(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Ceil(v - 1e-9)
}

// ComputeTotals runs the recomputation pipeline in its contractual order:
//
//  1. category bases
//  2. per-category GST on the undiscounted bases
//  3. GST-inclusive category totals, rounded up
//  4. discount resolved against the GST-inclusive subtotal
//  5. discount allocated back across categories for display
//  6. grand total = subtotal minus discount, rounded up
//
// The discount is applied after tax. Moving it before tax changes the final
// number and breaks reconciliation with issued quotations.
func ComputeTotals(in Inputs, ceilingPercent float64) Totals {
	t := computeBases(in)
	res := ResolveDiscount(in.Discount.Type, in.Discount.Value, t.TotalWithGST, ceilingPercent)
	return finishTotals(t, res.Amount, res.ExceedsLimit)
}

// AllocateDiscount splits a discount across category totals proportionally to
// each category's GST-inclusive subtotal. The raw shares sum exactly to the
// discount; rounding happens at the display boundary. The allocation never
// changes the payable total.
func AllocateDiscount(discount float64, categoryTotals []float64) []float64 {
	shares := make([]float64, len(categoryTotals))
	if discount <= 0 {
		return shares
	}
	var total float64
	for _, ct := range categoryTotals {
		total += ct
	}
	if total <= 0 {
		return shares
	}
	for i, ct := range categoryTotals {
		shares[i] = discount * ct / total
	}
	return shares
}

func computeBases(in Inputs) Totals {
	venueBase := VenueBase(in.Venues)
	roomBase := RoomBase(in.Rooms)
	menuBase := MenuBase(in.Menus)

	venueGST := VenueGST(venueBase, in.IncludeGST)
	roomGST := RoomGST(in.Rooms, in.IncludeGST)
	menuGST := MenuGST(menuBase, in.IncludeGST)

	t := Totals{
		Venue: CategoryBreakdown{Base: venueBase, GST: venueGST, TotalWithGST: RoundUp(venueBase + venueGST)},
		Room:  CategoryBreakdown{Base: roomBase, GST: roomGST, TotalWithGST: RoundUp(roomBase + roomGST)},
		Menu:  CategoryBreakdown{Base: menuBase, GST: menuGST, TotalWithGST: RoundUp(menuBase + menuGST)},
	}
	t.TotalWithGST = t.Venue.TotalWithGST + t.Room.TotalWithGST + t.Menu.TotalWithGST
	return t
}

func finishTotals(t Totals, discountAmount float64, exceeds bool) Totals {
	t.DiscountAmount = discountAmount
	t.ExceedsLimit = exceeds

	shares := AllocateDiscount(discountAmount, []float64{
		t.Venue.TotalWithGST, t.Room.TotalWithGST, t.Menu.TotalWithGST,
	})
	t.Venue.Discount = RoundUp(shares[0])
	t.Room.Discount = RoundUp(shares[1])
	t.Menu.Discount = RoundUp(shares[2])

	t.BanquetTotal = RoundUp(t.Venue.TotalWithGST + t.Menu.TotalWithGST)
	t.GrandTotal = RoundUp(t.TotalWithGST - discountAmount)
	t.FinalTotal = t.GrandTotal
	return t
}
