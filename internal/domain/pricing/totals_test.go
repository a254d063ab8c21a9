package pricing

import (
	"math"
	"testing"
)

func TestComputeTotalsVenueOnly(t *testing.T) {
	in := Inputs{
		Venues:     []VenueLine{{Venue: "Grand Lawn", Session: "evening", SessionRate: 50000}},
		IncludeGST: true,
	}
	totals := ComputeTotals(in, 10)
	if totals.Venue.GST != 9000 {
		t.Fatalf("expected venue GST 9000, got %v", totals.Venue.GST)
	}
	if totals.GrandTotal != 59000 {
		t.Fatalf("expected grand total 59000, got %v", totals.GrandTotal)
	}
	if totals.FinalTotal != totals.GrandTotal {
		t.Fatalf("final total must equal grand total, got %v vs %v", totals.FinalTotal, totals.GrandTotal)
	}
}

func TestComputeTotalsRoomWithSurchargeAndConcessionalSlab(t *testing.T) {
	in := Inputs{
		Rooms: []RoomLine{
			{Rate: 5000, NumberOfRooms: 2, DefaultOccupancy: 2, TotalOccupancy: 5, ExtraPersonRate: 800},
		},
		IncludeGST: true,
	}
	totals := ComputeTotals(in, 10)
	if totals.Room.Base != 10800 {
		t.Fatalf("expected room base 10800, got %v", totals.Room.Base)
	}
	if totals.Room.GST != 540 {
		t.Fatalf("expected room GST 540, got %v", totals.Room.GST)
	}
	if totals.GrandTotal != 11340 {
		t.Fatalf("expected grand total 11340, got %v", totals.GrandTotal)
	}
}

func TestComputeTotalsDiscountAppliedAfterTax(t *testing.T) {
	in := Inputs{
		Rooms: []RoomLine{
			{Rate: 5000, NumberOfRooms: 2, DefaultOccupancy: 2, TotalOccupancy: 5, ExtraPersonRate: 800},
		},
		IncludeGST: true,
		Discount:   DiscountSpec{Type: DiscountTypePercentage, Value: 10},
	}
	totals := ComputeTotals(in, 10)
	// 10% of the GST-inclusive 11340, not of the 10800 base.
	if totals.DiscountAmount != 1134 {
		t.Fatalf("expected discount 1134, got %v", totals.DiscountAmount)
	}
	if totals.GrandTotal != 10206 {
		t.Fatalf("expected grand total 10206, got %v", totals.GrandTotal)
	}
}

func TestComputeTotalsExceedsLimitStillApplies(t *testing.T) {
	in := Inputs{
		Venues:     []VenueLine{{SessionRate: 100000}},
		IncludeGST: false,
		Discount:   DiscountSpec{Type: DiscountTypePercentage, Value: 15},
	}
	totals := ComputeTotals(in, 10)
	if !totals.ExceedsLimit {
		t.Fatalf("expected exceedsLimit at 15%% against a 10%% ceiling")
	}
	if totals.DiscountAmount != 15000 {
		t.Fatalf("expected discount 15000, got %v", totals.DiscountAmount)
	}
	if totals.GrandTotal != 85000 {
		t.Fatalf("expected grand total 85000, got %v", totals.GrandTotal)
	}
}

func TestComputeTotalsIdempotent(t *testing.T) {
	in := Inputs{
		Venues: []VenueLine{{SessionRate: 42500}},
		Rooms: []RoomLine{
			{Rate: 7500, NumberOfRooms: 3, DefaultOccupancy: 2, TotalOccupancy: 7, ExtraPersonRate: 650},
		},
		Menus: []MenuSelection{
			{PackagePrice: 1850, Items: []MenuItemLine{{AdditionalPrice: 120, Quantity: 7}}},
		},
		IncludeGST: true,
		Discount:   DiscountSpec{Type: DiscountTypeFixed, Value: 5000},
	}
	first := ComputeTotals(in, 10)
	second := ComputeTotals(in, 10)
	if first != second {
		t.Fatalf("recomputation diverged: %+v vs %+v", first, second)
	}
}

func TestComputeTotalsMonotonicInRates(t *testing.T) {
	base := Inputs{
		Venues:     []VenueLine{{SessionRate: 30000}},
		IncludeGST: true,
		Discount:   DiscountSpec{Type: DiscountTypePercentage, Value: 5},
	}
	lower := ComputeTotals(base, 10)
	raised := base
	raised.Venues = []VenueLine{{SessionRate: 30500}}
	higher := ComputeTotals(raised, 10)
	if higher.GrandTotal < lower.GrandTotal {
		t.Fatalf("raising a rate lowered the grand total: %v -> %v", lower.GrandTotal, higher.GrandTotal)
	}
}

func TestAllocateDiscountSharesSumToDiscount(t *testing.T) {
	shares := AllocateDiscount(1134, []float64{59000, 11340, 21500})
	var sum float64
	for _, s := range shares {
		sum += s
	}
	if math.Abs(sum-1134) > 1e-6 {
		t.Fatalf("raw shares must sum to the discount, got %v", sum)
	}
}

func TestAllocateDiscountZeroBase(t *testing.T) {
	shares := AllocateDiscount(500, []float64{0, 0, 0})
	for i, s := range shares {
		if s != 0 {
			t.Fatalf("expected zero share at %d, got %v", i, s)
		}
	}
}

func TestComputeTotalsRoundedSharesNearRawAllocation(t *testing.T) {
	in := Inputs{
		Venues:     []VenueLine{{SessionRate: 33333}},
		Rooms:      []RoomLine{{Rate: 4111, NumberOfRooms: 1, DefaultOccupancy: 2, TotalOccupancy: 2}},
		Menus:      []MenuSelection{{PackagePrice: 777}},
		IncludeGST: true,
		Discount:   DiscountSpec{Type: DiscountTypePercentage, Value: 7},
	}
	totals := ComputeTotals(in, 10)
	raw := AllocateDiscount(totals.DiscountAmount, []float64{
		totals.Venue.TotalWithGST, totals.Room.TotalWithGST, totals.Menu.TotalWithGST,
	})
	rounded := []float64{totals.Venue.Discount, totals.Room.Discount, totals.Menu.Discount}
	for i := range raw {
		if rounded[i]-raw[i] < 0 || rounded[i]-raw[i] > 1 {
			t.Fatalf("category %d share rounded outside [raw, raw+1]: raw %v rounded %v", i, raw[i], rounded[i])
		}
	}
}

func TestRenderBreakdownMatchesLivePipeline(t *testing.T) {
	in := Inputs{
		Venues: []VenueLine{{SessionRate: 50000}},
		Rooms: []RoomLine{
			{Rate: 5000, NumberOfRooms: 2, DefaultOccupancy: 2, TotalOccupancy: 5, ExtraPersonRate: 800},
		},
		Menus:      []MenuSelection{{PackagePrice: 20000, Items: []MenuItemLine{{AdditionalPrice: 500, Quantity: 3}}}},
		IncludeGST: true,
		Discount:   DiscountSpec{Type: DiscountTypePercentage, Value: 10},
	}
	live := ComputeTotals(in, 10)
	rendered := RenderBreakdown(in, live.DiscountAmount)

	if rendered.Venue.Base != live.Venue.Base || rendered.Room.Base != live.Room.Base || rendered.Menu.Base != live.Menu.Base {
		t.Fatalf("rendered bases diverged from live pipeline: %+v vs %+v", rendered, live)
	}
	if rendered.TotalWithGST != live.TotalWithGST {
		t.Fatalf("rendered subtotal %v != live %v", rendered.TotalWithGST, live.TotalWithGST)
	}
	if rendered.GrandTotal != live.GrandTotal {
		t.Fatalf("rendered grand total %v != live %v", rendered.GrandTotal, live.GrandTotal)
	}
}

func TestRenderBreakdownTrustsStoredDiscount(t *testing.T) {
	in := Inputs{
		Venues:     []VenueLine{{SessionRate: 10000}},
		IncludeGST: false,
	}
	// A stored discount far over any ceiling is reproduced as charged.
	rendered := RenderBreakdown(in, 4000)
	if rendered.GrandTotal != 6000 {
		t.Fatalf("expected grand total 6000, got %v", rendered.GrandTotal)
	}
	if rendered.ExceedsLimit {
		t.Fatalf("render path must not re-check the ceiling")
	}
}

func TestRoundUpAlwaysRoundsUp(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{-3, 0},
		{10206, 10206},
		{10205.01, 10206},
		{10205.999, 10206},
	}
	for _, tc := range cases {
		if got := RoundUp(tc.in); got != tc.want {
			t.Fatalf("RoundUp(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
