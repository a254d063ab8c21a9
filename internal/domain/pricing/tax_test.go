package pricing

import "testing"

func TestVenueGSTFlatEighteenPercent(t *testing.T) {
	if got := VenueGST(50000, true); got != 9000 {
		t.Fatalf("expected venue GST 9000, got %v", got)
	}
}

func TestGSTZeroWhenExcluded(t *testing.T) {
	if got := VenueGST(50000, false); got != 0 {
		t.Fatalf("expected 0 venue GST, got %v", got)
	}
	if got := MenuGST(20000, false); got != 0 {
		t.Fatalf("expected 0 menu GST, got %v", got)
	}
	lines := []RoomLine{{Rate: 5000, NumberOfRooms: 1, DefaultOccupancy: 2, TotalOccupancy: 2}}
	if got := RoomGST(lines, false); got != 0 {
		t.Fatalf("expected 0 room GST, got %v", got)
	}
}

func TestRoomGSTThresholdInclusiveOnLowSide(t *testing.T) {
	if got := RoomGSTPercent(7500); got != 5 {
		t.Fatalf("expected 5%% at rate 7500, got %v", got)
	}
	if got := RoomGSTPercent(7501); got != 18 {
		t.Fatalf("expected 18%% at rate 7501, got %v", got)
	}
}

func TestRoomGSTEvaluatedPerLine(t *testing.T) {
	// A cheap and an expensive category in one quotation must not share a slab.
	lines := []RoomLine{
		{Rate: 5000, NumberOfRooms: 2, DefaultOccupancy: 2, TotalOccupancy: 4},  // base 10000, 5%
		{Rate: 10000, NumberOfRooms: 1, DefaultOccupancy: 2, TotalOccupancy: 2}, // base 10000, 18%
	}
	got := RoomGST(lines, true)
	if got != 500+1800 {
		t.Fatalf("expected room GST 2300, got %v", got)
	}
}

func TestRoomGSTIncludesSurchargeInTaxedBase(t *testing.T) {
	lines := []RoomLine{
		{Rate: 5000, NumberOfRooms: 2, DefaultOccupancy: 2, TotalOccupancy: 5, ExtraPersonRate: 800},
	}
	// base 10800 at 5%
	if got := RoomGST(lines, true); got != 540 {
		t.Fatalf("expected room GST 540, got %v", got)
	}
}
