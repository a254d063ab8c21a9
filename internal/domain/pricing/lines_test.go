package pricing

import "testing"

func TestVenueBaseSumsFlatSessionRates(t *testing.T) {
	lines := []VenueLine{
		{Venue: "Grand Lawn", Session: "evening", SessionRate: 50000},
		{Venue: "Crystal Hall", Session: "morning", SessionRate: 30000},
	}
	if got := VenueBase(lines); got != 80000 {
		t.Fatalf("expected venue base 80000, got %v", got)
	}
}

func TestVenueBaseClampsNegativeRate(t *testing.T) {
	if got := VenueBase([]VenueLine{{SessionRate: -500}}); got != 0 {
		t.Fatalf("expected 0 for negative rate, got %v", got)
	}
}

func TestRoomLineBaseExtraOccupantSurcharge(t *testing.T) {
	line := RoomLine{Rate: 5000, NumberOfRooms: 2, DefaultOccupancy: 2, TotalOccupancy: 5, ExtraPersonRate: 800}
	if got := RoomLineBase(line); got != 10800 {
		t.Fatalf("expected room base 10800, got %v", got)
	}
}

func TestRoomLineBaseNoSurchargeAtDefaultOccupancy(t *testing.T) {
	line := RoomLine{Rate: 5000, NumberOfRooms: 2, DefaultOccupancy: 2, TotalOccupancy: 4, ExtraPersonRate: 800}
	if got := RoomLineBase(line); got != 10000 {
		t.Fatalf("expected room base 10000, got %v", got)
	}
}

func TestSanitizeRoomLineDefaults(t *testing.T) {
	l := SanitizeRoomLine(RoomLine{Rate: 4000})
	if l.NumberOfRooms != 1 {
		t.Fatalf("expected numberOfRooms default 1, got %d", l.NumberOfRooms)
	}
	if l.DefaultOccupancy != 2 {
		t.Fatalf("expected defaultOccupancy default 2, got %d", l.DefaultOccupancy)
	}
	if l.TotalOccupancy != 2 {
		t.Fatalf("expected totalOccupancy clamped to 2, got %d", l.TotalOccupancy)
	}
}

func TestSanitizeRoomLineClampsOccupancyToMax(t *testing.T) {
	l := SanitizeRoomLine(RoomLine{
		Rate: 4000, NumberOfRooms: 2, DefaultOccupancy: 2, MaxOccupancy: 3, TotalOccupancy: 99,
	})
	if l.TotalOccupancy != 6 {
		t.Fatalf("expected totalOccupancy clamped to 6, got %d", l.TotalOccupancy)
	}
}

func TestMenuSelectionBaseCatalogPriceWithAdditionalItems(t *testing.T) {
	sel := MenuSelection{
		PackagePrice: 20000,
		Items: []MenuItemLine{
			{Name: "Paneer Tikka", IsPackageItem: true, Price: 450, Quantity: 10},
			{Name: "Live Counter", IsPackageItem: false, AdditionalPrice: 500, Quantity: 3},
		},
	}
	if got := MenuSelectionBase(sel); got != 21500 {
		t.Fatalf("expected menu base 21500, got %v", got)
	}
}

func TestMenuSelectionBaseCustomPriceOverridesCatalog(t *testing.T) {
	custom := 18000.0
	sel := MenuSelection{
		PackagePrice:       20000,
		CustomPackagePrice: &custom,
		Items: []MenuItemLine{
			{Name: "Dessert Counter", IsPackageItem: false, AdditionalPrice: 250, Quantity: 4},
		},
	}
	if got := MenuSelectionBase(sel); got != 19000 {
		t.Fatalf("expected menu base 19000, got %v", got)
	}
}

func TestMenuSelectionBasePackageItemsDoNotAccumulate(t *testing.T) {
	sel := MenuSelection{
		PackagePrice: 15000,
		Items: []MenuItemLine{
			{Name: "Dal Makhani", IsPackageItem: true, Price: 300, AdditionalPrice: 300, Quantity: 50},
		},
	}
	if got := MenuSelectionBase(sel); got != 15000 {
		t.Fatalf("expected package items covered by package price, got %v", got)
	}
}
