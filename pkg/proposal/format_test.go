package proposal

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{950, "₹950.00"},
		{7500, "₹7,500.00"},
		{59000, "₹59,000.00"},
		{123456, "₹1,23,456.00"},
		{12345678.9, "₹1,23,45,678.90"},
		{-1134, "-₹1,134.00"},
	}

	for _, tc := range cases {
		if got := FormatINR(tc.in); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGeneratePDFProducesDocument(t *testing.T) {
	data := &Data{
		CompanyName:  "Lakeside Banquets",
		Reference:    "QT-000042",
		Date:         "2026-08-30",
		EventDate:    "2026-11-20",
		CustomerName: "A. Sharma",
		VenueLines: []VenueLine{
			{EventDate: "2026-11-20", Venue: "Lakeside Lawn", Space: "Main Lawn", Session: "evening", Rate: 50000},
		},
		RoomLines: []RoomLine{
			{Category: "Deluxe", Rate: 5000, NumberOfRooms: 2, Occupancy: 4, LineTotal: 10000},
		},
		MenuBlocks: []MenuBlock{
			{PackageName: "Silver Veg", PackagePrice: 1200, Items: []MenuItem{
				{Name: "Paneer Tikka", IsPackageItem: true},
				{Name: "Live Chaat Counter", IsPackageItem: false, AdditionalPrice: 15000, Quantity: 1},
			}},
		},
		IncludeGST:       true,
		VenueRentalTotal: 59000,
		RoomTotal:        10500,
		MenuTotal:        17700,
		GrandTotal:       87200,
	}

	pdf, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("GeneratePDF returned empty document")
	}
	if string(pdf[:4]) != "%PDF" {
		t.Fatalf("output does not start with PDF magic, got %q", pdf[:4])
	}
}
