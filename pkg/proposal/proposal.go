package proposal

// Data holds everything needed to render a proposal PDF. The service layer
// maps the stored quotation and system settings into this shape; the
// renderer never reaches back into the database.
type Data struct {
	// Letterhead
	CompanyName    string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
	CompanyGSTIN   string

	// Document header
	Reference  string
	Date       string
	EventDate  string
	GuestCount int
	Status     string

	// Customer block
	CustomerName    string
	CustomerCompany string
	CustomerPhone   string
	CustomerEmail   string
	CustomerAddress string

	// Line sections. Empty sections are skipped.
	VenueLines []VenueLine
	RoomLines  []RoomLine
	MenuBlocks []MenuBlock

	// Totals. GST columns are zero when the quotation excludes GST.
	IncludeGST       bool
	VenueRentalTotal float64
	RoomTotal        float64
	MenuTotal        float64
	BanquetTotal     float64
	TotalWithGST     float64
	DiscountLabel    string
	DiscountAmount   float64
	GrandTotal       float64

	Note string
}

// VenueLine is one venue hire row on the proposal
type VenueLine struct {
	EventDate string
	Venue     string
	Space     string
	Session   string
	Rate      float64
}

// RoomLine is one accommodation row on the proposal
type RoomLine struct {
	Category      string
	Rate          float64
	NumberOfRooms int
	Occupancy     int
	LineTotal     float64
}

// MenuBlock is one menu package section with its dishes
type MenuBlock struct {
	PackageName  string
	PackagePrice float64
	Items        []MenuItem
	BlockTotal   float64
}

// MenuItem is one dish row inside a menu block
type MenuItem struct {
	Name            string
	IsPackageItem   bool
	AdditionalPrice float64
	Quantity        int
}
