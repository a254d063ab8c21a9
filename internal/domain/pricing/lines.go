package pricing

// VenueLine is one venue space booked for one session on one date. The
// session rate is a flat charge, never multiplied by guest count.
type VenueLine struct {
	EventDate   string
	Venue       string
	VenueSpace  string
	Session     string
	SessionRate float64
}

// RoomLine is one room package row: a room category booked a number of times
// with a total occupancy across all rooms.
type RoomLine struct {
	Category         string
	Rate             float64
	NumberOfRooms    int
	TotalOccupancy   int
	DefaultOccupancy int
	MaxOccupancy     int
	ExtraPersonRate  float64
}

// MenuItemLine is a single dish row inside a menu selection. Only items not
// covered by the package contribute their additional price to the base.
type MenuItemLine struct {
	Name            string
	IsPackageItem   bool
	Price           float64
	AdditionalPrice float64
	Quantity        int
}

// MenuSelection is one menu package chosen for the event, with an optional
// per-quotation override of the package price.
type MenuSelection struct {
	PackageID          string
	PackageName        string
	PackagePrice       float64
	CustomPackagePrice *float64
	Items              []MenuItemLine
}

// SanitizeVenueLine clamps negative rates to zero.
func SanitizeVenueLine(l VenueLine) VenueLine {
	if l.SessionRate < 0 {
		l.SessionRate = 0
	}
	return l
}

// SanitizeRoomLine applies the defaults and occupancy invariant:
// defaultOccupancy*numberOfRooms <= totalOccupancy <= maxOccupancy*numberOfRooms.
// Out-of-range occupancy is clamped silently, matching the form behaviour.
func SanitizeRoomLine(l RoomLine) RoomLine {
	if l.NumberOfRooms <= 0 {
		l.NumberOfRooms = 1
	}
	if l.DefaultOccupancy <= 0 {
		l.DefaultOccupancy = 2
	}
	if l.Rate < 0 {
		l.Rate = 0
	}
	if l.ExtraPersonRate < 0 {
		l.ExtraPersonRate = 0
	}
	floor := l.DefaultOccupancy * l.NumberOfRooms
	if l.TotalOccupancy < floor {
		l.TotalOccupancy = floor
	}
	if l.MaxOccupancy > 0 {
		ceil := l.MaxOccupancy * l.NumberOfRooms
		if l.TotalOccupancy > ceil {
			l.TotalOccupancy = ceil
		}
	}
	return l
}

// SanitizeMenuSelection clamps negative prices and quantities to zero.
func SanitizeMenuSelection(s MenuSelection) MenuSelection {
	if s.PackagePrice < 0 {
		s.PackagePrice = 0
	}
	if s.CustomPackagePrice != nil && *s.CustomPackagePrice < 0 {
		zero := 0.0
		s.CustomPackagePrice = &zero
	}
	items := make([]MenuItemLine, len(s.Items))
	for i, it := range s.Items {
		if it.Price < 0 {
			it.Price = 0
		}
		if it.AdditionalPrice < 0 {
			it.AdditionalPrice = 0
		}
		if it.Quantity < 0 {
			it.Quantity = 0
		}
		items[i] = it
	}
	s.Items = items
	return s
}

// VenueBase sums the flat session rates over all venue lines.
func VenueBase(lines []VenueLine) float64 {
	var total float64
	for _, l := range lines {
		total += SanitizeVenueLine(l).SessionRate
	}
	return total
}

// RoomLineBase computes rate*numberOfRooms plus the extra-occupant surcharge
// for a single room line.
func RoomLineBase(l RoomLine) float64 {
	l = SanitizeRoomLine(l)
	extra := l.TotalOccupancy - l.DefaultOccupancy*l.NumberOfRooms
	if extra < 0 {
		extra = 0
	}
	return l.Rate*float64(l.NumberOfRooms) + float64(extra)*l.ExtraPersonRate
}

// RoomBase sums the room line bases.
func RoomBase(lines []RoomLine) float64 {
	var total float64
	for _, l := range lines {
		total += RoomLineBase(l)
	}
	return total
}

// EffectivePackagePrice returns the per-quotation override when set,
// otherwise the catalog package price.
func (s MenuSelection) EffectivePackagePrice() float64 {
	if s.CustomPackagePrice != nil {
		return *s.CustomPackagePrice
	}
	return s.PackagePrice
}

// MenuSelectionBase is the package charge plus the additional-items subtotal.
// Package-included items are covered by the package price regardless of their
// per-item price and quantity.
func MenuSelectionBase(s MenuSelection) float64 {
	s = SanitizeMenuSelection(s)
	total := s.EffectivePackagePrice()
	for _, it := range s.Items {
		if it.IsPackageItem {
			continue
		}
		total += it.AdditionalPrice * float64(it.Quantity)
	}
	return total
}

// MenuBase sums the menu selection bases.
func MenuBase(sels []MenuSelection) float64 {
	var total float64
	for _, s := range sels {
		total += MenuSelectionBase(s)
	}
	return total
}
