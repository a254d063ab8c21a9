package pricing

// GST slabs applied to banquet charges. Rooms priced at or under the
// threshold fall in the concessional slab.
const (
	StandardGSTPercent     = 18.0
	ConcessionalGSTPercent = 5.0
	RoomRateThreshold      = 7500.0
)

// VenueGST returns 18% GST on the venue rental base, or 0 when GST is off.
func VenueGST(base float64, includeGST bool) float64 {
	return gstAmount(base, StandardGSTPercent, includeGST)
}

// MenuGST returns 18% GST on the menu base, or 0 when GST is off.
func MenuGST(base float64, includeGST bool) float64 {
	return gstAmount(base, StandardGSTPercent, includeGST)
}

// RoomGSTPercent returns the slab for a room line: 5% when the per-room rate
// is at or under 7500, 18% above. The threshold is inclusive on the low side.
func RoomGSTPercent(rate float64) float64 {
	if rate <= RoomRateThreshold {
		return ConcessionalGSTPercent
	}
	return StandardGSTPercent
}

// RoomGST computes GST line by line and sums it. A package mixing cheap and
// expensive room categories must never have the slab decided on the
// aggregated base.
func RoomGST(lines []RoomLine, includeGST bool) float64 {
	if !includeGST {
		return 0
	}
	var total float64
	for _, l := range lines {
		l = SanitizeRoomLine(l)
		total += gstAmount(RoomLineBase(l), RoomGSTPercent(l.Rate), true)
	}
	return total
}

func gstAmount(base, percent float64, include bool) float64 {
	if !include || base <= 0 {
		return 0
	}
	return base * percent / 100
}
