package pricing

// DiscountType selects between a percentage and a flat rupee discount.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Valid reports whether the type is one of the two known kinds.
func (t DiscountType) Valid() bool {
	return t == DiscountTypePercentage || t == DiscountTypeFixed
}

// DiscountSpec is the discount requested on a quotation.
type DiscountSpec struct {
	Type   DiscountType
	Value  float64
	Reason string
}

// DiscountResult is the resolved monetary discount. ExceedsLimit never blocks
// application; it only triggers the admin notification downstream.
type DiscountResult struct {
	Amount       float64
	ExceedsLimit bool
}

// ResolveDiscount turns a requested discount into a rupee amount against the
// given base (the GST-inclusive subtotal).
//
// Percentage discounts breach the limit when the value exceeds the configured
// ceiling. Fixed discounts are capped at the base and are never flagged here;
// the server-side discount check owns that verdict and the caller must treat
// its answer as binding.
func ResolveDiscount(t DiscountType, value, base, ceilingPercent float64) DiscountResult {
	if value <= 0 || base <= 0 {
		return DiscountResult{}
	}
	switch t {
	case DiscountTypeFixed:
		amount := value
		if amount > base {
			amount = base
		}
		return DiscountResult{Amount: amount}
	case DiscountTypePercentage:
		return DiscountResult{
			Amount:       base * value / 100,
			ExceedsLimit: ceilingPercent > 0 && value > ceilingPercent,
		}
	default:
		return DiscountResult{}
	}
}
