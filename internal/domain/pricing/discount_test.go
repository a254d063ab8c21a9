package pricing

import "testing"

func TestResolveDiscountPercentage(t *testing.T) {
	res := ResolveDiscount(DiscountTypePercentage, 10, 11340, 10)
	if res.Amount != 1134 {
		t.Fatalf("expected discount 1134, got %v", res.Amount)
	}
	if res.ExceedsLimit {
		t.Fatalf("10%% against a 10%% ceiling must not exceed the limit")
	}
}

func TestResolveDiscountPercentageOverCeiling(t *testing.T) {
	res := ResolveDiscount(DiscountTypePercentage, 15, 100000, 10)
	if !res.ExceedsLimit {
		t.Fatalf("expected exceedsLimit for 15%% against a 10%% ceiling")
	}
	// The discount is still applied; the flag only drives the admin alert.
	if res.Amount != 15000 {
		t.Fatalf("expected discount 15000, got %v", res.Amount)
	}
}

func TestResolveDiscountFixedCappedAtBase(t *testing.T) {
	res := ResolveDiscount(DiscountTypeFixed, 25000, 11340, 10)
	if res.Amount != 11340 {
		t.Fatalf("expected fixed discount capped at 11340, got %v", res.Amount)
	}
	if res.ExceedsLimit {
		t.Fatalf("fixed discounts are never flagged locally")
	}
}

func TestResolveDiscountNonPositiveValue(t *testing.T) {
	for _, value := range []float64{0, -50} {
		res := ResolveDiscount(DiscountTypeFixed, value, 10000, 10)
		if res.Amount != 0 || res.ExceedsLimit {
			t.Fatalf("expected empty result for value %v, got %+v", value, res)
		}
	}
}

func TestResolveDiscountUnknownType(t *testing.T) {
	res := ResolveDiscount(DiscountType("bogus"), 10, 10000, 10)
	if res.Amount != 0 {
		t.Fatalf("expected no discount for unknown type, got %v", res.Amount)
	}
}
