package pricing

// RenderBreakdown rebuilds the quotation summary for a persisted record, as
// the proposal PDF needs it. Bases and GST are recomputed from the stored
// lines with the same formulas as the live pipeline, but the stored discount
// amount is trusted verbatim: no ceiling is re-checked at render time, and
// the amount is only redistributed proportionally for display.
//
// If catalog prices changed since the quotation was saved the recomputed
// figures may differ from the persisted aggregates. That is expected; the
// line data is the source of truth for what was charged.
func RenderBreakdown(in Inputs, discountAmount float64) Totals {
	if discountAmount < 0 {
		discountAmount = 0
	}
	t := computeBases(in)
	return finishTotals(t, discountAmount, false)
}
