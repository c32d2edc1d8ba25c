package domain

// RankedOffer is an investor offer scored by the selector.
type RankedOffer struct {
	InvestorID        string   `json:"investor_id"`
	Principal         float64  `json:"principal"`
	InterestAnnualPct float64  `json:"interest_annual_pct"`
	TenureMonths      int      `json:"tenure_months"`
	CompositeScore    *float64 `json:"composite_score,omitempty"`
}
