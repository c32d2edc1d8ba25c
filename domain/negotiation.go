package domain

// Turn authors.
const (
	PartyInvestor = "investor"
	PartyBorrower = "borrower"
)

// Round outcomes. Every negotiation round ends in one of these.
const (
	StatusAccepted = "accepted"
	StatusContinue = "continue"
)

// Offer holds the investor's last stated numeric terms. Fields are nil until
// the investor provides them; bot counter-proposals never overwrite them.
type Offer struct {
	InterestAnnualPct *float64 `json:"interest_annual_pct"`
	TenureMonths      *int     `json:"tenure_months"`
	InvestorID        string   `json:"investor_id,omitempty"`
}

// Turn is a single message in the negotiation, immutable once appended.
type Turn struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// RoundResult is the outcome of one negotiation round. UpdatedOffer and
// History are fresh values; the caller's inputs are left untouched.
type RoundResult struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	UpdatedOffer Offer  `json:"updated_offer"`
	History      []Turn `json:"history"`
}

// NegotiationSession is the caller-side state threaded through rounds.
type NegotiationSession struct {
	Offer   Offer  `json:"offer"`
	History []Turn `json:"history"`
	Status  string `json:"status,omitempty"`
}
