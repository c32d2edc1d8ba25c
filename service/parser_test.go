package service

import (
	"testing"

	"negotiation-agent/domain"
)

func TestExtractRateAndTenure(t *testing.T) {
	parser := NewRegexRateParser(100.0)

	cases := []struct {
		text      string
		wantRate  float64
		hasRate   bool
		wantMonth int
		hasMonth  bool
	}{
		{"I can do 20% for 12 months", 20.0, true, 12, true},
		{"13.5% for 6 months", 13.5, true, 6, true},
		{"maybe 14.25%?", 14.25, true, 0, false},
		{"we want 18 months at 14%", 14.0, true, 18, true},
		{"give me 6m at 15%", 15.0, true, 6, true},
		{"no numbers here", 0, false, 0, false},
		{"150% for 6 months", 0, false, 6, true},
		{"0% would be nice", 0, false, 0, false},
	}

	for _, c := range cases {
		rate, months := parser.ExtractRateAndTenure(c.text)

		if c.hasRate {
			if rate == nil || *rate != c.wantRate {
				t.Errorf("%q: rate = %v, want %v", c.text, rate, c.wantRate)
			}
		} else if rate != nil {
			t.Errorf("%q: rate = %v, want nil", c.text, *rate)
		}

		if c.hasMonth {
			if months == nil || *months != c.wantMonth {
				t.Errorf("%q: months = %v, want %v", c.text, months, c.wantMonth)
			}
		} else if months != nil {
			t.Errorf("%q: months = %v, want nil", c.text, *months)
		}
	}
}

func TestParseRate_RejectsOutOfRange(t *testing.T) {
	parser := NewRegexRateParser(100.0)

	for _, text := range []string{"100%", "250%", "0%"} {
		if got := parser.ParseRate(text); got != nil {
			t.Errorf("ParseRate(%q) = %v, want nil", text, *got)
		}
	}

	if got := parser.ParseRate("my final offer is 13.2%"); got == nil || *got != 13.2 {
		t.Errorf("ParseRate valid rate = %v, want 13.2", got)
	}
}

func TestLastInvestorRate_ScansPastUnparseableTurns(t *testing.T) {
	parser := NewRegexRateParser(100.0)

	history := []domain.Turn{
		{From: domain.PartyInvestor, Text: "I can do 16%"},
		{From: domain.PartyBorrower, Text: "Can we settle at 15.5% (for the same tenure)?"},
		{From: domain.PartyInvestor, Text: "let me think about it"},
	}

	got := lastInvestorRate(parser, history)
	if got == nil || *got != 16.0 {
		t.Errorf("lastInvestorRate = %v, want 16.0", got)
	}
}

func TestLastBorrowerRate_OnlyMostRecentTurn(t *testing.T) {
	parser := NewRegexRateParser(100.0)

	history := []domain.Turn{
		{From: domain.PartyBorrower, Text: "Can we settle at 15.5% (for the same tenure)?"},
		{From: domain.PartyInvestor, Text: "no"},
		{From: domain.PartyBorrower, Text: "Understood. What is the best rate you can offer?"},
	}

	// The latest borrower turn carries no numeral, so there is no standing
	// proposal to guard against.
	if got := lastBorrowerRate(parser, history); got != nil {
		t.Errorf("lastBorrowerRate = %v, want nil", *got)
	}
}
