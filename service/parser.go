package service

import (
	"regexp"
	"strconv"
	"strings"

	"negotiation-agent/domain"
)

// RateParser extracts numeric terms from free-form negotiation text. The
// round controller only talks to this interface, so the regex heuristic can
// be swapped for a tokenizer without touching the engine.
type RateParser interface {
	// ExtractRateAndTenure returns the first annual rate and the first tenure
	// in months found in text. Either may be nil.
	ExtractRateAndTenure(text string) (*float64, *int)
	// ParseRate is the rate-only form.
	ParseRate(text string) *float64
}

var (
	ratePattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%+`)
	tenurePattern = regexp.MustCompile(`(?i)(\d{1,2})\s*(months|month|mos|mo|m)\b`)
)

// RegexRateParser is the default RateParser.
type RegexRateParser struct {
	maxSaneRate float64
}

func NewRegexRateParser(maxSaneRate float64) *RegexRateParser {
	return &RegexRateParser{maxSaneRate: maxSaneRate}
}

func (p *RegexRateParser) ParseRate(text string) *float64 {
	m := ratePattern.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return nil
	}
	r, err := strconv.ParseFloat(m[1], 64)
	if err != nil || r <= 0 || r >= p.maxSaneRate {
		return nil
	}
	return &r
}

func (p *RegexRateParser) ExtractRateAndTenure(text string) (*float64, *int) {
	t := strings.ToLower(text)
	rate := p.ParseRate(t)

	var months *int
	if m := tenurePattern.FindStringSubmatch(t); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			months = &n
		}
	}
	return rate, months
}

// lastInvestorRate reverse-scans the history for the most recent investor
// turn carrying a parseable rate.
func lastInvestorRate(parser RateParser, history []domain.Turn) *float64 {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].From != domain.PartyInvestor {
			continue
		}
		if v := parser.ParseRate(history[i].Text); v != nil {
			return v
		}
	}
	return nil
}

// previousInvestorRate is lastInvestorRate over the history excluding the
// just-appended turn.
func previousInvestorRate(parser RateParser, history []domain.Turn) *float64 {
	if len(history) == 0 {
		return nil
	}
	return lastInvestorRate(parser, history[:len(history)-1])
}

// lastBorrowerRate parses the most recent borrower turn only. Clarification
// replies carry no numerals, so a clarification yields nil rather than a
// stale proposal.
func lastBorrowerRate(parser RateParser, history []domain.Turn) *float64 {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].From == domain.PartyBorrower {
			return parser.ParseRate(history[i].Text)
		}
	}
	return nil
}
