package service

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"negotiation-agent/domain"
)

// NegotiationService runs one borrower-side negotiation round at a time. It
// keeps no state between calls; the caller threads offer and history through
// every round.
type NegotiationService struct {
	params     Params
	parser     RateParser
	negationRe *regexp.Regexp
}

// NewNegotiationService creates the engine. A nil parser selects the default
// regex parser capped at params.MaxSaneRate.
func NewNegotiationService(params Params, parser RateParser) *NegotiationService {
	if parser == nil {
		parser = NewRegexRateParser(params.MaxSaneRate)
	}
	return &NegotiationService{
		params:     params,
		parser:     parser,
		negationRe: compileNegation(params.NegationWords),
	}
}

// formatRate renders a rate without trailing zeros (13.2 -> "13.2", 20 -> "20").
func formatRate(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// NegotiateRound runs one negotiation transition over the investor's freshest
// message. Inputs are copied, never aliased: the returned offer and history
// are the caller's next-round state.
//
// History grows by exactly two turns: the investor's message, then the bot's
// reply. Offer.InterestAnnualPct is overwritten only by investor-authored
// numerics, never by the bot's own counters.
func (s *NegotiationService) NegotiateRound(
	offer domain.Offer,
	message string,
	history []domain.Turn,
) (domain.RoundResult, error) {

	if strings.TrimSpace(message) == "" {
		return domain.RoundResult{}, errors.New("message must not be empty")
	}

	hist := make([]domain.Turn, len(history), len(history)+2)
	copy(hist, history)
	updated := offer

	parsedRate, parsedMonths := s.parser.ExtractRateAndTenure(message)
	if parsedRate != nil {
		updated.InterestAnnualPct = parsedRate
	}
	if parsedMonths != nil {
		updated.TenureMonths = parsedMonths
	}

	// Treat out-of-range or non-finite stored values as "no numeric yet".
	var investorRate *float64
	if v := updated.InterestAnnualPct; v != nil {
		if r := *v; r > 0 && r < s.params.MaxSaneRate && !math.IsNaN(r) {
			investorRate = &r
		}
	}

	hist = append(hist, domain.Turn{From: domain.PartyInvestor, Text: message})

	// 1) explicit final/firm: accept the investor numeric, preferring one in
	// the same message over earlier history.
	if isFinal(s.params.FinalityPhrases, message) {
		finalRate := parsedRate
		if finalRate == nil {
			finalRate = lastInvestorRate(s.parser, hist)
		}
		if finalRate != nil {
			updated.InterestAnnualPct = finalRate
			msg := fmt.Sprintf(
				"Understood. Since you say this is your final offer at %s%%, we accept.",
				formatRate(*finalRate))
			return s.finish(domain.StatusAccepted, msg, updated, hist), nil
		}
		msg := "I understand this is final. Please confirm the exact percentage you are offering."
		return s.finish(domain.StatusContinue, msg, updated, hist), nil
	}

	// 2) no investor numeric yet: ask for one. This runs before negation
	// handling so a bare first "no" is answered with a rate request.
	if investorRate == nil {
		msg := "Please share the annual interest rate you have in mind, as a percentage."
		return s.finish(domain.StatusContinue, msg, updated, hist), nil
	}

	// 3) bare refusal: prompt for their best rate instead of proposing one.
	if isShortNegation(s.negationRe, message) {
		msg := "Understood. What is the best rate you can offer?"
		return s.finish(domain.StatusContinue, msg, updated, hist), nil
	}

	// 4) recompute the floor from the latest rate and accept if close enough.
	floor := s.params.DynamicFloor(*investorRate)
	if *investorRate <= floor || *investorRate-floor <= s.params.AcceptCloseDelta {
		msg := fmt.Sprintf(
			"%s%% is acceptable relative to our target of %s%%. We accept.",
			formatRate(*investorRate), formatRate(floor))
		return s.finish(domain.StatusAccepted, msg, updated, hist), nil
	}

	// 5) concede toward the investor.
	out := s.concede(*investorRate, floor, hist, isShortNegation(s.negationRe, message))
	switch out.kind {
	case concessionAcceptImproved:
		msg := fmt.Sprintf(
			"Understood, accepting your improved offer of %s%%.", formatRate(out.rate))
		return s.finish(domain.StatusAccepted, msg, updated, hist), nil
	case concessionAcceptClose:
		msg := fmt.Sprintf(
			"Your offer of %s%% is close to our last proposal of %s%%. We accept %s%%.",
			formatRate(out.rate), formatRate(out.lastProposal), formatRate(out.rate))
		return s.finish(domain.StatusAccepted, msg, updated, hist), nil
	case concessionClarify:
		msg := "I cannot counter below your current rate. Please confirm if you can go lower or if this is final."
		return s.finish(domain.StatusContinue, msg, updated, hist), nil
	case concessionMeet:
		msg := fmt.Sprintf(
			"Okay, can we meet at %s%% (for the same tenure)?", formatRate(out.rate))
		return s.finish(domain.StatusContinue, msg, updated, hist), nil
	default:
		msg := fmt.Sprintf(
			"Can we settle at %s%% (for the same tenure)?", formatRate(out.rate))
		return s.finish(domain.StatusContinue, msg, updated, hist), nil
	}
}

// finish appends the bot's reply and assembles the round result.
func (s *NegotiationService) finish(
	status, msg string,
	offer domain.Offer,
	hist []domain.Turn,
) domain.RoundResult {
	hist = append(hist, domain.Turn{From: domain.PartyBorrower, Text: msg})
	return domain.RoundResult{
		Status:       status,
		Message:      msg,
		UpdatedOffer: offer,
		History:      hist,
	}
}
