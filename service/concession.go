package service

import (
	"math"

	"negotiation-agent/domain"
)

type concessionKind int

const (
	// counter at the raw step toward the floor
	concessionCounter concessionKind = iota
	// counter from the concession branch (moving toward the investor)
	concessionMeet
	// accept: investor improved after we had asked for the floor itself
	concessionAcceptImproved
	// accept: investor is within AcceptCloseDelta of our last proposal
	concessionAcceptClose
	// no valid counter exists; ask the investor to go lower or confirm finality
	concessionClarify
)

type concessionOutcome struct {
	kind         concessionKind
	rate         float64
	lastProposal float64 // set for concessionAcceptClose
}

// concede computes the bot's next move once the investor's rate sits above
// the dynamic floor. negation marks whether the triggering message was a bare
// refusal, which makes the concession more conservative.
func (s *NegotiationService) concede(
	investorRate, floor float64,
	hist []domain.Turn,
	negation bool,
) concessionOutcome {

	// Step size: larger gaps take bounded larger steps, with the step/gap
	// ratio shrinking as the gap narrows.
	diff := investorRate - floor
	var step float64
	switch {
	case diff > 6.0:
		step = math.Min(2.0, diff/4.0)
	case diff > 3.0:
		step = math.Min(1.5, diff/3.0)
	case diff > 1.0:
		step = math.Min(1.0, diff/2.5)
	case diff > 0.2:
		step = roundTo2Decimals(diff / 2.0)
	default:
		step = 0.1
	}
	rawProposed := roundTo2Decimals(math.Max(floor, investorRate-step))

	proposed := rawProposed
	kind := concessionCounter

	// Monotonicity guard: never retreat below our own prior ask.
	if last := lastBorrowerRate(s.parser, hist); last != nil && rawProposed < *last {
		// We had asked for the floor itself and the investor moved down from
		// their own previous numeric: take the improved rate.
		prev := previousInvestorRate(s.parser, hist)
		if *last == floor && prev != nil && investorRate < *prev {
			return concessionOutcome{kind: concessionAcceptImproved, rate: investorRate}
		}

		if investorRate-*last <= s.params.AcceptCloseDelta {
			return concessionOutcome{
				kind:         concessionAcceptClose,
				rate:         investorRate,
				lastProposal: *last,
			}
		}

		// Concede a fraction of the remaining gap instead of repeating the
		// prior ask. A bare "no" earns a smaller fraction than a numeric.
		alpha := 0.5
		if negation {
			alpha = s.params.GiveawayAlpha
		}
		gap := investorRate - *last
		midpoint := *last + alpha*gap
		if midpoint-*last < s.params.MinNudge {
			midpoint = *last + s.params.MinNudge
		}

		p := roundTo2Decimals(math.Min(investorRate-0.05, midpoint))
		p = math.Max(p, floor)
		if p >= investorRate {
			p = roundTo2Decimals(math.Min(investorRate-0.05, *last+s.params.MinNudge))
		}
		if p <= *last {
			p = roundTo2Decimals(*last + s.params.MinNudge)
		}

		proposed = p
		kind = concessionMeet
	}

	// Final guard: a counter must undercut the investor's rate.
	if proposed >= investorRate {
		return concessionOutcome{kind: concessionClarify}
	}
	return concessionOutcome{kind: kind, rate: proposed}
}
