package service

import (
	"errors"
	"math"

	"negotiation-agent/domain"
)

// Default weights for offer ranking: 60% principal, 40% interest rate.
const (
	DefaultPrincipalWeight = 0.6
	DefaultInterestWeight  = 0.4
)

// normalize maps value into [0, 1] over [vmin, vmax]. A degenerate range
// normalizes to 0.
func normalize(value, vmin, vmax float64) float64 {
	if vmax == vmin {
		return 0.0
	}
	return (value - vmin) / (vmax - vmin)
}

// SelectBestOffer ranks offers by a weighted sum of the normalized principal
// and the inverse-normalized interest rate (lower interest is better), and
// returns the highest-scoring one. Every offer in the slice gets its
// CompositeScore annotated. An empty slice yields nil without error.
func SelectBestOffer(
	offers []domain.RankedOffer,
	wPrincipal, wInterest float64,
) (*domain.RankedOffer, error) {

	if len(offers) == 0 {
		return nil, nil
	}
	if wPrincipal < 0 || wPrincipal > 1 || wInterest < 0 || wInterest > 1 {
		return nil, errors.New("weights must be between 0 and 1")
	}
	if math.Abs(wPrincipal+wInterest-1.0) > 0.0001 {
		return nil, errors.New("weights must sum to 1.0")
	}

	pmin, pmax := offers[0].Principal, offers[0].Principal
	imin, imax := offers[0].InterestAnnualPct, offers[0].InterestAnnualPct
	for _, o := range offers[1:] {
		pmin = math.Min(pmin, o.Principal)
		pmax = math.Max(pmax, o.Principal)
		imin = math.Min(imin, o.InterestAnnualPct)
		imax = math.Max(imax, o.InterestAnnualPct)
	}

	var best *domain.RankedOffer
	for i := range offers {
		pScore := normalize(offers[i].Principal, pmin, pmax)
		iScore := 1.0 - normalize(offers[i].InterestAnnualPct, imin, imax)
		score := wPrincipal*pScore + wInterest*iScore
		offers[i].CompositeScore = &score
		if best == nil || score > *best.CompositeScore {
			best = &offers[i]
		}
	}

	return best, nil
}
