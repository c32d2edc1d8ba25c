package service

// Params holds every tunable of the negotiation engine. A Params value is
// treated as immutable once the service is constructed, so alternate
// parameters can be exercised deterministically in tests.
type Params struct {
	// BaseFloor is the lowest rate bucket target (the 12-15 range floor).
	BaseFloor float64
	// BucketSize is the floor bucket width in percentage points.
	BucketSize float64
	// MaxSaneRate is the sanity cap for parsed rates; values at or above it
	// are treated as not a rate.
	MaxSaneRate float64
	// AcceptCloseDelta: an investor rate within this of the target (or of our
	// own last proposal) is accepted outright.
	AcceptCloseDelta float64
	// GiveawayAlpha is the fraction of the gap conceded after a bare negation.
	GiveawayAlpha float64
	// MinNudge is the smallest forward movement of a concession.
	MinNudge float64

	// FinalityPhrases are matched as substrings anywhere in the lowercased
	// message.
	FinalityPhrases []string
	// NegationWords are matched only as an anchored prefix of the message.
	NegationWords []string
}

// DefaultParams returns the canonical engine configuration.
func DefaultParams() Params {
	return Params{
		BaseFloor:        12.0,
		BucketSize:       3.0,
		MaxSaneRate:      100.0,
		AcceptCloseDelta: 0.3,
		GiveawayAlpha:    0.25,
		MinNudge:         0.05,
		FinalityPhrases: []string{
			"final", "last", "take it or leave it", "best i can do",
			"that's my final", "no lower", "cannot go lower", "cant go lower",
			"only go till", "this is my final", "my final offer", "final offer",
			"i'm firm", "i'm firm on this",
		},
		NegationWords: []string{
			"no", "nope", "nah", "cant", "can't", "cannot", "not",
			"we cant", "we can't", "we cannot",
		},
	}
}
