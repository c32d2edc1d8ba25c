package service

import "math"

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// bucketBoundaryEps keeps exact bucket boundaries in the lower bucket.
const bucketBoundaryEps = 1e-9

// DynamicFloor computes the target floor for a given investor rate. Rates are
// bucketed in BucketSize-wide steps above BaseFloor; a rate sitting exactly on
// a boundary (15.0, 18.0, 21.0...) resolves to the lower bucket, so 15.0
// yields 12.0 rather than 15.0.
func (p Params) DynamicFloor(rate float64) float64 {
	if rate <= p.BaseFloor {
		return p.BaseFloor
	}

	offset := rate - p.BaseFloor
	ratio := offset / p.BucketSize
	if math.Abs(ratio-math.Round(ratio)) < bucketBoundaryEps {
		offset = math.Max(0, offset-bucketBoundaryEps)
	}

	k := math.Floor(offset / p.BucketSize)
	return roundTo2Decimals(p.BaseFloor + p.BucketSize*k)
}
