package internal

import (
	"math/rand"

	"stockportfolio/internal/util"
)

// Rand is the randomness source for weighted splits. Injectable so
// tests can supply fixed draws and assert exact outputs.
type Rand interface {
	Float64() float64
}

// SystemRand draws from math/rand's shared locked source, which is
// safe across concurrent requests.
type SystemRand struct{}

func (SystemRand) Float64() float64 {
	return rand.Float64()
}

// SplitWeights returns one raw (unrounded) normalized weight per key.
// With randomize off, or fewer than two keys, every key gets 1/n.
// Otherwise one independent draw per key, normalized by the sum of
// draws. Keys are processed in slice order.
func SplitWeights(keys []string, randomize bool, r Rand) map[string]float64 {
	weights := make(map[string]float64, len(keys))

	if !randomize || len(keys) < 2 {
		for _, key := range keys {
			weights[key] = 1.0 / float64(len(keys))
		}
		return weights
	}

	draws := make([]float64, len(keys))
	total := 0.0
	for i := range keys {
		draws[i] = r.Float64()
		total += draws[i]
	}
	for i, key := range keys {
		weights[key] = draws[i] / total
	}
	return weights
}

// RoundWeights rounds each weight to two decimals and assigns the
// rounding error to the first key, so the set sums to exactly 1.00.
// The first-key correction is behaviorally visible to callers and must
// not be redistributed.
func RoundWeights(keys []string, weights map[string]float64) map[string]float64 {
	rounded := make(map[string]float64, len(keys))
	sum := 0.0
	for _, key := range keys {
		rounded[key] = util.Round2(weights[key])
		sum += rounded[key]
	}
	if len(keys) > 0 {
		rounded[keys[0]] = util.Round2(rounded[keys[0]] + (1.0 - sum))
	}
	return rounded
}

// SplitAmount distributes total across keys according to weights. Each
// amount is rounded to cents, with the remainder against total assigned
// to the first key so the amounts sum to exactly total.
func SplitAmount(total float64, keys []string, weights map[string]float64) map[string]float64 {
	amounts := make(map[string]float64, len(keys))
	sum := 0.0
	for _, key := range keys {
		amounts[key] = util.Round2(total * weights[key])
		sum += amounts[key]
	}
	if len(keys) > 0 {
		amounts[keys[0]] = util.Round2(amounts[keys[0]] + (total - sum))
	}
	return amounts
}
