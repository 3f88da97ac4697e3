package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRand hands out a fixed sequence of draws.
type fakeRand struct {
	draws []float64
	i     int
}

func (r *fakeRand) Float64() float64 {
	v := r.draws[r.i%len(r.draws)]
	r.i++
	return v
}

func Test_SplitWeights(t *testing.T) {
	t.Run("equal split", func(t *testing.T) {
		weights := SplitWeights([]string{"a", "b", "c"}, false, nil)

		require.Len(t, weights, 3)
		for _, key := range []string{"a", "b", "c"} {
			require.InDelta(t, 1.0/3.0, weights[key], 1e-12)
		}
	})

	t.Run("single key is never randomized", func(t *testing.T) {
		weights := SplitWeights([]string{"only"}, true, &fakeRand{draws: []float64{0.01}})

		require.Equal(t, map[string]float64{"only": 1.0}, weights)
	})

	t.Run("randomized draws are normalized in key order", func(t *testing.T) {
		r := &fakeRand{draws: []float64{0.5, 0.3, 0.2}}
		weights := SplitWeights([]string{"a", "b", "c"}, true, r)

		require.InDelta(t, 0.5, weights["a"], 1e-12)
		require.InDelta(t, 0.3, weights["b"], 1e-12)
		require.InDelta(t, 0.2, weights["c"], 1e-12)
	})
}

func Test_RoundWeights(t *testing.T) {
	t.Run("remainder lands on the first key", func(t *testing.T) {
		keys := []string{"MSFT", "JNJ", "PG"}
		weights := SplitWeights(keys, false, nil)

		rounded := RoundWeights(keys, weights)

		require.Equal(t, map[string]float64{
			"MSFT": 0.34,
			"JNJ":  0.33,
			"PG":   0.33,
		}, rounded)
	})

	t.Run("randomized weights sum to exactly 1.00", func(t *testing.T) {
		keys := []string{"a", "b", "c"}
		r := &fakeRand{draws: []float64{0.17, 0.41, 0.42}}

		rounded := RoundWeights(keys, SplitWeights(keys, true, r))

		sum := 0.0
		for _, w := range rounded {
			sum += w
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})
}

func Test_SplitAmount(t *testing.T) {
	t.Run("equal thirds with remainder on first key", func(t *testing.T) {
		keys := []string{"MSFT", "JNJ", "PG"}
		amounts := SplitAmount(10000, keys, SplitWeights(keys, false, nil))

		require.InDelta(t, 3333.34, amounts["MSFT"], 1e-9)
		require.InDelta(t, 3333.33, amounts["JNJ"], 1e-9)
		require.InDelta(t, 3333.33, amounts["PG"], 1e-9)
	})

	t.Run("randomized amounts sum to exactly the total", func(t *testing.T) {
		keys := []string{"Growth Investing", "Value Investing"}
		r := &fakeRand{draws: []float64{0.123456, 0.654321}}

		amounts := SplitAmount(10001.01, keys, SplitWeights(keys, true, r))

		sum := 0.0
		for _, amount := range amounts {
			sum += amount
		}
		require.InDelta(t, 10001.01, sum, 1e-9)
	})

	t.Run("two-way equal split", func(t *testing.T) {
		keys := []string{"x", "y"}
		amounts := SplitAmount(10001, keys, SplitWeights(keys, false, nil))

		require.InDelta(t, 5000.5, amounts["x"], 1e-9)
		require.InDelta(t, 5000.5, amounts["y"], 1e-9)
	})
}
