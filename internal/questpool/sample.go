package questpool

import "math/rand"

// Sample picks k distinct templates from pool uniformly at random without
// replacement. When the pool holds k templates or fewer the whole pool is
// returned (order unspecified). An empty pool yields an empty result.
func Sample(pool []Template, k int) []Template {
	if len(pool) == 0 || k <= 0 {
		return nil
	}
	if len(pool) <= k {
		out := make([]Template, len(pool))
		copy(out, pool)
		return out
	}

	idx := rand.Perm(len(pool))
	out := make([]Template, k)
	for i := 0; i < k; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}
