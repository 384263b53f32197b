package framework

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoizedFitness wraps fn with a TTL cache keyed by gene content. Fitness
// functions are required to be referentially transparent, so a cached value
// is always valid until it expires. Useful when fitness evaluation is
// expensive and populations revisit genomes across generations.
func MemoizedFitness[A comparable](fn FitnessFunction[A], ttl time.Duration) FitnessFunction[A] {
	c := cache.New(ttl, 0)
	return func(ind Individual[A]) float64 {
		key := ind.Key()
		if v, ok := c.Get(key); ok {
			return v.(float64)
		}
		f := fn(ind)
		c.Set(key, f, cache.DefaultExpiration)
		return f
	}
}
