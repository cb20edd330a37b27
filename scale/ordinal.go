package scale

import (
	"fmt"

	"github.com/gogpu/viz"
)

// Ordinal maps discrete keys onto discrete range values by input order.
// When the range is shorter than the domain it cycles.
type Ordinal[K comparable, V any] struct {
	domain []K
	index  map[K]int
	rng    []V
	err    error
}

// NewOrdinal creates an empty ordinal scale.
func NewOrdinal[K comparable, V any]() Ordinal[K, V] {
	return Ordinal[K, V]{index: map[K]int{}}
}

// Domain sets the ordered keys. Duplicate keys keep their first index.
func (s Ordinal[K, V]) Domain(keys []K) Ordinal[K, V] {
	s.domain = keys
	s.index = make(map[K]int, len(keys))
	for i, k := range keys {
		if _, ok := s.index[k]; !ok {
			s.index[k] = i
		}
	}
	return s
}

// Range sets the output values.
func (s Ordinal[K, V]) Range(values []V) Ordinal[K, V] {
	if len(values) == 0 {
		s.err = fmt.Errorf("%w: ordinal range is empty", viz.ErrInvalidRange)
		return s
	}
	s.rng = values
	return s
}

// Err returns the first validation error recorded by a setter.
func (s Ordinal[K, V]) Err() error { return s.err }

// Value returns the range value for key k, cycling through the range
// when the domain is longer. The second return is false for keys
// outside the domain.
func (s Ordinal[K, V]) Value(k K) (V, bool) {
	var zero V
	if s.err != nil || len(s.rng) == 0 {
		return zero, false
	}
	i, ok := s.index[k]
	if !ok {
		return zero, false
	}
	return s.rng[i%len(s.rng)], true
}

// DomainValues returns the ordered keys.
func (s Ordinal[K, V]) DomainValues() []K { return s.domain }

// RangeValues returns the output values.
func (s Ordinal[K, V]) RangeValues() []V { return s.rng }
