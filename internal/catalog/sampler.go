package catalog

import (
	"fmt"
	"math/rand"

	"github.com/phrazzld/catalog-forge/internal/domain"
)

// Sampler produces the sequence of (vendor, category) combinations a batch
// processes. Vendors and categories are drawn independently and uniformly at
// random with replacement, so duplicate combinations are expected.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a Sampler backed by the given random source. Injecting
// the source keeps sampling deterministic under test.
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{
		rng: rand.New(src),
	}
}

// Sample returns count combinations drawn from the two pools. It fails fast
// with ErrEmptyPool when either pool is empty, before any generation attempt
// can be made. A non-positive count yields an empty sequence.
func (s *Sampler) Sample(vendors, categories []string, count int) ([]domain.Combination, error) {
	if len(vendors) == 0 {
		return nil, fmt.Errorf("%w: no vendors", ErrEmptyPool)
	}

	if len(categories) == 0 {
		return nil, fmt.Errorf("%w: no categories", ErrEmptyPool)
	}

	if count <= 0 {
		return []domain.Combination{}, nil
	}

	combos := make([]domain.Combination, 0, count)
	for i := 0; i < count; i++ {
		combos = append(combos, domain.Combination{
			Vendor:   vendors[s.rng.Intn(len(vendors))],
			Category: categories[s.rng.Intn(len(categories))],
		})
	}

	return combos, nil
}
