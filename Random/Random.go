package Random

import "math/rand/v2"

const (
	// CoarseBound is the exclusive upper bound of the coarse draw, the magnitude of a value is below CoarseBound*10.
	CoarseBound = 100000
	fineBound   = 10
)

// Generator produces synthetic sort input. The output depends only on the seed it was created with.
// A Generator isn't safe for concurrent use.
type Generator struct {
	r *rand.Rand
}

func New(seed int64) *Generator {
	return &Generator{rand.New(rand.NewPCG(uint64(seed), 0x9e3779b97f4a7c15))}
}

// Next value: ±coarse*10 ± fine where coarse and fine are independent draws, each negated with probability 1/2.
func (u *Generator) Next() int64 {
	coarse, fine := u.r.Int64N(CoarseBound), u.r.Int64N(fineBound)
	if u.r.Uint64()&1 == 1 {
		coarse = -coarse
	}
	if u.r.Uint64()&1 == 1 {
		fine = -fine
	}
	return coarse*10 + fine
}

// Fill vs with the next len(vs) values.
func (u *Generator) Fill(vs []int64) {
	for i := range vs {
		vs[i] = u.Next()
	}
}

// Generate n values from a Generator seeded with seed. n<=0 gives an empty slice.
func Generate(n int, seed int64) []int64 {
	vs := make([]int64, max(n, 0))
	New(seed).Fill(vs)
	return vs
}
