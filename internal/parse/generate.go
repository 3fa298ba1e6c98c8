package parse

import "math/rand"

// A Generator generates random well-formed trees.
type Generator struct {
	// Rand is the source of randomness. If nil, the global source is used.
	Rand *rand.Rand

	// NoDivision restricts generated operators to +, - and *.
	NoDivision bool
}

// Generate generates a random tree with a given maximum nesting depth.
// If maxDepth is 0, the result is a single number.
func (g *Generator) Generate(maxDepth int) *Node {
	if maxDepth == 0 || g.intn(maxDepth+1) == 0 {
		return Num(g.intn(10))
	}
	ops := []Kind{KPlus, KMinus, KStar, KSlash}
	if g.NoDivision {
		ops = ops[:3]
	}
	return N(ops[g.intn(len(ops))], g.Generate(maxDepth-1), g.Generate(maxDepth-1))
}

func (g *Generator) intn(n int) int {
	if g.Rand == nil {
		return rand.Intn(n)
	}
	return g.Rand.Intn(n)
}
