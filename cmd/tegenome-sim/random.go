package main

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kaslund/tegenome"
)

// GeneratorConfig controls random script generation.
type GeneratorConfig struct {
	InitialLength int64
	Steps         int
	Seed          uint64

	// MeanLength is the mean of the Poisson-distributed element lengths
	// (floored at 1, so very small means skew toward single-position
	// elements).
	MeanLength float64

	// InsertProb and CopyProb partition the step mix; the remainder are
	// disables. Copy and disable steps target a uniformly drawn id among
	// those issued so far, so some of them naturally hit elements that
	// are already dead.
	InsertProb float64
	CopyProb   float64
}

// Generate builds a random operation script. It simulates the script
// against a scratch ring genome while emitting it, so positions are
// always drawn from the genome length the step will actually observe.
func Generate(cfg GeneratorConfig) (*Script, error) {
	g, err := tegenome.New(cfg.InitialLength)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	lengthDist := distuv.Poisson{Lambda: cfg.MeanLength, Src: rng}

	s := &Script{InitialLength: cfg.InitialLength}
	var issued uint64

	for i := 0; i < cfg.Steps; i++ {
		var st Step
		switch p := rng.Float64(); {
		case p < cfg.InsertProb || issued == 0:
			st = Step{
				Op:     "insert",
				Pos:    rng.Int63n(g.Length()),
				Length: elementLength(lengthDist),
			}
		case p < cfg.InsertProb+cfg.CopyProb:
			st = Step{
				Op:     "copy",
				TE:     1 + rng.Uint64n(issued),
				Offset: rng.Int63n(2*g.Length()+1) - g.Length(),
			}
		default:
			st = Step{
				Op:     "disable",
				TE:     1 + rng.Uint64n(issued),
			}
		}
		s.Steps = append(s.Steps, st)

		switch st.Op {
		case "insert":
			if _, err := g.InsertTE(st.Pos, st.Length); err == nil {
				issued++
			}
		case "copy":
			if _, err := g.CopyTE(tegenome.TEID(st.TE), st.Offset); err == nil {
				issued++
			}
		case "disable":
			g.DisableTE(tegenome.TEID(st.TE))
		}
	}
	return s, nil
}

// elementLength draws a positive element length.
func elementLength(dist distuv.Poisson) int64 {
	if n := int64(dist.Rand()); n > 1 {
		return n
	}
	return 1
}
