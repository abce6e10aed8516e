package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kaslund/tegenome"
)

// Script is a replayable operation sequence for simulation studies.
type Script struct {
	// InitialLength is the size of the all-empty genome the script
	// starts from.
	InitialLength int64 `yaml:"initial_length"`

	Steps []Step `yaml:"steps"`
}

// Step is one scripted operation. Op selects which of the remaining
// fields are meaningful.
type Step struct {
	Op     string `yaml:"op"` // insert, copy or disable
	Pos    int64  `yaml:"pos,omitempty"`
	Length int64  `yaml:"length,omitempty"`
	TE     uint64 `yaml:"te,omitempty"`
	Offset int64  `yaml:"offset,omitempty"`
}

// LoadScript reads and validates a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the script as YAML.
func (s *Script) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding script: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects scripts the replay loop could not interpret. It only
// checks shape; whether an operation succeeds against the genome is a
// property of the replayed state, not of the script.
func (s *Script) Validate() error {
	if s.InitialLength <= 0 {
		return fmt.Errorf("initial_length must be positive, got %d", s.InitialLength)
	}
	for i, st := range s.Steps {
		switch st.Op {
		case "insert", "copy", "disable":
		default:
			return fmt.Errorf("step %d: unknown op %q", i, st.Op)
		}
	}
	return nil
}

// ReplayResult summarizes one script replay.
type ReplayResult struct {
	Applied  int // operations that mutated the genome
	Declined int // operations the genome rejected
	Genome   tegenome.Genome
}

// Replay runs the script against a fresh genome of the requested
// backend. Declined operations (out-of-range positions, inactive
// elements) are logged and counted; with strict set they abort the
// replay instead.
func (s *Script) Replay(backend string, strict bool, renderEach bool, log *slog.Logger) (*ReplayResult, error) {
	g, err := newGenome(backend, s.InitialLength)
	if err != nil {
		return nil, err
	}

	res := &ReplayResult{Genome: g}
	for i, st := range s.Steps {
		var opErr error
		switch st.Op {
		case "insert":
			var te tegenome.TEID
			te, opErr = g.InsertTE(st.Pos, st.Length)
			if opErr == nil {
				log.Debug("inserted", "step", i, "te", te, "pos", st.Pos, "length", st.Length)
			}
		case "copy":
			var te tegenome.TEID
			te, opErr = g.CopyTE(tegenome.TEID(st.TE), st.Offset)
			if opErr == nil {
				log.Debug("copied", "step", i, "source", st.TE, "te", te, "offset", st.Offset)
			}
		case "disable":
			g.DisableTE(tegenome.TEID(st.TE))
			log.Debug("disabled", "step", i, "te", st.TE)
		}

		if opErr != nil {
			if strict {
				return nil, fmt.Errorf("step %d (%s): %w", i, st.Op, opErr)
			}
			// Declines are part of the model: an inactive element simply
			// no longer transposes.
			if errors.Is(opErr, tegenome.ErrElementNotActive) {
				log.Debug("declined", "step", i, "op", st.Op, "reason", opErr)
			} else {
				log.Warn("declined", "step", i, "op", st.Op, "reason", opErr)
			}
			res.Declined++
		} else {
			res.Applied++
		}

		if renderEach {
			fmt.Println(g.Render())
		}
	}
	return res, nil
}

// newGenome constructs the requested backend.
func newGenome(backend string, n int64) (tegenome.Genome, error) {
	switch backend {
	case "ring":
		return tegenome.New(n)
	case "array":
		return tegenome.NewArray(n)
	}
	return nil, fmt.Errorf("unknown backend %q (want ring or array)", backend)
}
