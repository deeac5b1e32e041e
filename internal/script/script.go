// Package script decodes scripted input (YAML or HCL) and replays it against
// a session, standing in for interactive clicks.
//
// A script is an ordered list of steps. Vertices are addressed by a
// script-local key; edges may carry a key too so they can be removed later.
//
//	steps:
//	  - {kind: vertex, key: a, label: A}
//	  - {kind: vertex, key: b, label: B}
//	  - {kind: edge, key: ab, from: a, to: b, weight: 1}
//	  - {kind: algorithm, value: dfs}
//	  - {kind: start, key: a}
//
// The HCL form uses one block per step, labelled by its kind:
//
//	step "vertex" {
//	  key   = "a"
//	  label = "A"
//	}
package script

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/graphwalk/internal/input"
	"github.com/katalvlaran/graphwalk/session"
)

// ErrInvalidScript is wrapped by every decode and validation error.
var ErrInvalidScript = errors.New("script: invalid script")

// Kind names a step type.
type Kind string

const (
	KindMode         Kind = "mode"
	KindVertex       Kind = "vertex"
	KindEdge         Kind = "edge"
	KindRemoveVertex Kind = "remove_vertex"
	KindRemoveEdge   Kind = "remove_edge"
	KindAlgorithm    Kind = "algorithm"
	KindStart        Kind = "start"
	KindStop         Kind = "stop"
	KindReset        Kind = "reset"
)

// Step is one scripted action.
type Step struct {
	Kind   Kind   `yaml:"kind"`
	Key    string `yaml:"key,omitempty"`
	Label  string `yaml:"label,omitempty"`
	From   string `yaml:"from,omitempty"`
	To     string `yaml:"to,omitempty"`
	Weight string `yaml:"weight,omitempty"`
	Value  string `yaml:"value,omitempty"`
	// Wait applies to start steps: when true (the default) Apply blocks
	// until the run ends.
	Wait *bool `yaml:"wait,omitempty"`
}

// Waits reports whether a start step blocks until its run ends.
func (s Step) Waits() bool {
	return s.Wait == nil || *s.Wait
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Load reads a script file, choosing the decoder by extension.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	case ".hcl":
		return DecodeHCL(data, path)
	}

	return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalidScript, filepath.Ext(path))
}

// Validate checks every step's required fields and input rules.
func (sc *Script) Validate() error {
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("%w: step %d (%s): %w", ErrInvalidScript, i+1, st.Kind, err)
		}
	}

	return nil
}

func (s Step) validate() error {
	need := func(field, v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("missing %s", field)
		}
		return nil
	}
	switch s.Kind {
	case KindMode:
		if _, err := session.ParseMode(s.Value); err != nil {
			return err
		}
	case KindAlgorithm:
		if _, err := session.ParseAlgorithm(s.Value); err != nil {
			return err
		}
	case KindVertex:
		if err := need("key", s.Key); err != nil {
			return err
		}
		return input.ValidateLabel(s.Label)
	case KindEdge:
		if err := errors.Join(need("from", s.From), need("to", s.To)); err != nil {
			return err
		}
		_, err := input.ParseWeight(s.Weight)
		return err
	case KindRemoveVertex, KindRemoveEdge, KindStart:
		return need("key", s.Key)
	case KindStop, KindReset:
	default:
		return fmt.Errorf("unknown kind %q", s.Kind)
	}

	return nil
}
