package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"
)

// DecodeYAML decodes and validates a YAML script. Unknown fields are rejected.
func DecodeYAML(data []byte) (*Script, error) {
	var sc Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

// hclScriptFile represents the top-level structure of an HCL script.
type hclScriptFile struct {
	Steps []*hclStep `hcl:"step,block"`
}

type hclStep struct {
	Kind   string `hcl:"kind,label"`
	Key    string `hcl:"key,optional"`
	Label  string `hcl:"label,optional"`
	From   string `hcl:"from,optional"`
	To     string `hcl:"to,optional"`
	Weight string `hcl:"weight,optional"`
	Value  string `hcl:"value,optional"`
	Wait   *bool  `hcl:"wait,optional"`
}

// DecodeHCL decodes and validates an HCL script. filename is used in
// diagnostics only.
func DecodeHCL(data []byte, filename string) (*Script, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: parsing %s: %w", ErrInvalidScript, filename, diags)
	}

	var parsed hclScriptFile
	diags = gohcl.DecodeBody(file.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrInvalidScript, filename, diags)
	}

	sc := &Script{Steps: make([]Step, 0, len(parsed.Steps))}
	for _, hs := range parsed.Steps {
		sc.Steps = append(sc.Steps, Step{
			Kind:   Kind(hs.Kind),
			Key:    hs.Key,
			Label:  hs.Label,
			From:   hs.From,
			To:     hs.To,
			Weight: hs.Weight,
			Value:  hs.Value,
			Wait:   hs.Wait,
		})
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return sc, nil
}
