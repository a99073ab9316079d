// Package jsonschema implements callscore.ShapeChecker by validating raw
// analysis responses against a JSON Schema.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/fwojciec/callscore"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Ensure Checker implements callscore.ShapeChecker at compile time.
var _ callscore.ShapeChecker = (*Checker)(nil)

// AnalysisSchema describes the response the renderer expects. Every nested
// field is optional; only the two top-level sections are required.
const AnalysisSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["consensus", "detailed_analysis"],
	"properties": {
		"consensus": {
			"type": "object",
			"properties": {
				"overall_score": {"type": "number"},
				"verdict": {"type": "string"},
				"confidence": {"type": "string"},
				"recommendation": {"type": "string"},
				"red_flags": {"type": "array", "items": {"type": "string"}}
			}
		},
		"detailed_analysis": {
			"type": "object",
			"properties": {
				"revenue": {"$ref": "#/$defs/finding"},
				"profitability": {"$ref": "#/$defs/finding"},
				"management": {"$ref": "#/$defs/finding"}
			}
		}
	},
	"$defs": {
		"finding": {
			"type": "object",
			"properties": {
				"score": {"type": "number"},
				"verdict": {"type": "string"},
				"highlights": {"type": "array", "items": {"type": "string"}},
				"concerns": {"type": "array", "items": {"type": "string"}},
				"positive_signals": {"type": "array", "items": {"type": "string"}}
			}
		}
	}
}`

// Checker validates payloads against a compiled schema.
type Checker struct {
	schema *jsonschema.Schema
}

// NewChecker compiles AnalysisSchema.
func NewChecker() (*Checker, error) {
	return NewCheckerFromString(AnalysisSchema)
}

// NewCheckerFromString compiles the given schema document.
func NewCheckerFromString(schema string) (*Checker, error) {
	s, err := jsonschema.CompileString("analysis.schema.json", schema)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return &Checker{schema: s}, nil
}

// Check returns one line per schema violation, sorted, or nil when the
// payload conforms.
func (c *Checker) Check(raw []byte) []string {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return []string{"/: not valid JSON"}
	}

	err := c.schema.Validate(v)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []string{"/: " + err.Error()}
	}

	var problems []string
	collect(verr, &problems)
	sort.Strings(problems)
	return problems
}

// collect appends the leaf causes of a validation error.
func collect(verr *jsonschema.ValidationError, out *[]string) {
	if len(verr.Causes) == 0 {
		loc := verr.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, loc+": "+verr.Message)
		return
	}
	for _, cause := range verr.Causes {
		collect(cause, out)
	}
}
