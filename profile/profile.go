/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package profile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/suparena/scanstore/errors"
	"github.com/suparena/scanstore/storagemodels"
	"gopkg.in/yaml.v3"
)

// File is the top-level shape of a scan profile document.
type File struct {
	Profiles map[string]Profile `yaml:"profiles"`
}

// Profile declares one named scan configuration.
type Profile struct {
	Limit                *int32            `yaml:"limit"`
	TotalSegments        *int32            `yaml:"totalSegments"`
	Segment              *int32            `yaml:"segment"`
	ConditionalOperator  string            `yaml:"conditionalOperator"`
	IndexName            string            `yaml:"indexName"`
	ConsistentRead       *bool             `yaml:"consistentRead"`
	ProjectionExpression string            `yaml:"projectionExpression"`
	Filters              map[string]Filter `yaml:"filters"`
}

// Filter declares one attribute condition inside a profile.
type Filter struct {
	Operator string `yaml:"operator"`
	Values   []any  `yaml:"values"`
}

// Load reads a YAML profile document from disk and compiles every profile
// into a ScanFilterSpec.
func Load(path string) (map[string]*storagemodels.ScanFilterSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a YAML profile document and compiles every profile into a
// ScanFilterSpec.
func Parse(r io.Reader) (map[string]*storagemodels.ScanFilterSpec, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode profile document: %w", err)
	}

	specs := make(map[string]*storagemodels.ScanFilterSpec, len(file.Profiles))
	for name, p := range file.Profiles {
		spec, err := p.Compile()
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		specs[name] = spec
	}
	return specs, nil
}

// Compile turns the profile into a ScanFilterSpec. Compilation only rejects
// what cannot be represented at all (unknown filter operators, missing
// operands); cross-field consistency stays with the executor, exactly as it
// does for hand-built specs.
func (p Profile) Compile() (*storagemodels.ScanFilterSpec, error) {
	spec := new(storagemodels.ScanFilterSpec)

	if p.Limit != nil {
		spec.SetLimit(*p.Limit)
	}
	if p.TotalSegments != nil {
		spec.SetTotalSegments(*p.TotalSegments)
	}
	if p.Segment != nil {
		spec.SetSegment(*p.Segment)
	}
	if p.ConditionalOperator != "" {
		spec.SetConditionalOperator(p.ConditionalOperator)
	}
	if p.IndexName != "" {
		spec.SetIndexName(p.IndexName)
	}
	if p.ConsistentRead != nil {
		spec.SetConsistentRead(*p.ConsistentRead)
	}
	if p.ProjectionExpression != "" {
		spec.SetProjectionExpression(p.ProjectionExpression)
	}

	for attr, filter := range p.Filters {
		cond, err := filter.compile()
		if err != nil {
			return nil, fmt.Errorf("filter on %q: %w", attr, err)
		}
		spec.AddFilterCondition(attr, cond)
	}

	return spec, nil
}

func (f Filter) compile() (types.Condition, error) {
	op := strings.ToUpper(strings.TrimSpace(f.Operator))

	needOperands := func(n int) error {
		if len(f.Values) != n {
			return errors.NewSpecValidationError("filters",
				fmt.Sprintf("operator %s requires %d operand(s), got %d", op, n, len(f.Values)))
		}
		return nil
	}

	switch op {
	case "EQ":
		if err := needOperands(1); err != nil {
			return types.Condition{}, err
		}
		return storagemodels.Equals(f.Values[0])
	case "NE":
		if err := needOperands(1); err != nil {
			return types.Condition{}, err
		}
		return storagemodels.NotEquals(f.Values[0])
	case "LT":
		if err := needOperands(1); err != nil {
			return types.Condition{}, err
		}
		return storagemodels.LessThan(f.Values[0])
	case "LE":
		if err := needOperands(1); err != nil {
			return types.Condition{}, err
		}
		return storagemodels.LessThanOrEqual(f.Values[0])
	case "GT":
		if err := needOperands(1); err != nil {
			return types.Condition{}, err
		}
		return storagemodels.GreaterThan(f.Values[0])
	case "GE":
		if err := needOperands(1); err != nil {
			return types.Condition{}, err
		}
		return storagemodels.GreaterThanOrEqual(f.Values[0])
	case "BEGINS_WITH":
		if err := needOperands(1); err != nil {
			return types.Condition{}, err
		}
		prefix, ok := f.Values[0].(string)
		if !ok {
			return types.Condition{}, errors.NewSpecValidationError("filters",
				"BEGINS_WITH operand must be a string")
		}
		return storagemodels.BeginsWith(prefix)
	case "CONTAINS":
		if err := needOperands(1); err != nil {
			return types.Condition{}, err
		}
		return storagemodels.Contains(f.Values[0])
	case "BETWEEN":
		if err := needOperands(2); err != nil {
			return types.Condition{}, err
		}
		return storagemodels.Between(f.Values[0], f.Values[1])
	case "IN":
		if len(f.Values) == 0 {
			return types.Condition{}, errors.NewSpecValidationError("filters",
				"IN requires at least one operand")
		}
		return storagemodels.In(f.Values...)
	case "NOT_NULL":
		return storagemodels.AttributeExists(), nil
	case "NULL":
		return storagemodels.AttributeNotExists(), nil
	default:
		return types.Condition{}, errors.NewSpecValidationError("filters",
			fmt.Sprintf("unknown operator %q", f.Operator))
	}
}
