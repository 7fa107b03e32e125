// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

const hclExt = ".hcl"

var (
	// ErrInvalidYaml is returned when a YAML configuration cannot be decoded.
	ErrInvalidYaml = errors.New("invalid YAML configuration")
	// ErrInvalidHcl is returned when an HCL configuration cannot be parsed or decoded.
	ErrInvalidHcl = errors.New("invalid HCL configuration")
)

// Load decodes data on top of the defaults, choosing the format from filename.
func Load(data []byte, filename string) (Config, error) {
	if strings.EqualFold(filepath.Ext(filename), hclExt) {
		return LoadHCL(data, filename)
	}

	return LoadYAML(data)
}

// LoadYAML decodes a YAML configuration. Unknown keys are rejected.
func LoadYAML(data []byte) (Config, error) {
	var o overrides
	if err := yaml.UnmarshalWithOptions(data, &o, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidYaml, err)
	}

	return o.applyTo(Default()), nil
}

// LoadHCL decodes an HCL configuration. filename is only used in diagnostics.
func LoadHCL(data []byte, filename string) (Config, error) {
	file, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return Config{}, errors.Join(ErrInvalidHcl, multierror.Append(nil, diags.Errs()...))
	}

	var o overrides
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &o); diags.HasErrors() {
		return Config{}, errors.Join(ErrInvalidHcl, multierror.Append(nil, diags.Errs()...))
	}

	return o.applyTo(Default()), nil
}

// evalContext exposes the default markers to HCL expressions.
func evalContext() *hcl.EvalContext {
	d := Default()

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_open_marker":  cty.StringVal(d.OpenMarker),
			"default_close_marker": cty.StringVal(d.CloseMarker),
		},
	}
}
