// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/trimlog/internal/linerange"
)

var (
	// ErrEmptyOpenMarker is returned when the open marker is the empty string.
	ErrEmptyOpenMarker = errors.New("open marker must not be empty")
	// ErrEmptyCloseMarker is returned when the close marker is the empty string.
	ErrEmptyCloseMarker = errors.New("close marker must not be empty")
	// ErrInvalidConfig is returned when a configuration fails validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds the markers that bound the removed block.
type Config struct {
	OpenMarker  string
	CloseMarker string
}

// Default returns the configuration matching the historic hard coded markers.
func Default() Config {
	m := linerange.DefaultMarkers()

	return Config{
		OpenMarker:  m.Open,
		CloseMarker: m.Close,
	}
}

// Markers converts the configuration to the markers used by linerange.
func (c Config) Markers() linerange.Markers {
	return linerange.Markers{
		Open:  c.OpenMarker,
		Close: c.CloseMarker,
	}
}

// Validate reports every problem with the configuration at once.
// An empty marker would match every line.
func (c Config) Validate() error {
	var err error

	if c.OpenMarker == "" {
		err = multierror.Append(err, ErrEmptyOpenMarker)
	}

	if c.CloseMarker == "" {
		err = multierror.Append(err, ErrEmptyCloseMarker)
	}

	if err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}

// overrides is the set of keys a configuration file may carry.
// Nil fields were not present in the file.
type overrides struct {
	OpenMarker  *string `yaml:"open_marker" hcl:"open_marker,optional"`
	CloseMarker *string `yaml:"close_marker" hcl:"close_marker,optional"`
}

func (o overrides) applyTo(c Config) Config {
	if o.OpenMarker != nil {
		c.OpenMarker = *o.OpenMarker
	}

	if o.CloseMarker != nil {
		c.CloseMarker = *o.CloseMarker
	}

	return c
}
