// Package units implements unit-aware quantity conversion and addition for
// recipe quantities. It owns all knowledge of unit compatibility: the
// rendering pipeline treats it as an oracle, asking it to merge quantities
// and to rewrite recipes into a target unit system.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for unit operations.
var (
	ErrUnknownSystem    = errors.New("unknown unit system")
	ErrUnknownDimension = errors.New("unknown physical quantity")
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrEmptyUnitName    = errors.New("unit name cannot be empty")
	ErrInvalidFactor    = errors.New("unit factor must be positive")
)

// System identifies a measurement system for conversion targets.
type System int

const (
	// SystemNone means no conversion target; shared units (time,
	// dimensionless counts) also carry it.
	SystemNone System = iota
	SystemMetric
	SystemImperial
)

// ParseSystem parses a system name as given on the command line.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return SystemNone, nil
	case "metric":
		return SystemMetric, nil
	case "imperial":
		return SystemImperial, nil
	default:
		return SystemNone, fmt.Errorf("%w: %q (must be metric or imperial)", ErrUnknownSystem, s)
	}
}

func (s System) String() string {
	switch s {
	case SystemMetric:
		return "metric"
	case SystemImperial:
		return "imperial"
	default:
		return "none"
	}
}

// Dimension is the physical quantity a unit measures.
type Dimension int

const (
	Volume Dimension = iota
	Mass
	Time
	Temperature
)

func parseDimension(s string) (Dimension, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "volume":
		return Volume, nil
	case "mass", "weight":
		return Mass, nil
	case "time":
		return Time, nil
	case "temperature":
		return Temperature, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDimension, s)
	}
}

func (d Dimension) String() string {
	switch d {
	case Volume:
		return "volume"
	case Mass:
		return "mass"
	case Time:
		return "time"
	case Temperature:
		return "temperature"
	default:
		return "unknown"
	}
}
