package units

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-cooktex/internal/yamlutil"
)

// ErrReadUnitsFile indicates the units file could not be read.
var ErrReadUnitsFile = errors.New("failed to read units file")

// UnitsFile is a custom unit definition file. Entries extend the bundled
// table; an entry whose name matches a bundled unit replaces it.
//
//	units:
//	  - name: pinch
//	    aliases: [pinches]
//	    system: imperial
//	    quantity: volume
//	    factor: 0.31
type UnitsFile struct {
	Units []UnitEntry `yaml:"units"`
}

// UnitEntry is one unit definition in a units file.
type UnitEntry struct {
	Name     string   `yaml:"name"`
	Aliases  []string `yaml:"aliases"`
	System   string   `yaml:"system"`   // "", "metric", "imperial"
	Quantity string   `yaml:"quantity"` // volume, mass, time, temperature
	Factor   float64  `yaml:"factor"`   // multiplier to the dimension's base unit
	Offset   float64  `yaml:"offset"`   // additive offset, temperatures only
}

func (e UnitEntry) toUnit() (Unit, error) {
	if e.Name == "" {
		return Unit{}, ErrEmptyUnitName
	}
	system, err := ParseSystem(e.System)
	if err != nil {
		return Unit{}, fmt.Errorf("unit %q: %w", e.Name, err)
	}
	dim, err := parseDimension(e.Quantity)
	if err != nil {
		return Unit{}, fmt.Errorf("unit %q: %w", e.Name, err)
	}
	if e.Factor <= 0 {
		return Unit{}, fmt.Errorf("%w: unit %q has factor %v", ErrInvalidFactor, e.Name, e.Factor)
	}
	return Unit{
		Name:    e.Name,
		Aliases: e.Aliases,
		System:  system,
		Dim:     dim,
		Factor:  e.Factor,
		Offset:  e.Offset,
	}, nil
}

// LoadUnitsFile reads and parses a YAML units file. Unknown fields are
// rejected so typos fail loudly.
func LoadUnitsFile(path string) (UnitsFile, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the CLI user
	if err != nil {
		return UnitsFile{}, fmt.Errorf("%w: %v", ErrReadUnitsFile, err)
	}
	var f UnitsFile
	if err := yamlutil.UnmarshalStrict(data, &f); err != nil {
		return UnitsFile{}, fmt.Errorf("parsing units file %s: %w", path, err)
	}
	return f, nil
}
