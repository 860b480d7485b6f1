package main

import (
	"fmt"
	"os"
	"testing"

	cooktex "github.com/alnah/go-cooktex"
	"github.com/alnah/go-cooktex/internal/config"
	"github.com/alnah/go-cooktex/units"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "file not found", err: os.ErrNotExist, want: ExitIO},
		{name: "clone failure", err: ErrCloneTemplate, want: ExitIO},
		{name: "unreadable template", err: cooktex.ErrReadTemplate, want: ExitIO},
		{name: "unreadable units file", err: units.ErrReadUnitsFile, want: ExitIO},
		{name: "no collections", err: ErrNoCollections, want: ExitUsage},
		{name: "no template dir", err: ErrNoTemplateDir, want: ExitUsage},
		{name: "no output dir", err: ErrNoOutputDir, want: ExitUsage},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "bad system", err: units.ErrUnknownSystem, want: ExitUsage},
		{name: "bad units entry", err: units.ErrInvalidFactor, want: ExitUsage},
		{name: "invalid collection path", err: cooktex.ErrInvalidCollection, want: ExitUsage},
		{name: "missing placeholder", err: cooktex.ErrPlaceholderMissing, want: ExitUsage},
		{name: "wrapped sentinel", err: fmt.Errorf("loading config: %w", config.ErrConfigParse), want: ExitUsage},
		{name: "anything else", err: fmt.Errorf("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt := tt
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
