package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-sizeconv/sizeconv/matrix"
)

// errNoBuildableTarget is returned when no target lists a GOARCH, which
// would leave only the fallback file with an empty build constraint.
var errNoBuildableTarget = errors.New("no target lists a GOARCH")

// Target represents one pointer width and the GOARCH values that build with it.
type Target struct {
	Name   string       // "64", "32", ...
	Width  matrix.Width // pointer width of every arch in Arches
	Arches []string     // GOARCH values; empty when no Go port has this width
}

// BuildTag returns the //go:build expression selecting this target.
func (t Target) BuildTag() string {
	return strings.Join(t.Arches, " || ")
}

// Filename returns the name of the file generated for this target.
func (t Target) Filename() string {
	return fmt.Sprintf("z_sizeconv_%d.go", int(t.Width))
}

// Buildable reports whether any GOARCH selects this target.
func (t Target) Buildable() bool {
	return len(t.Arches) > 0
}

// DefaultTargets returns one target per matrix branch, widest first.
// The 128, 16 and 8-bit branches have no Go port and are never rendered.
func DefaultTargets() []Target {
	arches := map[matrix.Width][]string{
		matrix.W64: {"amd64", "arm64", "loong64", "mips64", "mips64le", "ppc64", "ppc64le", "riscv64", "s390x", "wasm"},
		matrix.W32: {"386", "arm", "mips", "mipsle"},
	}
	return lo.Map(matrix.Matrix(), func(b matrix.Branch, _ int) Target {
		return Target{
			Name:   strconv.Itoa(int(b.Pointer)),
			Width:  b.Pointer,
			Arches: arches[b.Pointer],
		}
	})
}

// GetTarget returns the target with the given name.
func GetTarget(targets []Target, name string) (Target, error) {
	for _, t := range targets {
		if t.Name == name {
			return t, nil
		}
	}
	return Target{}, fmt.Errorf("unknown target: %s (available: %s)", name,
		strings.Join(lo.Map(targets, func(t Target, _ int) string { return t.Name }), ", "))
}

// validateTargets checks that every target has a matrix branch, that at
// least one target is buildable and that no GOARCH selects two targets.
func validateTargets(targets []Target) error {
	if !lo.SomeBy(targets, Target.Buildable) {
		return errNoBuildableTarget
	}
	for _, t := range targets {
		if _, err := matrix.BranchFor(t.Width); err != nil {
			return fmt.Errorf("target %s: %w", t.Name, err)
		}
	}
	all := lo.FlatMap(targets, func(t Target, _ int) []string { return t.Arches })
	if dups := lo.FindDuplicates(all); len(dups) > 0 {
		return fmt.Errorf("GOARCH %s is listed for more than one pointer width", dups[0])
	}
	return nil
}

// archFile is the layout of the -arches override file:
//
//	64: [amd64, arm64]
//	32: [386, arm]
//
// Widths present in the file replace the default GOARCH list; widths absent
// keep it.
type archFile map[int][]string

// LoadArches applies the GOARCH overrides in path to targets.
func LoadArches(path string, targets []Target) ([]Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read arches: %w", err)
	}
	var overrides archFile
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, fmt.Errorf("parse arches %s: %w", path, err)
	}

	out := slices.Clone(targets)
	for width, arches := range overrides {
		i := slices.IndexFunc(out, func(t Target) bool { return int(t.Width) == width })
		if i < 0 {
			return nil, fmt.Errorf("arches %s: pointer width %d: %w", path, width, matrix.ErrUnsupportedWidth)
		}
		out[i].Arches = slices.Clone(arches)
	}
	return out, nil
}
