package main

import (
	"errors"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-sizeconv/sizeconv/matrix"
)

func newTestGenerator(outputDir string) *Generator {
	return &Generator{
		PackageName:  "sizeconv",
		OutputDir:    outputDir,
		MatrixImport: defaultMatrixImport,
		Targets:      DefaultTargets(),
	}
}

func TestGetTarget(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		buildable bool
		wantErr   bool
	}{
		{"W128", "128", false, false},
		{"W64", "64", true, false},
		{"W32", "32", true, false},
		{"W16", "16", false, false},
		{"W8", "8", false, false},
		{"Unknown", "48", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetTarget(DefaultTargets(), tt.target)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetTarget(%q) error = %v, wantErr %v", tt.target, err, tt.wantErr)
			}
			if got.Buildable() != tt.buildable {
				t.Errorf("GetTarget(%q).Buildable() = %v, want %v", tt.target, got.Buildable(), tt.buildable)
			}
		})
	}
}

func TestDefaultTargetsCoverMatrix(t *testing.T) {
	targets := DefaultTargets()
	require.Len(t, targets, len(matrix.Matrix()))
	for i, b := range matrix.Matrix() {
		assert.Equal(t, b.Pointer, targets[i].Width)
	}
	require.NoError(t, validateTargets(targets))
}

func TestValidateTargetsDuplicateArch(t *testing.T) {
	targets := DefaultTargets()
	for i := range targets {
		if targets[i].Width == matrix.W32 {
			targets[i].Arches = append(targets[i].Arches, "amd64")
		}
	}
	err := validateTargets(targets)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amd64")
}

func TestValidateTargetsUnknownWidth(t *testing.T) {
	targets := append(DefaultTargets(), Target{Name: "48", Width: 48, Arches: []string{"fake48"}})
	err := validateTargets(targets)
	assert.ErrorIs(t, err, matrix.ErrUnsupportedWidth)
}

func TestValidateTargetsNoBuildableTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arches.yaml")
	require.NoError(t, os.WriteFile(path, []byte("64: []\n32: []\n"), 0644))

	targets, err := LoadArches(path, DefaultTargets())
	require.NoError(t, err)
	assert.ErrorIs(t, validateTargets(targets), errNoBuildableTarget)

	g := newTestGenerator(t.TempDir())
	g.Targets = targets
	assert.ErrorIs(t, g.Run(), errNoBuildableTarget)
	_, err = g.renderFallback()
	assert.ErrorIs(t, err, errNoBuildableTarget)
}

func TestRenderNamesMatrixImport(t *testing.T) {
	g := newTestGenerator(t.TempDir())
	g.MatrixImport = "example.com/sizes/widths"
	target, err := GetTarget(g.Targets, "64")
	require.NoError(t, err)

	src, err := g.renderBranch(target)
	require.NoError(t, err)
	assert.Contains(t, string(src), `matrix "example.com/sizes/widths"`)
	assert.Contains(t, string(src), "const PointerWidth matrix.Width = 64")

	src, err = g.renderFallback()
	require.NoError(t, err)
	assert.Contains(t, string(src), `import matrix "example.com/sizes/widths"`)
}

func TestRenderBranch64(t *testing.T) {
	g := newTestGenerator(t.TempDir())
	target, err := GetTarget(g.Targets, "64")
	require.NoError(t, err)

	src, err := g.renderBranch(target)
	require.NoError(t, err)
	out := string(src)

	for _, want := range []string{
		"// Code generated by sizeconvgen. DO NOT EDIT.",
		"//go:build amd64 || arm64 ||",
		"const PointerWidth matrix.Width = 64",
		"~uint64 | ~uint32 | ~uint16 | ~uint8",
		"{Source: matrix.SizeType, Target: matrix.FixedType(matrix.W64)},",
		"{Source: matrix.FixedType(matrix.W8), Target: matrix.SizeType},",
		"func Uint64FromSize(v Size) uint64",
		"func SizeFromUint8(v uint8) Size",
		"Bits above the low 32 are discarded.",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Bits above the low 64")
	assert.NotContains(t, out, "uint128")
	assert.Equal(t, 8, strings.Count(out, "{Source:"))
}

func TestRenderBranch32OmitsUint64(t *testing.T) {
	g := newTestGenerator(t.TempDir())
	target, err := GetTarget(g.Targets, "32")
	require.NoError(t, err)

	src, err := g.renderBranch(target)
	require.NoError(t, err)
	out := string(src)

	assert.Contains(t, out, "//go:build 386 || arm || mips || mipsle")
	assert.Contains(t, out, "~uint32 | ~uint16 | ~uint8")
	assert.NotContains(t, out, "uint64")
	assert.NotContains(t, out, "W64")
	assert.Equal(t, 6, strings.Count(out, "{Source:"))
}

func TestRenderBranchWithoutGoType(t *testing.T) {
	g := newTestGenerator(t.TempDir())
	_, err := g.renderBranch(Target{Name: "128", Width: matrix.W128, Arches: []string{"fake128"}})
	assert.True(t, errors.Is(err, errNoGoType), "renderBranch(128) error = %v", err)
}

func TestRenderFallbackExcludesEveryArch(t *testing.T) {
	g := newTestGenerator(t.TempDir())
	src, err := g.renderFallback()
	require.NoError(t, err)
	out := string(src)

	var constraint string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "//go:build ") {
			constraint = strings.TrimPrefix(line, "//go:build ")
		}
	}
	var want []string
	for _, target := range g.Targets {
		for _, arch := range target.Arches {
			want = append(want, "!"+arch)
		}
	}
	assert.Equal(t, want, strings.Split(constraint, " && "))
	assert.Contains(t, out, "const PointerWidth matrix.Width = 0")
	assert.Contains(t, out, "unsupportedTarget()")
	assert.Contains(t, out, "var registered []matrix.Pair")
}

func TestRunWritesFiles(t *testing.T) {
	dir := t.TempDir()
	g := newTestGenerator(dir)
	require.NoError(t, g.Run())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"z_sizeconv_32.go", "z_sizeconv_64.go", "z_sizeconv_other.go"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("generated files mismatch (-want +got):\n%s", diff)
	}

	g.Check = true
	require.NoError(t, g.Run())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "z_sizeconv_32.go"), []byte("package sizeconv\n"), 0644))
	assert.ErrorIs(t, g.Run(), errStale)
}

// TestGeneratedFilesUpToDate fails when sizeconv/z_sizeconv_*.go were
// edited by hand or the matrix changed without rerunning go generate.
func TestGeneratedFilesUpToDate(t *testing.T) {
	g := newTestGenerator(filepath.Join("..", "..", "sizeconv"))

	check := func(name string, src []byte) {
		t.Helper()
		have, err := os.ReadFile(filepath.Join(g.OutputDir, name))
		require.NoError(t, err)
		have, err = format.Source(have)
		require.NoError(t, err)
		if diff := cmp.Diff(string(src), string(have)); diff != "" {
			t.Errorf("%s is stale, run go generate ./sizeconv (-want +got):\n%s", name, diff)
		}
	}

	for _, target := range g.Targets {
		if !target.Buildable() {
			continue
		}
		src, err := g.renderBranch(target)
		require.NoError(t, err)
		check(target.Filename(), src)
	}
	src, err := g.renderFallback()
	require.NoError(t, err)
	check(fallbackFilename, src)
}

func TestLoadArches(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arches.yaml")
	content := `64: [amd64, arm64]
32: [386]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	targets, err := LoadArches(path, DefaultTargets())
	require.NoError(t, err)

	t64, err := GetTarget(targets, "64")
	require.NoError(t, err)
	assert.Equal(t, []string{"amd64", "arm64"}, t64.Arches)

	t32, err := GetTarget(targets, "32")
	require.NoError(t, err)
	assert.Equal(t, "386", t32.BuildTag())

	// Defaults are not modified.
	d64, err := GetTarget(DefaultTargets(), "64")
	require.NoError(t, err)
	assert.Len(t, d64.Arches, 10)
}

func TestLoadArchesRejectsUnknownWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arches.yaml")
	require.NoError(t, os.WriteFile(path, []byte("48: [fake]\n"), 0644))

	_, err := LoadArches(path, DefaultTargets())
	assert.ErrorIs(t, err, matrix.ErrUnsupportedWidth)
}

func TestTypeIdent(t *testing.T) {
	tests := []struct {
		width matrix.Width
		want  string
	}{
		{matrix.W8, "Uint8"},
		{matrix.W16, "Uint16"},
		{matrix.W32, "Uint32"},
		{matrix.W64, "Uint64"},
	}
	for _, tt := range tests {
		if got := typeIdent(tt.width); got != tt.want {
			t.Errorf("typeIdent(%d) = %q, want %q", tt.width, got, tt.want)
		}
	}
}
