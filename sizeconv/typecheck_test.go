package sizeconv

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

const uint64Caller = `package uint64caller

import "github.com/ajroetker/go-sizeconv/sizeconv"

var (
	_ = sizeconv.FromSize[uint64](1)
	_ = sizeconv.IntoSize[uint64](1)
	_ = sizeconv.Uint64FromSize
)
`

// typeErrors type-checks uint64Caller for goarch and returns the errors
// reported for it.
func typeErrors(t *testing.T, goarch string) []string {
	t.Helper()
	if testing.Short() {
		t.Skip("loads packages with the go command")
	}
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go command not available")
	}

	root, err := filepath.Abs("..")
	require.NoError(t, err)
	file := filepath.Join(root, "internal", "uint64caller", "caller.go")

	cfg := &packages.Config{
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedImports,
		Dir:     root,
		Env:     append(os.Environ(), "GOARCH="+goarch, "CGO_ENABLED=0"),
		Overlay: map[string][]byte{file: []byte(uint64Caller)},
	}
	pkgs, err := packages.Load(cfg, "github.com/ajroetker/go-sizeconv/internal/uint64caller")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	var msgs []string
	for _, e := range pkgs[0].Errors {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}

func TestUint64RejectedOn32Bit(t *testing.T) {
	msgs := typeErrors(t, "386")
	all := strings.Join(msgs, "\n")
	assert.Contains(t, all, "uint64 does not satisfy sizeconv.Fixed")
	assert.Contains(t, all, "Uint64FromSize")
}

func TestUint64AcceptedOn64Bit(t *testing.T) {
	assert.Empty(t, typeErrors(t, "amd64"))
}
