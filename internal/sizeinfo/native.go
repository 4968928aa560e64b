//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm || 386 || arm || mips || mipsle

package main

import (
	"math/bits"
	"unsafe"

	"github.com/ajroetker/go-sizeconv/sizeconv"
	"github.com/ajroetker/go-sizeconv/sizeconv/matrix"
)

// nativeSamples runs the same cases as emulatedSamples through the
// conversions compiled into this build, widest peer first.
func nativeSamples() []sample {
	out := nativeWideSamples()
	out = append(out, nativeSamplesFor[uint32]()...)
	out = append(out, nativeSamplesFor[uint16]()...)
	return append(out, nativeSamplesFor[uint8]()...)
}

func nativeSamplesFor[F sizeconv.Fixed]() []sample {
	var zero F
	w := matrix.Width(unsafe.Sizeof(zero) * 8)
	into := matrix.Pair{Source: matrix.SizeType, Target: matrix.FixedType(w)}

	var out []sample
	if int(w) < bits.UintSize {
		over := sizeconv.Size(1) << w
		out = append(out, sample{Pair: into, In: matrix.From64(uint64(over)), Out: matrix.From64(uint64(sizeconv.FromSize[F](over)))})
	}
	out = append(out, sample{Pair: into, In: matrix.From64(42), Out: matrix.From64(uint64(sizeconv.FromSize[F](42)))})

	maxF := ^F(0)
	back := matrix.Pair{Source: matrix.FixedType(w), Target: matrix.SizeType}
	return append(out, sample{Pair: back, In: matrix.From64(uint64(maxF)), Out: matrix.From64(uint64(sizeconv.FromFixed(maxF)))})
}
