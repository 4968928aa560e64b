//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm

package main

func nativeWideSamples() []sample {
	return nativeSamplesFor[uint64]()
}
