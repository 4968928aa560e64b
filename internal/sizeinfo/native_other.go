//go:build !amd64 && !arm64 && !loong64 && !mips64 && !mips64le && !ppc64 && !ppc64le && !riscv64 && !s390x && !wasm && !386 && !arm && !mips && !mipsle

package main

// No conversion is compiled into builds for this target.
func nativeSamples() []sample {
	return nil
}
