//go:build 386 || arm || mips || mipsle

package main

// uint64 is not paired with Size on 32-bit targets.
func nativeWideSamples() []sample {
	return nil
}
