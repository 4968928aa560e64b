package main

import "github.com/ajroetker/go-sizeconv/sizeconv/matrix"

// sample is one conversion and its result.
type sample struct {
	Pair matrix.Pair
	In   matrix.Uint128
	Out  matrix.Uint128
}

// emulatedSamples runs, for every peer of the pointer-width branch, a
// narrowing case (1<<w, skipped for the pointer-width peer), a value that
// fits (42) and a widening case (the peer's maximum).
func emulatedSamples(pointer matrix.Width) ([]sample, error) {
	p, err := matrix.NewPlatform(pointer)
	if err != nil {
		return nil, err
	}
	var out []sample
	for _, w := range p.Branch().Peers {
		into := matrix.Pair{Source: matrix.SizeType, Target: matrix.FixedType(w)}
		inputs := []sample{
			{Pair: into, In: matrix.From64(42)},
			{Pair: matrix.Pair{Source: matrix.FixedType(w), Target: matrix.SizeType}, In: matrix.Max(w)},
		}
		if w < pointer {
			inputs = append([]sample{{Pair: into, In: matrix.From64(1).Lsh(uint(w))}}, inputs...)
		}
		for _, s := range inputs {
			s.Out, err = p.Convert(s.Pair, s.In)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}
