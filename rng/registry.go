// Copyright 2026 The pearlacid Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rng

import "fmt"

// Factory constructs a Generator from a uint64 seed. Used by the driver
// binary's generator registry; factories for generators whose construction
// can fail (RijndaelStream) return the configuration error unchanged.
type Factory func(seed uint64) (Generator, error)

// Registry lists every generator family in the zoo by name, test
// generators last.
var Registry = map[string]Factory{
	"Reference":         wrapOK(func(s uint64) Generator { return NewReference(s) }),
	"Lehmer64":          wrapOK(func(s uint64) Generator { return NewLehmer64(s) }),
	"RANDU":             wrapOK(func(s uint64) Generator { return NewRandu(s) }),
	"MMIX":              wrapOK(func(s uint64) Generator { return NewMmix(s) }),
	"UlsLcg512":         wrapOK(func(s uint64) Generator { return NewUlsLcg512(s) }),
	"UlsLcg512H":        wrapOK(func(s uint64) Generator { return NewUlsLcg512H(s) }),
	"XORShift128":       wrapOK(func(s uint64) Generator { return NewXORShift128(s) }),
	"StreamNLARXu128":   wrapOK(func(s uint64) Generator { return NewStreamNLARXu128(s) }),
	"RijndaelStream":    func(s uint64) (Generator, error) { return NewRijndaelStream(s) },
	"OnlyZero":          wrapOK(func(s uint64) Generator { return NewOnlyZero(s) }),
	"OnlyOne":           wrapOK(func(s uint64) Generator { return NewOnlyOne(s) }),
	"AlternatingBlocks": wrapOK(func(s uint64) Generator { return NewAlternatingBlocks(s) }),
	"AlternatingBytes":  wrapOK(func(s uint64) Generator { return NewAlternatingBytes(s) }),
	"AlternatingBits":   wrapOK(func(s uint64) Generator { return NewAlternatingBits(s) }),
}

func wrapOK(f func(seed uint64) Generator) Factory {
	return func(seed uint64) (Generator, error) { return f(seed), nil }
}

// New constructs the named generator with the given seed.
func New(name string, seed uint64) (Generator, error) {
	factory, ok := Registry[name]
	if !ok {
		return nil, fmt.Errorf("rng: unknown generator %q", name)
	}
	return factory(seed)
}
