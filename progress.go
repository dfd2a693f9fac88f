// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

// ProgressFunc reports an advance mark such as "MOPE 3/40" or
// "automorphism 2/10" to a caller-supplied side channel. It carries no
// module-level state: a driver takes one as a parameter and calls it
// directly, so two concurrent callers (tests, or a batch CLI) never share
// mutable progress state. A nil ProgressFunc is valid and reports nothing.
type ProgressFunc func(phase string, current, total int)

func (f ProgressFunc) report(phase string, current, total int) {
	if f != nil {
		f(phase, current, total)
	}
}
