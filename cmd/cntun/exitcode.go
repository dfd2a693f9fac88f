// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"github.com/pkg/errors"

	cntun "github.com/ShiotaTakumi/CountingNonoverlappingUnfoldings"
)

// exitCodeFor maps the error taxonomy to a process exit code: input
// schema, capacity, and out-of-memory errors map to 1; Burnside
// indivisibility maps to 2, since the computation completed but is
// flagged inconsistent; anything else also falls back to 1.
func exitCodeFor(err error) int {
	if errors.Is(err, cntun.ErrInconsistent) {
		return 2
	}
	return 1
}
