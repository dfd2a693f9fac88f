// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"testing"

	"github.com/pkg/errors"

	cntun "github.com/ShiotaTakumi/CountingNonoverlappingUnfoldings"
)

//********************************************************************************************

func TestExitCodeForInconsistent(t *testing.T) {
	wrapped := errors.Wrap(cntun.ErrInconsistent, "burnside sum 3 not divisible by 4")
	if code := exitCodeFor(wrapped); code != 2 {
		t.Errorf("expected exit code 2 for an inconsistency error, actual %d", code)
	}
}

func TestExitCodeForOtherErrors(t *testing.T) {
	if code := exitCodeFor(cntun.ErrInputSchema); code != 1 {
		t.Errorf("expected exit code 1 for a schema error, actual %d", code)
	}
	if code := exitCodeFor(errors.New("unrelated failure")); code != 1 {
		t.Errorf("expected exit code 1 as the fallback, actual %d", code)
	}
}
