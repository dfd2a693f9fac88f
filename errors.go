// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors identifying the taxonomy classes this package raises:
// callers test with errors.Is/errors.As instead of matching message text,
// so the CLI layer can map a failure to the right exit code without
// inspecting strings. Each constructor below builds the message in one
// place and wraps the matching sentinel, rather than mutating any
// module-level error state.
var (
	// ErrInputSchema covers missing files, malformed lines, permutation
	// length mismatches and out-of-range edge indices.
	ErrInputSchema = errors.New("input schema error")
	// ErrCapacity covers graphs with more edges than any configured
	// BitMask width can represent.
	ErrCapacity = errors.New("capacity error")
	// ErrOutOfMemory surfaces from the ZDD engine's arena allocator.
	ErrOutOfMemory = errors.New("out of memory")
	// ErrInconsistent flags a Burnside sum not divisible by group_order.
	// It is returned alongside a usable (floor-divided) result, not in
	// place of one; see BurnsideResult.Inconsistent.
	ErrInconsistent = errors.New("burnside sum not divisible by group order")
)

// SchemaError wraps ErrInputSchema with the offending file and, where known,
// line number.
type SchemaError struct {
	File string
	Line int // 0 when not line-addressable
	msg  string
}

func (e *SchemaError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.msg)
	}
	return fmt.Sprintf("%s: %s", e.File, e.msg)
}

func (e *SchemaError) Unwrap() error { return ErrInputSchema }

func schemaErrorf(file string, line int, format string, a ...interface{}) error {
	return errors.WithStack(&SchemaError{File: file, Line: line, msg: fmt.Sprintf(format, a...)})
}

// CapacityError reports the bitmask width that would have been required.
type CapacityError struct {
	Edges, Needed int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("graph has %d edges; no configured BitMask width covers it (needed >= %d bits)", e.Edges, e.Needed)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

func capacityErrorf(edges, needed int) error {
	return errors.WithStack(&CapacityError{Edges: edges, Needed: needed})
}

// OutOfMemoryError reports that the node arena could not grow past
// maxnodesize to satisfy the current build.
type OutOfMemoryError struct {
	Size, MaxNodesize int
}

func (e *OutOfMemoryError) Error() string {
	return fmt.Sprintf("node arena at %d nodes, already at maxnodesize %d", e.Size, e.MaxNodesize)
}

func (e *OutOfMemoryError) Unwrap() error { return ErrOutOfMemory }

func outOfMemoryErrorf(size, maxNodesize int) error {
	return errors.WithStack(&OutOfMemoryError{Size: size, MaxNodesize: maxNodesize})
}

// InconsistentError reports a Burnside sum that did not divide evenly by
// the automorphism group order; Quotient is still the usable floor-divided
// result.
type InconsistentError struct {
	Sum        string
	GroupOrder int
	Remainder  int
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("burnside sum %s is not divisible by group_order %d (remainder %d)", e.Sum, e.GroupOrder, e.Remainder)
}

func (e *InconsistentError) Unwrap() error { return ErrInconsistent }

func inconsistentErrorf(sum string, groupOrder, remainder int) error {
	return errors.WithStack(&InconsistentError{Sum: sum, GroupOrder: groupOrder, Remainder: remainder})
}
