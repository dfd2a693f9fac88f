// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import "github.com/pkg/errors"

// configs holds tunable construction parameters for the ZDD engine's node
// arena. Values are set through functional options in the manner of New, so
// callers never poke at engine internals directly.
type configs struct {
	nodesize        int // initial number of nodes in the arena
	maxnodesize     int // maximum total number of nodes in the arena (0 = no limit)
	maxnodeincrease int // maximum number of nodes added to the arena at a single resize (0 = no limit)
	minfreenodes    int // percentage of free nodes that should remain after a resize
}

const (
	defaultNodesize        = 1 << 14
	defaultMaxNodesize     = 0
	defaultMaxNodeIncrease = 1 << 20
	defaultMinFreeNodes    = 20
)

func defaultConfigs() configs {
	return configs{
		nodesize:        defaultNodesize,
		maxnodesize:     defaultMaxNodesize,
		maxnodeincrease: defaultMaxNodeIncrease,
		minfreenodes:    defaultMinFreeNodes,
	}
}

// Option configures the ZDD engine's arena. Each option validates its own
// argument and returns an error instead of silently clamping: a bad option
// here is an input schema error, not an advisory default.
type Option func(*configs) error

// Nodesize sets the initial size of the node arena. The default is 16384.
func Nodesize(size int) Option {
	return func(c *configs) error {
		if size < 2 {
			return errors.Errorf("nodesize must be at least 2, got %d", size)
		}
		c.nodesize = size
		return nil
	}
}

// MaxNodesize bounds the total number of nodes the arena may ever hold.
// Zero (the default) means unbounded growth. Build, Reduce, and Subset
// return an error wrapping ErrOutOfMemory if a node is needed past this
// cap.
func MaxNodesize(size int) Option {
	return func(c *configs) error {
		if size < 0 {
			return errors.Errorf("maxnodesize must be >= 0, got %d", size)
		}
		c.maxnodesize = size
		return nil
	}
}

// MaxNodeIncrease bounds how many nodes a single arena resize may add. Zero
// means unbounded growth.
func MaxNodeIncrease(size int) Option {
	return func(c *configs) error {
		if size < 0 {
			return errors.Errorf("maxnodeincrease must be >= 0, got %d", size)
		}
		c.maxnodeincrease = size
		return nil
	}
}

// MinFreeNodes sets the free-slot percentage below which the arena grows:
// before a node is added, the arena is resized if its free capacity is
// under this share of its size. The size of each resize is set by
// MaxNodeIncrease and MaxNodesize, not by this ratio. The default is 20%.
func MinFreeNodes(ratio int) Option {
	return func(c *configs) error {
		if ratio < 0 || ratio > 100 {
			return errors.Errorf("minfreenodes must be a percentage in [0,100], got %d", ratio)
		}
		c.minfreenodes = ratio
		return nil
	}
}

func newConfigs(opts ...Option) (configs, error) {
	c := defaultConfigs()
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return c, err
		}
	}
	return c, nil
}
