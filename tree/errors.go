package tree

import "github.com/pkg/errors"

var (
	ErrInvalidPosition = errors.New("position does not belong to this tree")
	ErrRootExists      = errors.New("tree already has a root")
	ErrChildExists     = errors.New("child already exists")
	ErrTwoChildren     = errors.New("node has two children")
	ErrNotExternal     = errors.New("node is not a leaf")
	ErrNoParent        = errors.New("node has no parent")
	ErrNoGrandparent   = errors.New("node has no grandparent")
)
