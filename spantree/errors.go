package spantree

import (
	"fmt"

	"github.com/pflow-xyz/go-synthesis/ts"
)

func notInTree(t *Tree, id string) error {
	return fmt.Errorf("%w: %q not in spanning tree rooted at %q", ts.ErrNoSuchState, id, t.root)
}
