package layout

import "fmt"

// IntegrityError checks the structural invariants of the subtree and returns
// a description of the first violation, or nil when the tree is sound:
//
//  1. no node has exactly one child,
//  2. every child except the last has a fraction in [0, 1],
//  3. the last child is a fill sentinel,
//  4. the same holds recursively.
//
// Trees that fail this check must never be persisted, and trees loaded from
// storage that fail it are discarded as if absent. It is a query, never a
// panic: geometry code assumes the invariants and relies on every mutation
// path preserving them.
func (n *Node) IntegrityError() error {
	if len(n.Children) == 1 {
		return fmt.Errorf("node has exactly one child")
	}
	for i, c := range n.Children {
		if i == len(n.Children)-1 {
			if !c.Percent.Last {
				return fmt.Errorf("last child of %d is not a fill sentinel", len(n.Children))
			}
		} else {
			if c.Percent.Last {
				return fmt.Errorf("fill sentinel at position %d of %d", i, len(n.Children))
			}
			if c.Percent.Frac < 0 || c.Percent.Frac > 1 {
				return fmt.Errorf("child fraction %v outside [0, 1]", c.Percent.Frac)
			}
		}
		if err := c.IntegrityError(); err != nil {
			return err
		}
	}
	return nil
}
