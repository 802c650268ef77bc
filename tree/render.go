package tree

import (
	"io"

	"github.com/ddddddO/gtree"
	"github.com/pkg/errors"
)

var ErrEmptyTree = errors.New("tree is empty")

// Render draws the tree structure. Children are prefixed with L or R so the
// slot each course occupies stays visible.
func (t *Tree) Render(w io.Writer) error {
	if t.root == nil {
		return ErrEmptyTree
	}

	root := gtree.NewRoot(t.root.course.String())
	addChildren(root, t.root)

	return errors.Wrap(gtree.OutputFromRoot(w, root), "failed to render tree")
}

func addChildren(parent *gtree.Node, n *node) {
	if n.left != nil {
		addChildren(parent.Add("L "+n.left.course.String()), n.left)
	}
	if n.right != nil {
		addChildren(parent.Add("R "+n.right.course.String()), n.right)
	}
}
