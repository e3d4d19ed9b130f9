package cli

import (
	"fmt"

	"github.com/bcolb/searchtree/pkg/bst"
	"github.com/bcolb/searchtree/pkg/render"
)

type TraverseCmd struct {
	Values []int  `arg:"" optional:"" help:"Values to insert, in insertion order"`
	Remove []int  `help:"Values to remove once everything is inserted"`
	Order  string `help:"Traversal to print (${enum})" enum:"all,in,pre,post" default:"all"`
}

// Run executes the traverse command.
func (cmd *TraverseCmd) Run(ctx *Context) error {
	tree := bst.New(bst.WithLogger[int](ctx.Logger))
	for _, v := range cmd.Values {
		tree.Insert(v)
	}
	for _, v := range cmd.Remove {
		tree.Remove(v)
	}

	orders := bst.Orders
	if cmd.Order != "all" {
		order, err := bst.ParseOrder(cmd.Order)
		if err != nil {
			return err
		}
		orders = []bst.Order{order}
	}

	for _, order := range orders {
		fmt.Fprintf(ctx.Out, "%-5s %s\n", order.String()+":", render.Tree(tree, order))
	}
	fmt.Fprintf(ctx.Out, "%-5s %s\n", "min:", extreme(tree.Min))
	fmt.Fprintf(ctx.Out, "%-5s %s\n", "max:", extreme(tree.Max))
	return nil
}

func extreme(find func() (int, error)) string {
	v, err := find()
	if err != nil {
		return "error: " + err.Error()
	}
	return fmt.Sprint(v)
}
