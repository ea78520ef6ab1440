package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-nestedset/nestedset"
	"github.com/forestrie/go-nestedset/snapshot"
	"github.com/spf13/cobra"
)

type app struct {
	cfg Config
	log logger.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "nestedset",
		Short: "Rebuild and query trees stored as nested-set records",
		Long: `nestedset reads a snapshot of nested-set records (.cbor, .yaml or .yml),
rebuilds the tree they encode and prints it, or answers queries against it.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "bfs [file]",
			Short: "Print every record in breadth first order",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tree, err := a.loadTree(cmd, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for r := range tree.BreadthFirst() {
					printRecord(out, r)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "children [file] [id]",
			Short: "Print the children of a record, in order",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				tree, r, err := a.loadTreeAndRecord(cmd, args[0], args[1])
				if err != nil {
					return err
				}
				children, err := tree.Children(r)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, c := range children {
					printRecord(out, c)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "parent [file] [id]",
			Short: "Print the parent of a record",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				tree, r, err := a.loadTreeAndRecord(cmd, args[0], args[1])
				if err != nil {
					return err
				}
				parent, ok, err := tree.Parent(r)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%d is the root\n", r.ID)
					return nil
				}
				printRecord(cmd.OutOrStdout(), parent)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path [file] [from-id] [to-id]",
			Short: "Print the records from an ancestor down to a descendant",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				tree, from, err := a.loadTreeAndRecord(cmd, args[0], args[1])
				if err != nil {
					return err
				}
				to, err := lookup(tree, args[2])
				if err != nil {
					return err
				}
				path, err := tree.Path(from, to)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, r := range path {
					printRecord(out, r)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "render [file]",
			Short: "Print the tree indented by depth",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				tree, err := a.loadTree(cmd, args[0])
				if err != nil {
					return err
				}
				render(cmd.OutOrStdout(), tree)
				return nil
			},
		},
	)
	return rootCmd
}

func (a *app) loadTree(cmd *cobra.Command, path string) (*nestedset.Tree, error) {
	r, err := snapshot.NewFileReader(a.log, &snapshot.OSOpener{}, snapshot.WithMaxRecords(a.cfg.MaxRecords))
	if err != nil {
		return nil, err
	}
	return snapshot.NewLoader(a.log).Load(cmd.Context(), r.FileSource(path))
}

func (a *app) loadTreeAndRecord(cmd *cobra.Command, path string, id string) (*nestedset.Tree, nestedset.Record, error) {
	tree, err := a.loadTree(cmd, path)
	if err != nil {
		return nil, nestedset.Record{}, err
	}
	r, err := lookup(tree, id)
	if err != nil {
		return nil, nestedset.Record{}, err
	}
	return tree, r, nil
}

func lookup(tree *nestedset.Tree, arg string) (nestedset.Record, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return nestedset.Record{}, fmt.Errorf("invalid record id %q: %w", arg, err)
	}
	r, ok := tree.Lookup(id)
	if !ok {
		return nestedset.Record{}, fmt.Errorf("%w: id %d", nestedset.ErrNotFound, id)
	}
	return r, nil
}

func printRecord(w io.Writer, r nestedset.Record) {
	fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", r.ID, r.Name, r.Left, r.Right)
}

// render writes one name per line, indented two spaces per level.
func render(w io.Writer, tree *nestedset.Tree) {
	tree.Walk(func(r nestedset.Record, depth int) bool {
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), r.Name)
		return true
	})
}
