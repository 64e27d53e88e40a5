package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/middlemost/podlink"
	"github.com/middlemost/podlink/bolt"
	"github.com/spf13/cobra"
)

func (m *Main) historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently recorded resolutions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return m.withDB(func(db *bolt.DB) error {
				a, err := bolt.NewResolutionService(db).FindResolutions(context.Background(), limit)
				if err != nil {
					return err
				}
				return m.printResolutions(a)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of resolutions to list (0 for all)")

	return cmd
}

// printResolutions writes a table of resolutions to stdout.
func (m *Main) printResolutions(a []*podlink.Resolution) error {
	tw := tabwriter.NewWriter(m.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tACTION\tKIND\tCANDIDATES")
	for _, r := range a {
		var action string
		if r.Request != nil {
			action = r.Request.Action
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.CreatedAt.Format(time.RFC3339), action, r.Kind(), strings.Join(r.Candidates, ","))
	}
	return tw.Flush()
}

// withDB opens the configured database, calls fn and closes the database.
func (m *Main) withDB(fn func(db *bolt.DB) error) error {
	path := m.Config.Database.Path
	if err := InterpolatePaths(&path); err != nil {
		return err
	}

	db := bolt.NewDB()
	db.Path = path
	if err := db.Open(); err != nil {
		return err
	}
	defer db.Close()

	return fn(db)
}
