package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/matheus3301/posts/internal/posts"
	"github.com/matheus3301/posts/internal/screen"
	"github.com/spf13/cobra"
)

func newFetchCmd(root *rootOptions) *cobra.Command {
	var (
		query   string
		jsonOut bool
	)
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch posts and print those matching the search query",
		Long: "Fetch posts and print those matching the search query.\n\n" +
			"Without --query the profile's saved query is used. --query replaces\n" +
			"and saves it, the same as typing it in the posts screen.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := root.params()
			if err != nil {
				return err
			}
			queryChanged := cmd.Flags().Changed("query")

			var ctrl *screen.Controller
			return withApp(cmd.Context(), p, func(ctx context.Context) error {
				ctrl.Mount(ctx)
				ctrl.Wait()
				if queryChanged {
					ctrl.SetQuery(query)
				}
				return printSnapshot(cmd.OutOrStdout(), ctrl.Snapshot(), jsonOut)
			}, &ctrl)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "title filter (saved as the profile's query)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	return cmd
}

func printSnapshot(w io.Writer, s screen.Snapshot, jsonOut bool) error {
	if s.Error != "" {
		return errors.New(s.Error)
	}
	if jsonOut {
		return outputJSON(w, s.Visible)
	}
	if len(s.Visible) == 0 {
		_, err := fmt.Fprintln(w, "No posts found!")
		return err
	}
	for _, p := range s.Visible {
		if _, err := fmt.Fprintf(w, "%4d  %s\n", p.ID, posts.CollapseWhitespace(p.Title)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\n%d of %d posts\n", len(s.Visible), s.Total)
	return err
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
