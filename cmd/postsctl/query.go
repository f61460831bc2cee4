package main

import (
	"context"
	"fmt"

	"github.com/matheus3301/posts/internal/querystore"
	"github.com/spf13/cobra"
)

func newQueryCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Show or change the profile's saved search query",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Print the saved query",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withQueryStore(cmd, root, func(ctx context.Context, qs *querystore.Store) error {
					value, ok, err := qs.Load(ctx)
					if err != nil {
						return err
					}
					if !ok {
						fmt.Fprintf(cmd.ErrOrStderr(), "no saved query under key %q\n", qs.Key())
						return nil
					}
					_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
					return err
				})
			},
		},
		&cobra.Command{
			Use:   "set <value>",
			Short: "Replace the saved query",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return withQueryStore(cmd, root, func(ctx context.Context, qs *querystore.Store) error {
					return qs.Save(ctx, args[0])
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the saved query",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withQueryStore(cmd, root, func(ctx context.Context, qs *querystore.Store) error {
					return qs.Clear(ctx)
				})
			},
		},
	)
	return cmd
}

func withQueryStore(cmd *cobra.Command, root *rootOptions, fn func(context.Context, *querystore.Store) error) error {
	p, err := root.params()
	if err != nil {
		return err
	}
	var qs *querystore.Store
	return withApp(cmd.Context(), p, func(ctx context.Context) error {
		return fn(ctx, qs)
	}, &qs)
}
