package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matheus3301/posts/internal/app"
	"github.com/matheus3301/posts/internal/config"
	"github.com/matheus3301/posts/internal/profile"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const binary = "postsctl"

type rootOptions struct {
	profile string
	verbose bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           binary,
		Short:         "Fetch posts and manage the saved search query from scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.profile, "profile", "", "profile name (overrides config default)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "also log to stderr")

	cmd.AddCommand(newFetchCmd(opts), newQueryCmd(opts))
	return cmd
}

// params resolves the profile and configuration for a command run.
func (o *rootOptions) params() (app.Params, error) {
	cfg, err := config.LoadOrDefault(profile.ConfigPath())
	if err != nil {
		return app.Params{}, err
	}
	name := profile.Resolve(o.profile, cfg)
	if err := profile.ValidateName(name); err != nil {
		return app.Params{}, err
	}
	return app.Params{
		Profile:    name,
		Binary:     binary,
		Config:     cfg,
		Console:    o.verbose,
		NoSkeleton: true,
	}, nil
}

// withApp starts the module, runs fn, and stops the module. targets are
// filled from the container before fn runs.
func withApp(ctx context.Context, p app.Params, fn func(ctx context.Context) error, targets ...any) error {
	fxApp := fx.New(app.Module(p), fx.Populate(targets...))
	if err := fxApp.Err(); err != nil {
		return err
	}

	startCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := fxApp.Start(startCtx); err != nil {
		return err
	}

	runErr := fn(ctx)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
