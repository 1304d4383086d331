package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/google/gops/agent"
	"github.com/jessevdk/go-flags"
	"github.com/viant/dslx/cmd/command"
	"github.com/viant/dslx/cmd/options"
)

// New runs command line application
func New(version string, args options.Arguments, stdout, stderr io.Writer) error {
	opts, err := buildOptions(args)
	if err != nil || opts == nil {
		return err
	}
	if opts.Version != nil {
		fmt.Fprintf(stdout, "dslx: version: %v\n", version)
		return nil
	}
	ctx := context.Background()
	if err = opts.Init(ctx); err != nil {
		return err
	}
	if session := opts.Session(); session != nil && session.Diagnose {
		if err = agent.Listen(agent.Options{}); err != nil {
			return err
		}
		defer agent.Close()
	}
	return command.NewWithWriters(stdout, stderr).Exec(ctx, opts)
}

func buildOptions(args options.Arguments) (*options.Options, error) {
	opts := options.NewOptions(args)
	if _, err := flags.ParseArgs(opts, args); err != nil {
		return nil, err
	}
	if args.IsHelp() {
		return nil, nil
	}
	return opts, nil
}
