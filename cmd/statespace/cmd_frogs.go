package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/statespace-go/internal/ux"
	"github.com/dshills/statespace-go/puzzle/frogs"
	"github.com/dshills/statespace-go/search"
)

func runFrogs(cmd *cobra.Command, args []string) {
	if err := frogsRun(cmd.Context()); err != nil {
		ux.Errorf("%v", err)
		os.Exit(1)
	}
}

func frogsRun(ctx context.Context) error {
	if flagPairs < 1 {
		return fmt.Errorf("--pairs must be at least 1, got %d", flagPairs)
	}
	start := frogs.Start(flagPairs)

	if flagShowTree {
		return frogs.WriteTree(os.Stdout, start, flagTreeDepth)
	}

	order, err := search.ParseOrder(flagOrder)
	if err != nil {
		return err
	}
	env, err := newSolveEnv()
	if err != nil {
		return err
	}
	defer env.close()

	// Every enumerated hop is legal, so the space needs no invariant.
	space := search.New(start, frogs.Successors, nil, env.opts)
	result, err := space.Check(ctx, frogs.Solved, order)
	if err != nil {
		return err
	}

	states := renderPath(result.Path, func(s frogs.State) string { return string(s) })
	if result.Found {
		header := fmt.Sprintf("%d frogs on %d stones", 2*flagPairs, 2*flagPairs+1)
		fmt.Print(ux.PathView(header, states, stepCaptions(result.Path, frogs.Moves, frogs.Apply)))
	}
	model := fmt.Sprintf("frogs-%d", flagPairs)
	if err := finishRun(ctx, env, model, order, result.Found, result.RunID, states, result.Stats); err != nil {
		return err
	}
	env.waitIfServing()
	return nil
}
