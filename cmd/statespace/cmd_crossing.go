package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/statespace-go/internal/ux"
	"github.com/dshills/statespace-go/puzzle/crossing"
	"github.com/dshills/statespace-go/search"
)

func runCrossing(cmd *cobra.Command, args []string) {
	if err := crossingRun(cmd.Context()); err != nil {
		ux.Errorf("%v", err)
		os.Exit(1)
	}
}

func crossingRun(ctx context.Context) error {
	order, err := search.ParseOrder(flagOrder)
	if err != nil {
		return err
	}
	env, err := newSolveEnv()
	if err != nil {
		return err
	}
	defer env.close()

	space := search.New(crossing.Initial(), crossing.Successors, crossing.Valid, env.opts)
	result, err := space.Check(ctx, crossing.Solved, order)
	if err != nil {
		return err
	}

	states := renderPath(result.Path, crossing.State.String)
	if result.Found {
		fmt.Print(ux.PathView("#  CGW", states, stepCaptions(result.Path, crossing.Moves, crossing.Apply)))
	}
	if err := finishRun(ctx, env, "crossing", order, result.Found, result.RunID, states, result.Stats); err != nil {
		return err
	}
	env.waitIfServing()
	return nil
}
