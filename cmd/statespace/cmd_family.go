package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/statespace-go/internal/ux"
	"github.com/dshills/statespace-go/puzzle/family"
	"github.com/dshills/statespace-go/search"
)

func runFamily(cmd *cobra.Command, args []string) {
	if err := familyRun(cmd.Context()); err != nil {
		ux.Errorf("%v", err)
		os.Exit(1)
	}
}

// costModel maps --cost to a family cost function. The noise models
// prefer ferrying the loud sons early; see family.ByNoise.
func costModel(name string) (search.CostModel[family.State, family.Cost], error) {
	switch name {
	case "depth":
		return family.ByDepth(), nil
	case "noise":
		return family.ByNoise(2, 1), nil
	case "noise-younger":
		return family.ByNoise(1, 2), nil
	default:
		return search.CostModel[family.State, family.Cost]{}, fmt.Errorf("unknown cost model %q (depth, noise, noise-younger)", name)
	}
}

func familyRun(ctx context.Context) error {
	model, err := costModel(flagCost)
	if err != nil {
		return err
	}
	env, err := newSolveEnv()
	if err != nil {
		return err
	}
	defer env.close()

	space := search.NewWithCost(family.Initial(), family.Successors, family.Valid, model, env.opts)
	result, err := space.Check(ctx, family.Solved, search.CostGuided)
	if err != nil {
		return err
	}

	states := renderPath(result.Path, family.State.String)
	if result.Found {
		if flagTravelOnly {
			var travel []string
			for i, s := range result.Path {
				if s.Boat.Pos == family.BoatTravel {
					travel = append(travel, states[i])
				}
			}
			fmt.Print(ux.StateList(family.Header, travel))
		} else {
			fmt.Print(ux.PathView(family.Header, states, stepCaptions(result.Path, family.Moves, family.Apply)))
		}
	}
	name := "family-" + flagCost
	if err := finishRun(ctx, env, name, search.CostGuided, result.Found, result.RunID, states, result.Stats); err != nil {
		return err
	}
	env.waitIfServing()
	return nil
}
