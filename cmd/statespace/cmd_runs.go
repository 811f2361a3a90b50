package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dshills/statespace-go/internal/ux"
	"github.com/dshills/statespace-go/search/store"
)

const runRowFormat = "%-36s  %-20s  %-13s  %-5v  %6v  %8v  %s"

func runRunsList(cmd *cobra.Command, args []string) {
	if err := runsListRun(cmd.Context()); err != nil {
		ux.Errorf("%v", err)
		os.Exit(1)
	}
}

func runRunsShow(cmd *cobra.Command, args []string) {
	if err := runsShowRun(cmd.Context(), args[0]); err != nil {
		ux.Errorf("%v", err)
		os.Exit(1)
	}
}

// openRunsArchive opens the archive for browsing. Unlike solving, where
// archiving is optional, browsing without a store is meaningless.
func openRunsArchive() (store.Store[string], func() error, error) {
	archive, closeArchive, err := openArchive()
	if err != nil {
		return nil, nil, err
	}
	if archive == nil {
		return nil, nil, errors.New("runs need an archive: set --store")
	}
	if closeArchive == nil {
		closeArchive = func() error { return nil }
	}
	return archive, closeArchive, nil
}

func runsListRun(ctx context.Context) error {
	archive, closeArchive, err := openRunsArchive()
	if err != nil {
		return err
	}
	defer closeArchive()

	recs, err := archive.ListRuns(ctx, flagRunsModel)
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Println(ux.Statline("no archived runs"))
		return nil
	}

	fmt.Println(ux.Title(fmt.Sprintf(runRowFormat, "RUN", "MODEL", "ORDER", "FOUND", "STATES", "EXPANDED", "CREATED")))
	for _, rec := range recs {
		fmt.Printf(runRowFormat+"\n",
			rec.RunID, rec.Model, rec.Order, rec.Found, len(rec.Path), rec.Expanded,
			rec.CreatedAt.Format(time.RFC3339))
	}
	return nil
}

func runsShowRun(ctx context.Context, runID string) error {
	archive, closeArchive, err := openRunsArchive()
	if err != nil {
		return err
	}
	defer closeArchive()

	rec, err := archive.LoadRun(ctx, runID)
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("run %s not found", runID)
	}
	if err != nil {
		return err
	}

	fmt.Println(ux.Title(fmt.Sprintf("%s (%s, %s)", rec.RunID, rec.Model, rec.Order)))
	fmt.Println(ux.Solution(rec.Found, len(rec.Path)))
	fmt.Println(ux.Statline(fmt.Sprintf("expanded %d in %s", rec.Expanded, rec.Duration)))
	if len(rec.Path) > 0 {
		fmt.Print(ux.PathView("", rec.Path, nil))
	}
	return nil
}
