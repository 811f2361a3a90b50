package main

import (
	"github.com/spf13/cobra"
)

var (
	flagConfig        string
	flagOrder         string
	flagEvents        bool
	flagEventsJSON    bool
	flagTrace         bool
	flagMetricsListen string
	flagStore         string
	flagMySQLDSN      string
	flagMaxStates     int
	flagNoColor       bool
	flagExplain       bool

	flagPairs     int
	flagShowTree  bool
	flagTreeDepth int

	flagCost       string
	flagTravelOnly bool

	flagRunsModel string

	rootCmd = &cobra.Command{
		Use:   "statespace",
		Short: "Solve reachability puzzles over explicit state spaces",
		Long: `Statespace explores the state graph of a puzzle model with
breadth-first, depth-first or cost-guided search and reports the path
from the start to the goal, with optional event streaming, Prometheus
metrics, OpenTelemetry spans and a persistent run archive.`,
	}

	crossingCmd = &cobra.Command{
		Use:   "crossing",
		Short: "Ferry the wolf, goat and cabbage across the river",
		Run:   runCrossing,
	}

	frogsCmd = &cobra.Command{
		Use:   "frogs",
		Short: "March two facing lines of leaping frogs past each other",
		Run:   runFrogs,
	}

	familyCmd = &cobra.Command{
		Use:   "family",
		Short: "Escort the family, the policeman and the prisoner across",
		Long: `The Japanese river crossing: eight people and a two-seat boat.
The check is always cost guided; pick the cost function with --cost.`,
		Run: runFamily,
	}

	runsCmd = &cobra.Command{
		Use:   "runs",
		Short: "Browse the archived solution runs",
	}

	runsListCmd = &cobra.Command{
		Use:   "list",
		Short: "List archived runs, newest first",
		Run:   runRunsList,
	}

	runsShowCmd = &cobra.Command{
		Use:   "show [run-id]",
		Short: "Print one archived run with its solution path",
		Args:  cobra.ExactArgs(1),
		Run:   runRunsShow,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "YAML config file (default statespace.yaml when present)")
	pf.StringVarP(&flagOrder, "order", "o", "bfs", "search order: bfs, dfs or cost")
	pf.BoolVar(&flagEvents, "events", false, "stream search events to stderr")
	pf.BoolVar(&flagEventsJSON, "events-json", false, "stream search events to stderr as JSON")
	pf.BoolVar(&flagTrace, "trace", false, "export an OpenTelemetry span per event to stdout")
	pf.StringVar(&flagMetricsListen, "metrics-listen", "", "serve Prometheus metrics on this address and wait for interrupt")
	pf.StringVar(&flagStore, "store", "", "run archive: memory, mysql, or a sqlite file path")
	pf.StringVar(&flagMySQLDSN, "mysql-dsn", "", "MySQL DSN for --store mysql (or STATESPACE_MYSQL_DSN)")
	pf.IntVar(&flagMaxStates, "max-states", 0, "abort after expanding this many states (0 = unbounded)")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable styled output")
	pf.BoolVar(&flagExplain, "explain", false, "caption each step with the move that produced it")

	frogsCmd.Flags().IntVar(&flagPairs, "pairs", 2, "frog pairs per side")
	frogsCmd.Flags().BoolVar(&flagShowTree, "show-tree", false, "print the successor tree instead of solving")
	frogsCmd.Flags().IntVar(&flagTreeDepth, "tree-depth", 0, "limit the successor tree depth (0 = unlimited)")

	familyCmd.Flags().StringVar(&flagCost, "cost", "depth", "cost model: depth, noise or noise-younger")
	familyCmd.Flags().BoolVar(&flagTravelOnly, "travel-only", false, "print only the states with the boat mid-river")

	runsListCmd.Flags().StringVar(&flagRunsModel, "model", "", "only list runs of this model")

	runsCmd.AddCommand(runsListCmd, runsShowCmd)
	rootCmd.AddCommand(crossingCmd, frogsCmd, familyCmd, runsCmd)
}
