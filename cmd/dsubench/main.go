// Command dsubench benchmarks the disjointset engines across union/find
// workload mixes and renders the timings as a grouped bar chart.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/papapumpkin/disjointset/internal/workload"
)

var rootCmd = &cobra.Command{
	Use:   "dsubench",
	Short: "Benchmark the disjointset engines",
	Long: `Dsubench replays reproducible union/find workloads against the dense and
sparse disjoint-set engines and reports how each engine's running time
shifts as the mix moves from union-heavy to find-heavy.

Workloads are described by a TOML suite file; run "dsubench init" to
write the default suite and edit from there.`,
	RunE: runBench,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .dsubench.yaml)")
	rootCmd.Flags().String("scenarios", "", "TOML suite file describing the scenarios to run")
	rootCmd.Flags().Int("n", 0, "override the suite's element count")
	rootCmd.Flags().Int("ops", 0, "override the suite's operation count per scenario")
	rootCmd.Flags().Int64("seed", 0, "override the suite's random seed")
	rootCmd.Flags().String("out", "", "append results to a JSONL file")
	rootCmd.Flags().Bool("watch", false, "re-run whenever the suite file changes")
	rootCmd.Flags().Bool("no-color", false, "disable colored output")

	initSuiteCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default benchmark suite to disk",
		RunE:  runInit,
	}
	initSuiteCmd.Flags().String("scenarios", "", "path for the suite file (default "+workload.DefaultSuitePath+")")
	rootCmd.AddCommand(initSuiteCmd)
}

// runInit writes the default suite so users have a file to edit. It
// refuses to clobber an existing one.
func runInit(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("scenarios")
	if path == "" {
		path = workload.DefaultSuitePath
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := workload.SaveSuite(path, workload.DefaultSuite()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}
