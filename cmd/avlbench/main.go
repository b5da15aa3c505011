package main

import (
	"fmt"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/g-m-twostay/avltrees/Trees"
	"github.com/g-m-twostay/avltrees/Trees/compare"
	"github.com/g-m-twostay/avltrees/Trees/sbtree"
	"github.com/g-m-twostay/avltrees/Trees/workload"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath, logLevel string
	var config *Config

	root := &cobra.Command{
		Use:          "avlbench",
		Short:        "Compare how tall balanced and unbalanced search trees grow",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if config, err = LoadConfig(configPath); err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				config.LogLevel = logLevel
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logrus level")

	var size int
	var seed int64
	var workloads, containers []string
	override := func(cmd *cobra.Command) error {
		if cmd.Flags().Changed("size") {
			config.Size = size
		}
		if cmd.Flags().Changed("seed") {
			config.Seed = seed
		}
		if cmd.Flags().Changed("workload") {
			config.Workloads = workloads
		}
		if cmd.Flags().Changed("container") {
			config.Containers = containers
		}
		if err := config.Validate(); err != nil {
			return err
		}
		level, _ := logrus.ParseLevel(config.LogLevel)
		log.SetLevel(level)
		log.SetOutput(cmd.ErrOrStderr())
		return nil
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Insert every workload into every container and report levels and heights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := override(cmd); err != nil {
				return err
			}
			return runCompare(cmd, config)
		},
	}
	run.Flags().IntVar(&size, "size", 0, "number of keys per workload")
	run.Flags().Int64Var(&seed, "seed", 0, "seed of the random workload, 0 for time based")
	run.Flags().StringSliceVar(&workloads, "workload", nil, "workloads: "+fmt.Sprint(workload.Names))
	run.Flags().StringSliceVar(&containers, "container", nil, "containers: "+fmt.Sprint(compare.Names()))

	var sortContainer string
	sortCmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort a random workload through a tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			containers = []string{sortContainer}
			if err := override(cmd); err != nil {
				return err
			}
			return runSort(cmd, config, sortContainer)
		},
	}
	sortCmd.Flags().IntVar(&size, "size", 0, "number of keys")
	sortCmd.Flags().Int64Var(&seed, "seed", 0, "seed of the random workload, 0 for time based")
	sortCmd.Flags().StringVar(&sortContainer, "container", compare.NameBST, "one of bst, bst-iter, avl, avl-iter, sbtree")

	list := &cobra.Command{
		Use:   "containers",
		Short: "List the container names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range compare.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	root.AddCommand(run, sortCmd, list)
	return root
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("random seed %d", seed)
	return rand.New(rand.NewSource(seed))
}

func runCompare(cmd *cobra.Command, config *Config) error {
	r := newRand(config.Seed)
	bar := progressbar.NewOptions(config.Size*len(config.Workloads)*len(config.Containers),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("inserting"),
		progressbar.OptionClearOnFinish(),
	)
	runner := compare.Runner{Log: log, Progress: func(n int) { _ = bar.Add(n) }}
	for _, w := range config.Workloads {
		keys, err := workload.Get(w, config.Size, r)
		if err != nil {
			return err
		}
		results, err := runner.Run(config.Containers, w, keys)
		if err != nil {
			return err
		}
		_ = bar.Clear()
		printReport(cmd.OutOrStdout(), w, results)
	}
	return bar.Finish()
}

var sortTrees = map[string]func() Trees.Tree[int]{
	compare.NameBST:     func() Trees.Tree[int] { return Trees.NewBST[int]() },
	compare.NameBSTIter: func() Trees.Tree[int] { return Trees.NewBST[int]().Iterative() },
	compare.NameAVL:     func() Trees.Tree[int] { return Trees.NewAVL[int]() },
	compare.NameAVLIter: func() Trees.Tree[int] { return Trees.NewAVL[int]().Iterative() },
	compare.NameSBTree:  func() Trees.Tree[int] { return sbtree.MakeSBTree[int, uint]() },
}

func runSort(cmd *cobra.Command, config *Config, name string) error {
	newTree, ok := sortTrees[name]
	if !ok {
		return errors.Errorf("cannot sort with %q", name)
	}
	keys := workload.Random(config.Size, newRand(config.Seed))
	start := time.Now()
	sorted := Trees.Sort(keys, newTree())
	log.WithFields(logrus.Fields{"container": name, "size": len(sorted), "elapsed": time.Since(start)}).Info("sorted")
	fmt.Fprintf(cmd.OutOrStdout(), "sorted %d keys with %s: ascending=%v\n", len(sorted), name, slices.IsSorted(sorted))
	return nil
}
