package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/junctionforest/internal/config"
	"github.com/katalvlaran/junctionforest/junction"
)

func addBudgetFlag(cmd *cobra.Command) {
	cmd.Flags().IntP("budget", "n", config.DefaultBudget, "number of closest pairs to join")
}

func newSolveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print both answers: the cluster product and the closing-edge X product",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.readPoints(args)
			if err != nil {
				return err
			}

			part1, err := junction.Cluster(ps, a.cfg.Budget, a.options()...)
			if err != nil {
				return fmt.Errorf("part 1: %w", err)
			}
			part2, err := junction.ClosingProduct(ps, a.options()...)
			if err != nil {
				return fmt.Errorf("part 2: %w", err)
			}

			fmt.Fprintf(a.stdout, "part 1: %d\n", part1)
			fmt.Fprintf(a.stdout, "part 2: %d\n", part2)

			return nil
		},
	}
	addBudgetFlag(cmd)

	return cmd
}

func newClusterCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster [file]",
		Short: "Join the closest pairs and report the resulting groups",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.readPoints(args)
			if err != nil {
				return err
			}

			sets, err := junction.Partition(ps, a.cfg.Budget, a.options()...)
			if err != nil {
				return err
			}
			product, err := junction.TopProduct(sets)
			if err != nil {
				return err
			}
			sizes := make([]string, len(sets))
			for i, s := range sets {
				sizes[i] = fmt.Sprint(len(s))
			}

			fmt.Fprintf(a.stdout, "points: %d\n", ps.Len())
			fmt.Fprintf(a.stdout, "joins: %d\n", a.cfg.Budget)
			fmt.Fprintf(a.stdout, "clusters: %d\n", len(sets))
			fmt.Fprintf(a.stdout, "sizes: %s\n", strings.Join(sizes, " "))
			fmt.Fprintf(a.stdout, "product: %d\n", product)

			return nil
		},
	}
	addBudgetFlag(cmd)

	return cmd
}

func newConnectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "connect [file]",
		Short: "Report the edge that makes all points one connected group",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ps, err := a.readPoints(args)
			if err != nil {
				return err
			}

			i, j, err := junction.Connect(ps, a.options()...)
			if err != nil {
				return err
			}
			product, err := junction.XProduct(ps, i, j)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "closing edge: %d-%d\n", i, j)
			fmt.Fprintf(a.stdout, "a: %s\n", ps.At(i))
			fmt.Fprintf(a.stdout, "b: %s\n", ps.At(j))
			fmt.Fprintf(a.stdout, "product: %d\n", product)

			return nil
		},
	}
}
