package commands

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/stockmgr/pkg/domain/entities"
)

func (a *app) restockCommand() *cobra.Command {
	var threshold int64

	cmd := &cobra.Command{
		Use:   "restock",
		Short: "List items below a quantity threshold, lowest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("threshold") {
				threshold = a.cfg.RestockThreshold
			}
			return a.renderer.Restock(a.service.RestockSuggestion(entities.Quantity(threshold)))
		},
	}

	cmd.Flags().Int64VarP(&threshold, "threshold", "t", 0, "Minimum quantity threshold (default from config)")
	return cmd
}

func (a *app) expiryCommand() *cobra.Command {
	var (
		days  int
		today string
	)

	cmd := &cobra.Command{
		Use:   "expiry",
		Short: "List items expiring within a number of days, most urgent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref, err := parseToday(today)
			if err != nil {
				return err
			}
			a.today = ref

			if !cmd.Flags().Changed("days") {
				days = a.cfg.ExpiryDays
			}
			return a.renderer.Expiry(days, a.service.ExpiryAlert(days))
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 0, "Days ahead to check (default from config)")
	cmd.Flags().StringVar(&today, "today", "", "Reference date YYYY-MM-DD (default: current date)")
	return cmd
}

func (a *app) demandCommand() *cobra.Command {
	var topN int

	cmd := &cobra.Command{
		Use:   "demand",
		Short: "List the most popular items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("top") {
				topN = a.cfg.TopN
			}
			empty := len(a.service.ListItems()) == 0
			return a.renderer.Demand(topN, a.service.HighDemand(topN), empty)
		},
	}

	cmd.Flags().IntVarP(&topN, "top", "n", 0, "Number of items to show (default from config)")
	return cmd
}

func (a *app) categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Count items per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.Categories(a.service.CategorySummary())
		},
	}
}
