package commands

import (
	"github.com/spf13/cobra"

	"github.com/vsinha/stockmgr/pkg/domain/entities"
	domainservices "github.com/vsinha/stockmgr/pkg/domain/services"
)

func (a *app) addCommand() *cobra.Command {
	var category, expiry, popularity string

	cmd := &cobra.Command{
		Use:   "add <name> <quantity>",
		Short: "Add an item, replacing any item with the same name",
		Long: `Add an item. Quantity and popularity keep only their digits, so
"900 grams" is stored as 900.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			quantity, err := domainservices.ExtractNumber(args[1])
			if err != nil {
				return err
			}
			score, err := domainservices.ExtractNumber(popularity)
			if err != nil {
				return err
			}

			record := entities.ItemRecord{
				Name:       entities.ItemName(args[0]),
				Quantity:   entities.Quantity(quantity),
				Category:   category,
				Expiry:     expiry,
				Popularity: entities.Popularity(score),
			}
			if err := a.service.AddItem(record); err != nil {
				return err
			}

			a.renderer.Message("Item '%s' added successfully!", record.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Item category")
	cmd.Flags().StringVarP(&expiry, "expiry", "e", "", "Expiry date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&popularity, "popularity", "p", "0", "Popularity score")

	return cmd
}

func (a *app) removeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.service.RemoveItem(entities.ItemName(args[0]))
			if err != nil {
				return err
			}

			a.renderer.Message("Item '%s' removed successfully!", removed.Name)
			return nil
		},
	}
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"stock"},
		Short:   "Show every item in the inventory",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.renderer.Items(a.service.ListItems())
		},
	}
}
