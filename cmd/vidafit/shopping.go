// ABOUTME: CLI commands for the market list derived from the current plan.
// ABOUTME: list/add/remove manage items; export renders the printable document.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KarenBrasil/vida-fit/internal/metrics"
	"github.com/KarenBrasil/vida-fit/internal/models"
	"github.com/KarenBrasil/vida-fit/internal/storage"
)

var (
	shoppingWeeks    int
	shoppingAmount   string
	shoppingCategory string
	shoppingOutput   string
)

var shoppingCmd = &cobra.Command{
	Use:     "shopping",
	Aliases: []string{"market"},
	Short:   "Market list from the current plan",
	Long: `The market list unions the food items of every meal in the current
nutrition plan (daily logs are not consulted) with your custom items,
dropping duplicate names case-insensitively and grouping by category.

The --weeks multiplier (1, 2 or 4) is display-only: amounts are free text
and are never recomputed.`,
}

func validWeeks(w int) error {
	if w != 1 && w != 2 && w != 4 {
		return fmt.Errorf("invalid --weeks %d (1, 2 or 4)", w)
	}
	return nil
}

var shoppingListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the grouped market list",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		if err := validWeeks(shoppingWeeks); err != nil {
			return err
		}
		groups := metrics.ShoppingList(trk.NutritionPlan(), trk.ShoppingItems())
		if len(groups) == 0 {
			fmt.Println("Nothing to buy — generate a nutrition plan or add items.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, g := range groups {
			color.New(color.Bold).Printf("%s\n", g.Category)
			for _, item := range g.Items {
				fmt.Printf("  %s  %s %s\n", item.Name, faint.Sprint(item.Amount), faint.Sprintf("(x%d)", shoppingWeeks))
			}
		}
		return nil
	},
}

var shoppingAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom item to the market list",
	Long: `Add an item that is not part of the generated plan.

Example:
  vidafit shopping add "Creatina 300g" --amount "1 pote" --category Suplementos`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		if args[0] == "" {
			return fmt.Errorf("item name must not be empty")
		}
		item := models.FoodItem{
			Name:     args[0],
			Amount:   shoppingAmount,
			Category: shoppingCategory,
		}
		if err := trk.AddShoppingItem(item); err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}
		color.Green("✓ Added %s", item.Name)
		return nil
	},
}

var shoppingRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a custom item from the market list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		if err := trk.RemoveShoppingItem(args[0]); err != nil {
			return fmt.Errorf("failed to remove item: %w", err)
		}
		color.Green("✓ Removed %s", args[0])
		return nil
	},
}

var shoppingExportCmd = &cobra.Command{
	Use:   "export [item-names...]",
	Short: "Render the printable market list",
	Long: `Render the market list as a static printable HTML document. Name
items to export only that checked subset; with no names, everything is
included. One-way transform: nothing is persisted.

Examples:
  vidafit shopping export -o lista.html
  vidafit shopping export Frango Arroz --weeks 2 -o lista.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireProfile(); err != nil {
			return err
		}
		if err := validWeeks(shoppingWeeks); err != nil {
			return err
		}
		groups := metrics.ShoppingList(trk.NutritionPlan(), trk.ShoppingItems())
		groups = metrics.FilterShopping(groups, args)
		if len(groups) == 0 {
			return fmt.Errorf("nothing to export")
		}
		doc := storage.ShoppingListHTML(groups, shoppingWeeks)

		if shoppingOutput == "" {
			fmt.Print(string(doc))
			return nil
		}
		if err := os.WriteFile(shoppingOutput, doc, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		color.Green("✓ Exported to %s", shoppingOutput)
		return nil
	},
}

func init() {
	shoppingCmd.PersistentFlags().IntVar(&shoppingWeeks, "weeks", 1, "duration multiplier: 1, 2 or 4")
	shoppingAddCmd.Flags().StringVar(&shoppingAmount, "amount", "", "free-text quantity")
	shoppingAddCmd.Flags().StringVar(&shoppingCategory, "category", "", "category for grouping")
	shoppingExportCmd.Flags().StringVarP(&shoppingOutput, "output", "o", "", "write to file instead of stdout")

	shoppingCmd.AddCommand(shoppingListCmd)
	shoppingCmd.AddCommand(shoppingAddCmd)
	shoppingCmd.AddCommand(shoppingRemoveCmd)
	shoppingCmd.AddCommand(shoppingExportCmd)
	rootCmd.AddCommand(shoppingCmd)
}
