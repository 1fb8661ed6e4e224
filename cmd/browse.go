package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghalymotors/showroom/pkg/catalog"
	"github.com/ghalymotors/showroom/pkg/selection"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Fetch the catalog and print the matching vehicles",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		makeFilter, _ := cmd.Flags().GetString("make")
		styleFilter, _ := cmd.Flags().GetString("style")
		sortKey, _ := cmd.Flags().GetString("sort")

		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		db, err := openStateDB()
		if err != nil {
			return err
		}
		defer db.Close()

		state := selection.New(selection.Options{
			Catalog:   cat,
			Favorites: db.LoadFavorites(),
		})
		state.SetSearchText(search)
		if makeFilter != "" {
			state.ToggleMakeFilter(makeFilter)
		}
		if styleFilter != "" {
			state.ToggleBodyStyleFilter(styleFilter)
		}
		state.SetSortKey(sortKey)

		visible := selection.VisibleList(cat, state)
		if len(visible) == 0 {
			fmt.Println("No vehicles match the current filters.")
			return nil
		}

		currency := viper.GetString("business.currency")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tMAKE\tMODEL\tYEAR\tMILEAGE\tPRICE\tSTYLE\tFAV\t")
		for _, v := range visible {
			fav := ""
			if state.Favorited(v.ID) {
				fav = "*"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\t%s\t%s\t\n",
				v.ID, v.Make, v.Model, v.Year,
				catalog.FormatNumber(v.Mileage),
				catalog.FormatPrice(v.Price, currency),
				catalog.DeriveBodyStyle(v.Type), fav)
		}
		w.Flush()

		fmt.Printf("\n%d vehicles available\n", len(visible))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
	browseCmd.Flags().StringP("search", "s", "", "Search make, model or year")
	browseCmd.Flags().StringP("make", "m", "", "Filter by make (exact match)")
	browseCmd.Flags().String("style", "", "Filter by body style (SUV, Sedan, Truck, Coupe)")
	browseCmd.Flags().String("sort", "popularity", "Sort key: popularity, price-asc, price-desc, fuel-economy, reliability")
}
