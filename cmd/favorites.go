package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghalymotors/showroom/pkg/catalog"
	"github.com/ghalymotors/showroom/pkg/selection"
)

// favoritesCmd represents the favorites command
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage your saved vehicles",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved vehicles",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStateDB()
		if err != nil {
			return err
		}
		defer db.Close()

		ids := db.LoadFavorites()
		if len(ids) == 0 {
			fmt.Println("No saved vehicles.")
			return nil
		}

		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			// The catalog may be unreachable; the ids are still useful.
			fmt.Printf("Saved vehicle ids: %v (catalog unavailable: %v)\n", ids, err)
			return nil
		}

		currency := viper.GetString("business.currency")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tMAKE\tMODEL\tYEAR\tPRICE\t")
		for _, id := range ids {
			v, ok := cat.ByID(id)
			if !ok {
				fmt.Fprintf(w, "%d\t(no longer in catalog)\t\t\t\t\n", id)
				continue
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t\n",
				v.ID, v.Make, v.Model, v.Year, catalog.FormatPrice(v.Price, currency))
		}
		w.Flush()
		return nil
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <vehicle-id>",
	Short: "Save or unsave a vehicle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid vehicle id: %s", args[0])
		}

		lock, err := lockStateDB()
		if err != nil {
			return err
		}
		defer lock.Unlock()

		db, err := openStateDB()
		if err != nil {
			return err
		}
		defer db.Close()

		state := selection.New(selection.Options{
			Store:     db,
			Favorites: db.LoadFavorites(),
		})
		if state.ToggleFavorite(id) {
			fmt.Println("Added to favorites")
		} else {
			fmt.Println("Removed from favorites")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesToggleCmd)
}
