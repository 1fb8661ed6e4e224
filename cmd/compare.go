package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghalymotors/showroom/pkg/catalog"
	"github.com/ghalymotors/showroom/pkg/selection"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Manage the side-by-side comparison list (up to 3 vehicles)",
}

var compareToggleCmd = &cobra.Command{
	Use:   "toggle <vehicle-id>",
	Short: "Add a vehicle to the comparison, or remove it if already selected",
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

		// The CLI always works on the persisted list: a session-only
		// compare list would be gone before the next invocation.
		state := selection.New(selection.Options{
			Store:          db,
			PersistCompare: true,
			Compare:        db.LoadCompare(),
		})

		added, err := state.ToggleCompare(id)
		if errors.Is(err, selection.ErrCompareLimit) {
			fmt.Println("You can compare up to 3 vehicles")
			return nil
		}
		if added {
			fmt.Println("Added to comparison")
		} else {
			fmt.Println("Removed from comparison")
		}
		fmt.Printf("Comparison list: %v\n", state.CompareIDs())
		return nil
	},
}

var compareClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the comparison list",
	RunE: func(cmd *cobra.Command, args []string) error {
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
			Store:          db,
			PersistCompare: true,
			Compare:        db.LoadCompare(),
		})
		state.ClearCompare()
		fmt.Println("Comparison cleared")
		return nil
	},
}

var compareShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the comparison matrix for the selected vehicles",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openStateDB()
		if err != nil {
			return err
		}
		defer db.Close()

		ids := db.LoadCompare()
		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		var vehicles []catalog.Vehicle
		for _, id := range ids {
			if v, ok := cat.ByID(id); ok {
				vehicles = append(vehicles, v)
			}
		}

		matrix, err := selection.BuildMatrix(vehicles)
		if errors.Is(err, selection.ErrTooFewVehicles) {
			fmt.Println("Select at least 2 vehicles to compare")
			return nil
		}

		currency := viper.GetString("business.currency")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)

		header := "FEATURE\t"
		priceRow := "Price\t"
		for _, v := range matrix.Vehicles {
			header += fmt.Sprintf("%s %s\t", v.Make, v.Model)
			priceRow += catalog.FormatPrice(v.Price, currency) + "\t"
		}
		fmt.Fprintln(w, header)
		fmt.Fprintln(w, priceRow)
		for _, row := range matrix.Rows {
			line := row.Label + "\t"
			for _, val := range row.Values {
				line += val + "\t"
			}
			fmt.Fprintln(w, line)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.AddCommand(compareToggleCmd)
	compareCmd.AddCommand(compareClearCmd)
	compareCmd.AddCommand(compareShowCmd)
}
