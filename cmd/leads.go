package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ghalymotors/showroom/pkg/leads"
)

// leadsCmd represents the leads command
var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List captured test-drive and contact requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")

		db, err := openStateDB()
		if err != nil {
			return err
		}
		defer db.Close()

		all, err := db.ListLeads(cmd.Context(), kind)
		if err != nil {
			return err
		}
		if len(all) == 0 {
			fmt.Println("No leads captured yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tKIND\tVEHICLE\tNAME\tEMAIL\tPHONE\tWHEN\t")
		for _, l := range all {
			when := l.Message
			if l.Kind == leads.KindTestDrive {
				when = l.Date + " " + l.Time
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t\n",
				l.ID, l.Kind, l.VehicleID, l.Name, l.Email, l.Phone, when)
		}
		w.Flush()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(leadsCmd)
	leadsCmd.Flags().String("kind", "", "Filter by lead kind: test_drive or contact")
}
