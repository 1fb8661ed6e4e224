package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ghalymotors/showroom/internal/server"
	"github.com/ghalymotors/showroom/pkg/selection"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the showroom web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")
		authUser, _ := cmd.Flags().GetString("auth-user")
		authPass, _ := cmd.Flags().GetString("auth-pass")

		persistCompare := viper.GetBool("storage.persist_compare")
		if cmd.Flags().Changed("persist-compare") {
			persistCompare, _ = cmd.Flags().GetBool("persist-compare")
		}

		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			return err
		}

		db, err := openStateDB()
		if err != nil {
			return err
		}
		defer db.Close()

		opts := selection.Options{
			Store:          db,
			PersistCompare: persistCompare,
			Catalog:        cat,
			Favorites:      db.LoadFavorites(),
		}
		if persistCompare {
			opts.Compare = db.LoadCompare()
		}
		state := selection.New(opts)

		srv := server.New(cat, state, db, server.Config{
			Username:   authUser,
			Password:   authPass,
			Company:    viper.GetString("business.name"),
			Currency:   viper.GetString("business.currency"),
			BaseURL:    viper.GetString("business.base_url"),
			Makes:      viper.GetStringSlice("filters.makes"),
			BodyStyles: viper.GetStringSlice("filters.body_styles"),
			Features: server.Features{
				Comparison:  viper.GetBool("features.comparison"),
				Favorites:   viper.GetBool("features.favorites"),
				Sharing:     viper.GetBool("features.sharing"),
				TestDrive:   viper.GetBool("features.test_drive"),
				ContactForm: viper.GetBool("features.contact_form"),
			},
		})

		return srv.Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", ":8080", "HTTP listen address")
	serveCmd.Flags().String("auth-user", "", "Basic auth username (empty disables auth)")
	serveCmd.Flags().String("auth-pass", "", "Basic auth password")
	serveCmd.Flags().Bool("persist-compare", false, "Persist the compare list across restarts (overrides storage.persist_compare)")
}
