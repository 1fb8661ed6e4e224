package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghalymotors/showroom/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string

const (
	LOGO = `     _
 ___| |__   _____      ___ __ ___   ___  _ __ ___
/ __| '_ \ / _ \ \ /\ / / '__/ _ \ / _ \| '_ ' _ \
\__ \ | | | (_) \ V  V /| | | (_) | (_) | | | | | |
|___/_| |_|\___/ \_/\_/ |_|  \___/ \___/|_| |_| |_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "showroom",
	Short: "A vehicle inventory storefront for Ghaly Motors.",
	Long: LOGO + `showroom loads the dealership's vehicle catalog and lets you browse,
filter, sort, favorite and compare vehicles from the command line or a web UI.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.showroom.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("catalog", "c", "", "Catalog URL (overrides catalog.url from config)")
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".showroom")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.showroom.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default values for all keys
	viper.SetDefault("catalog.url", "")
	viper.SetDefault("storage.path", "")
	viper.SetDefault("storage.persist_compare", false)
	viper.SetDefault("business.name", "Ghaly Motors")
	viper.SetDefault("business.currency", "L.E")
	viper.SetDefault("business.base_url", "https://ghalymotors.com/inventory")
	viper.SetDefault("filters.makes", []string{"BMW", "Mercedes-Benz", "Land Rover", "BYD"})
	viper.SetDefault("filters.body_styles", []string{"SUV", "Sedan", "Truck", "Coupe"})
	viper.SetDefault("features.comparison", true)
	viper.SetDefault("features.favorites", true)
	viper.SetDefault("features.sharing", true)
	viper.SetDefault("features.test_drive", true)
	viper.SetDefault("features.contact_form", true)

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}

// catalogURL resolves the catalog resource from the flag or config.
func catalogURL() (string, error) {
	if url, _ := rootCmd.PersistentFlags().GetString("catalog"); url != "" {
		return url, nil
	}
	if url := viper.GetString("catalog.url"); url != "" {
		return url, nil
	}
	return "", fmt.Errorf("no catalog URL configured: set catalog.url in %s or pass --catalog", viper.ConfigFileUsed())
}
