package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "orbitledger",
	Short: "Spaceflight dataset reconciliation and reporting",
	Long: "Orbitledger joins a table of astronaut trips against a table of missions, " +
		"derives per-astronaut and per-trip statistics, validates the dataset's " +
		"consistency, and cross-checks the derived first-flight timeline against an " +
		"independently sourced dataset.",
	RunE: runRun,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .orbitledger.yaml)")
	rootCmd.PersistentFlags().String("trips", "", "trips CSV file")
	rootCmd.PersistentFlags().String("missions", "", "missions CSV file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".orbitledger")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ORBITLEDGER")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
