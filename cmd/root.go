// Package cmd is for command line interactions with the fermi application
package cmd

import (
	"github.com/avilella/fermi/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "fermi",
	Short: `Simplify unitig graphs: remove low coverage dead ends and merge
unambiguous paths into longer unitigs`,
	Version:       "0.1.0",
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logrus.Fatalf("%v", err)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// settings is an optional settings file (that overrides the defaults)
	RootCmd.PersistentFlags().StringP("settings", "s", "", "settings file <YAML>")
	RootCmd.PersistentFlags().IntP("verbose", "v", config.DefaultVerbosity, "verbosity: 1 errors, 2 warnings, 3 progress, 4 debug")
	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in the settings file, if one was passed, and the environment
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if settings := viper.GetString("settings"); settings != "" {
		viper.SetConfigFile(settings)
		if err := viper.ReadInConfig(); err != nil {
			logrus.Fatalf("failed to read settings file %s: %v", settings, err)
		}
	}
}
