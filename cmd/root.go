package cmd

import (
	"fmt"
	"os"

	"chyp8/config"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chyp8 <scale> <delay> <rom>",
	Short: "Chip-8 emulator using Go",
	Long: `A Chip-8 emulator that runs unmodified CHIP-8 ROM images, an interpreted
language originally written for the COSMAC VIP / Telmac 8 bit systems.

  scale   integer display scale factor (window is 64*scale x 32*scale)
  delay   minimum milliseconds between two cycles
  rom     path to the ROM image`,
	Args: cobra.ExactArgs(3),
	RunE: Start,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chyp8.yaml)")
	rootCmd.PersistentFlags().String(config.KeyLog, "", "append log output to this file instead of stdout")

	rootCmd.Flags().IntVar(&headless, "headless", 0, "run this many cycles without a window, then print the screen")
	rootCmd.Flags().Bool(config.KeyBeep, false, "sound the buzzer while the sound timer is running")
	rootCmd.Flags().Bool(config.KeyTrace, false, "log the registers after every cycle")
	rootCmd.Flags().Bool(config.KeyVSync, false, "wait for vertical sync when drawing")

	config.SetDefaults(viper.GetViper())
	for _, key := range []string{config.KeyBeep, config.KeyTrace, config.KeyVSync} {
		cobra.CheckErr(viper.BindPFlag(key, rootCmd.Flags().Lookup(key)))
	}
	cobra.CheckErr(viper.BindPFlag(config.KeyLog, rootCmd.PersistentFlags().Lookup(config.KeyLog)))

	rootCmd.AddCommand(disasmCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".chyp8" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chyp8")
	}

	viper.SetEnvPrefix("chyp8")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		cobra.CheckErr(err)
	}
}
