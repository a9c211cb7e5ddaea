package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is overridden at build time with -ldflags "-X ...cli.version=..."
var version = "v0.1.0"

var (
	cfgFile string
	verbose bool
	baseDir string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "civcards",
	Short: "civcards - Age of Empires II civilization data extraction and infocards",
	Long: `civcards reads a local aoe2techtree checkout, extracts per-civilization
data (description, classified bonuses with icons, unique units and
technologies, team bonus) into JSON, and renders infocard images from it.

Typical workflow:
  civcards extract          # data/*.json + icons/
  civcards render           # ru/<name>/<name>.png`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("civcards %s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./config.yaml, then $HOME/.civcards/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "directory relative paths are resolved against")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("paths.base_dir", rootCmd.PersistentFlags().Lookup("base-dir"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".civcards"))
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// CIVCARDS_OUTPUT_FORMAT overrides output.format
	viper.SetEnvPrefix("CIVCARDS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	switch {
	case err == nil:
		if verbose {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	case cfgFile != "":
		fmt.Fprintf(os.Stderr, "%s Could not read config file %s: %v\n", warnMark(), cfgFile, err)
	}
}
