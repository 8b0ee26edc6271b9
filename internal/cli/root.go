package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/calsigns/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "calsigns v0.1.0"

var (
	cfgFile    string
	verbose    bool
	format     string
	systems    []string
	tablesFile string

	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "calsigns",
	Short: "Calsigns - calendar sign classification",
	Long: `Calsigns tells which sign of several traditional calendars applies to a date.

Supported systems:
  traditional_astrological_zodiac   element and modality attributes
  japan_zen_signs
  native_american_signs             birthstone attribute
  egyptian_signs
  celtic_signs

Signs come from fixed day/month tables. There is no astronomy involved.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if viper.GetBool("verbose") {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
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
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.calsigns/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "o", "text", "output format (text, json, yaml)")
	rootCmd.PersistentFlags().StringSliceVar(&systems, "systems", model.DefaultSystems, "systems to classify, in display order")
	rootCmd.PersistentFlags().StringVar(&tablesFile, "tables", "", "YAML file overriding built-in sign tables")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("systems", rootCmd.PersistentFlags().Lookup("systems"))
	_ = viper.BindPFlag("tables_file", rootCmd.PersistentFlags().Lookup("tables"))

	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	setDefaults(model.DefaultConfig())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		viper.AddConfigPath(home + "/.calsigns")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match CALSIGNS_*
	viper.SetEnvPrefix("CALSIGNS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func setDefaults(cfg *model.Config) {
	viper.SetDefault("host.entry_id", cfg.Host.EntryID)
	viper.SetDefault("host.device_name", cfg.Host.DeviceName)
	viper.SetDefault("poll.interval", cfg.Poll.Interval)
	viper.SetDefault("poll.burst", cfg.Poll.Burst)
	viper.SetDefault("cache.ttl", cfg.Cache.TTL)
	viper.SetDefault("concurrency.workers", cfg.Concurrency.Workers)
}

// loadConfig assembles the effective configuration from flags, env, file and defaults
func loadConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	cfg.Host.EntryID = viper.GetString("host.entry_id")
	if name := viper.GetString("host.device_name"); name != "" {
		cfg.Host.DeviceName = name
	}
	if s := viper.GetStringSlice("systems"); len(s) > 0 {
		cfg.Systems = s
	}
	cfg.TablesFile = viper.GetString("tables_file")
	cfg.Poll.Interval = viper.GetDuration("poll.interval")
	cfg.Poll.Burst = viper.GetInt("poll.burst")
	cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	cfg.Output.Format = viper.GetString("output.format")
	cfg.Output.Verbose = viper.GetBool("verbose") || viper.GetBool("output.verbose")
	cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")

	switch cfg.Output.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", cfg.Output.Format)
	}
	if cfg.Poll.Interval <= 0 {
		return nil, fmt.Errorf("poll interval must be positive, got %v", cfg.Poll.Interval)
	}

	return cfg, nil
}
