package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/anagrank/internal/model"
	"github.com/ppiankov/anagrank/internal/pipeline"
	"github.com/ppiankov/anagrank/internal/report"
)

const version = "0.1.0"

var (
	cfgFile string
	verbose bool
	noCache bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "anagrank <words_file> <dictionary_file>",
	Short: "Rank every weighted anagram arrangement of a word list",
	Long: `anagrank replaces each input word with every dictionary anagram of it,
produces every ordering of each resulting word set, and prints all of them
ranked by total dictionary weight (ties broken alphabetically).

The words file holds whitespace-separated words. The dictionary file holds
one "<word>,<weight>" entry per line.

Example:
  anagrank words.txt dict.txt
  anagrank words.txt dict.txt --workers 8 --limit 20
  anagrank words.txt dict.txt --format json`,
	Args:          exactFiles,
	RunE:          runRank,
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
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "anagrank v%s\n", version)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.anagrank/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging and run statistics on stderr")

	// Ranking flags
	rootCmd.Flags().Int("workers", 1, "concurrent ranking workers (1 ranks sequentially)")
	rootCmd.Flags().Int("chunk-size", 256, "combinations per ranking job")
	rootCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable anagram resolution memo")

	// Output flags
	rootCmd.Flags().String("format", model.FormatText, "output format (text, json, yaml)")
	rootCmd.Flags().Int("limit", 0, "print only the first N ranked lines (0 prints all)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("ranking.workers", rootCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("ranking.chunk_size", rootCmd.Flags().Lookup("chunk-size"))
	_ = viper.BindPFlag("output.format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output.limit", rootCmd.Flags().Lookup("limit"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	defaults := model.DefaultConfig()
	viper.SetDefault("ranking.workers", defaults.Ranking.Workers)
	viper.SetDefault("ranking.chunk_size", defaults.Ranking.ChunkSize)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("output.limit", defaults.Output.Limit)
	viper.SetDefault("output.verbose", defaults.Output.Verbose)

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			newLogger(rootCmd.ErrOrStderr(), verbose).Warn("cannot find home directory", "error", err)
			return
		}

		viper.AddConfigPath(home + "/.anagrank")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match ANAGRANK_*
	viper.SetEnvPrefix("ANAGRANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		newLogger(rootCmd.ErrOrStderr(), verbose).Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// exactFiles requires the two positional file arguments
func exactFiles(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("incorrect number of arguments\nUsage: %s <words_file> <dictionary_file>", cmd.Root().Name())
	}
	return nil
}

// loadConfig merges defaults, config file, environment and flags
func loadConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Ranking.Workers = viper.GetInt("ranking.workers")
	cfg.Ranking.ChunkSize = viper.GetInt("ranking.chunk_size")
	cfg.Cache.Enabled = viper.GetBool("cache.enabled") && !noCache
	cfg.Output.Format = viper.GetString("output.format")
	cfg.Output.Limit = viper.GetInt("output.limit")
	cfg.Output.Verbose = viper.GetBool("output.verbose")
	return cfg
}

// newLogger writes text logs to stderr, at debug level when verbose
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runRank(cmd *cobra.Command, args []string) error {
	wordsPath, dictPath := args[0], args[1]

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := loadConfig()
	logger := newLogger(cmd.ErrOrStderr(), cfg.Output.Verbose)

	renderer, err := report.NewRenderer(cfg.Output.Format, cfg.Output.Limit)
	if err != nil {
		return err
	}

	logger.Debug("starting run",
		"words_file", wordsPath,
		"dictionary_file", dictPath,
		"workers", cfg.Ranking.Workers,
		"cache", cfg.Cache.Enabled)

	rep, err := pipeline.NewPipeline(cfg, logger).Run(ctx, wordsPath, dictPath)
	if err != nil {
		return err
	}

	return renderer.Render(cmd.OutOrStdout(), rep)
}
