package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/hangman/internal/config"
	"github.com/robalobadob/hangman/internal/scores"
	"github.com/robalobadob/hangman/internal/ui"
	"github.com/robalobadob/hangman/internal/words"
)

const Version = "0.1.0"

// globalFlags override the loaded configuration.
type globalFlags struct {
	configPath string
	logLevel   string
	wordsFile  string
	dbPath     string
	noColor    bool
}

var (
	flags globalFlags
	cfg   *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "hangman",
	Short:         "Hangman - the classic word guessing game",
	Long:          "Guess the hidden word one letter at a time before the gallows are complete.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		if flags.logLevel != "" {
			c.LogLevel = flags.logLevel
		}
		if flags.wordsFile != "" {
			c.WordsFile = flags.wordsFile
		}
		if flags.dbPath != "" {
			c.DBPath = flags.dbPath
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c
		setupLogging(c)
		log.Debug().
			Str("words", fmt.Sprint(words.CorpusFor(c.WordsFile))).
			Str("db", c.DBPath).
			Str("highscores", c.HighScoresFile).
			Msg("config loaded")
		return nil
	},
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML config file (default $HANGMAN_CONFIG)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug|info|warn|error)")
	pf.StringVar(&flags.wordsFile, "words", "", "Word list file, one word per line (default: built-in list)")
	pf.StringVar(&flags.dbPath, "db", "", "SQLite results database (default: results kept in memory)")
	pf.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newPlayCmd(),
		newWordsCmd(),
		newScoresCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Color().Bad("error: "+err.Error()))
		os.Exit(1)
	}
}

// setupLogging routes logs to stderr so the game screen on stdout stays readable.
func setupLogging(c *config.Config) {
	if lvl, err := c.Level(); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()
}

func theme() ui.Theme {
	if flags.noColor || os.Getenv("NO_COLOR") != "" {
		return ui.Plain()
	}
	return ui.Color()
}

func newSource(c *config.Config) *words.Source {
	return words.NewSource(words.CorpusFor(c.WordsFile), c.Policy())
}

// openStore returns the SQLite store when a database is configured, otherwise a memory store.
func openStore(ctx context.Context, c *config.Config) (scores.Store, error) {
	if c.DBPath == "" {
		return scores.NewMemoryStore(), nil
	}
	st, err := scores.OpenSQLite(ctx, c.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}
	return st, nil
}
