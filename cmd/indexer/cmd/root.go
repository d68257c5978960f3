package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
	Level: parseLogLevel(getEnv("FUZZYTRIE_LOG_LEVEL", "info")),
}))

var rootCmd = &cobra.Command{
	Use:   "indexer",
	Short: "Build a fuzzytrie dictionary from a source file",
	Long:  "Loads a label/sequence dictionary (or tokenizes a text corpus) and reports the resulting trie or Aho-Corasick automaton's size, optionally rebuilding on change.",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
