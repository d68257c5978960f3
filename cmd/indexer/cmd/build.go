package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"fuzzytrie"
	"fuzzytrie/internal/dictionary"
)

var (
	dictionaryPath string
	mode           string
	fromText       bool
	analyzerName   string
	watch          bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a trie or Aho-Corasick automaton from a dictionary file",
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&dictionaryPath, "dictionary", "", "path to a label\\tsequence dictionary file (required)")
	buildCmd.Flags().StringVar(&mode, "mode", "trie", "structure to build: trie or aho")
	buildCmd.Flags().BoolVar(&fromText, "from-text", false, "tokenize --dictionary as a text corpus instead of parsing label\\tsequence lines")
	buildCmd.Flags().StringVar(&analyzerName, "analyzer", "standard", "analyzer to use with --from-text: standard, whitespace, or keyword")
	buildCmd.Flags().BoolVar(&watch, "watch", false, "rebuild whenever --dictionary changes, using fsnotify")
	_ = buildCmd.MarkFlagRequired("dictionary")
}

func runBuild(cmd *cobra.Command, args []string) error {
	if err := buildOnce(); err != nil {
		return err
	}
	if !watch {
		return nil
	}
	return watchAndRebuild(dictionaryPath)
}

func loadEntries() ([]dictionary.Entry, error) {
	f, err := os.Open(dictionaryPath)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	if !fromText {
		return dictionary.Load(f)
	}

	buf, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}
	terms, err := tokenize(analyzerName, string(buf))
	if err != nil {
		return nil, fmt.Errorf("tokenizing corpus: %w", err)
	}
	return dictionary.FromTerms(terms), nil
}

func buildOnce() error {
	started := time.Now()
	entries, err := loadEntries()
	if err != nil {
		return err
	}

	pairs := make([]fuzzytrie.Pair[byte, string], len(entries))
	for i, e := range entries {
		pairs[i] = fuzzytrie.Pair[byte, string]{Sequence: e.Sequence, Label: e.Label}
	}

	switch strings.ToLower(mode) {
	case "trie":
		tr := fuzzytrie.NewFromPairs(pairs)
		logger.Info("built trie", "size", tr.Size(), "empty", tr.Empty(), "elapsed", time.Since(started))
	case "aho":
		ac := fuzzytrie.NewAhoCorasickFromPairs(pairs)
		logger.Info("built aho-corasick automaton", "size", ac.Size(), "empty", ac.Empty(), "elapsed", time.Since(started))
	default:
		return fmt.Errorf("unknown --mode %q: want trie or aho", mode)
	}
	return nil
}

func watchAndRebuild(path string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	logger.Info("watching for changes", "dir", dir, "file", path)

	const debounce = 100 * time.Millisecond
	var lastRebuild time.Time
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(lastRebuild) < debounce {
				continue
			}
			lastRebuild = time.Now()
			if err := buildOnce(); err != nil {
				logger.Error("rebuild failed", "error", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
