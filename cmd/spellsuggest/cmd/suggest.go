package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"fuzzytrie"
	"fuzzytrie/internal/dictionary"
)

var (
	dictionaryPath string
	distanceLimit  int
	prefixMode     bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <query>",
	Short: "Print dictionary entries within --limit edit distance of query",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().StringVar(&dictionaryPath, "dictionary", "", "path to a label\\tsequence dictionary file (required)")
	suggestCmd.Flags().IntVar(&distanceLimit, "limit", 2, "maximum edit distance to report")
	suggestCmd.Flags().BoolVar(&prefixMode, "prefix", false, "match query as a prefix instead of a whole word")
	_ = suggestCmd.MarkFlagRequired("dictionary")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	query := []byte(args[0])

	f, err := os.Open(dictionaryPath)
	if err != nil {
		return fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	entries, err := dictionary.Load(f)
	if err != nil {
		return err
	}

	pairs := make([]fuzzytrie.Pair[byte, string], len(entries))
	for i, e := range entries {
		pairs[i] = fuzzytrie.Pair[byte, string]{Sequence: e.Sequence, Label: e.Label}
	}
	tr := fuzzytrie.NewFromPairs(pairs)

	var sink fuzzytrie.SliceSink[fuzzytrie.Match[string, int]]
	if prefixMode {
		fuzzytrie.FindPrefixLevenshteinDefault(tr, query, distanceLimit, &sink)
	} else {
		fuzzytrie.FindLevenshteinDefault(tr, query, distanceLimit, &sink)
	}

	sort.Slice(sink.Items, func(i, j int) bool {
		if sink.Items[i].Distance != sink.Items[j].Distance {
			return sink.Items[i].Distance < sink.Items[j].Distance
		}
		return sink.Items[i].Label < sink.Items[j].Label
	})

	logger.Info("suggest", "query", args[0], "limit", distanceLimit, "prefix", prefixMode, "matches", len(sink.Items))
	for _, m := range sink.Items {
		fmt.Printf("%d\t%s\n", m.Distance, m.Label)
	}
	return nil
}
