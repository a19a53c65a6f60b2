package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ytget/sample-gallery/internal/search"
	"github.com/ytget/sample-gallery/internal/view"
)

// Output formats of the search command
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// searchResult is one ranked entry as printed by the search command
type searchResult struct {
	Rank       int      `json:"rank" yaml:"rank"`
	Score      int      `json:"score" yaml:"score"`
	Name       string   `json:"name" yaml:"name"`
	Tags       []string `json:"tags" yaml:"tags"`
	SampleLink string   `json:"sampleLink" yaml:"sampleLink"`
	CodeLink   string   `json:"codeLink,omitempty" yaml:"codeLink,omitempty"`
}

func newSearchCmd(c *cli) *cobra.Command {
	var (
		limit  int
		format string
	)

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Print catalog entries ranked by relevance to a query",
		Long: `Ranks the catalog against the query the same way the gallery search
field does. Without a query every entry is printed in catalog order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.loadCatalog(cmd.Context())
			if err != nil {
				return err
			}

			matches := search.Rank(entries, strings.Join(args, " "))
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}

			results := make([]searchResult, 0, len(matches))
			for i, match := range matches {
				results = append(results, searchResult{
					Rank:       i + 1,
					Score:      match.Score,
					Name:       match.Entry.GetDisplayName(),
					Tags:       match.Entry.Tags,
					SampleLink: match.Entry.SampleLink,
					CodeLink:   match.Entry.CodeLink,
				})
			}

			return writeResults(cmd.OutOrStdout(), format, strings.Join(args, " "), results)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print at most n results (0 prints all)")
	cmd.Flags().StringVarP(&format, "output", "o", formatTable, "Output format: table, json, yaml")

	return cmd
}

func writeResults(w io.Writer, format, query string, results []searchResult) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)

	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()

	case formatTable:
		if len(results) == 0 {
			if search.NormalizeQuery(query) == "" {
				_, err := fmt.Fprintln(w, view.EmptyNoSamples)
				return err
			}
			_, err := fmt.Fprintf(w, view.EmptyNoMatches+"\n", query)
			return err
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("#", "SCORE", "NAME", "TAGS", "SAMPLE")
		for _, r := range results {
			t.Row(strconv.Itoa(r.Rank), strconv.Itoa(r.Score), r.Name, strings.Join(r.Tags, ", "), r.SampleLink)
		}
		_, err := fmt.Fprintln(w, t.Render())
		return err

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
