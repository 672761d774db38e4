// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notescan/internal/index"
	"github.com/pdiddy/notescan/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Full-text search over indexed page text",
	Long: `Search queries the local page index with FTS5 full-text search and prints
the matching pages with provenance back to the conversion run and source
image. Pages enter the index when convert runs with --index.`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("index-dir", "index", "directory containing the page index database")
	searchCmd.Flags().Int("max-results", 0, "maximum number of results (default 20)")
	searchCmd.Flags().Bool("json", false, "emit results as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a search query")
	}
	query := strings.Join(args, " ")

	indexDir, _ := cmd.Flags().GetString("index-dir")
	maxResults, _ := cmd.Flags().GetInt("max-results")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	store, err := index.NewStore(types.IndexConfig{IndexDir: indexDir, MaxResults: maxResults})
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(context.Background(), query, maxResults)
	if err != nil {
		return err
	}

	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []index.SearchResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-20s  %-6s  %-20s  %s\n",
		"Rank", "Document", "Page", "Image", "Content")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))

	for i, r := range results {
		content := strings.ReplaceAll(r.Content, "\n", " ")
		if len(content) > 40 {
			content = content[:37] + "..."
		}
		doc := r.Document
		if len(doc) > 20 {
			doc = doc[:17] + "..."
		}
		image := r.Image
		if len(image) > 20 {
			image = image[:17] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-20s  %-6d  %-20s  %s\n",
			i+1, doc, r.Ordinal, image, content)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}
