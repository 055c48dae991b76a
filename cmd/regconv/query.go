// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/regconv/internal/regdb"
	"github.com/mesh-intelligence/regconv/pkg/types"
)

var queryCmd = &cobra.Command{
	Use:   "query [search terms]",
	Short: "Search a built database by citation or full text",
	Long: `Query runs full-text search and citation lookups against a built ojk.db
database, the same queries the offline viewer issues. Combine a search
string with --regulation and --pasal filters, or use the filters alone
for citation lookup. --list prints the regulations in the database.`,
	RunE: runQuery,
}

func runQuery(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = viper.GetString("query.database_path")
	}
	if dbPath == "" {
		dbPath = regdb.DatabaseFile
	}

	store, err := regdb.Open(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	jsonOutput, _ := cmd.Flags().GetBool("json")

	if list, _ := cmd.Flags().GetBool("list"); list {
		regs, err := store.Regulations(context.Background())
		if err != nil {
			return err
		}
		return formatRegulations(regs, jsonOutput)
	}

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search terms, --regulation, or --pasal")
	}

	results, err := store.Search(context.Background(), opts)
	if err != nil {
		return err
	}
	return formatResults(results, jsonOutput)
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) regdb.QueryOptions {
	regulation, _ := cmd.Flags().GetString("regulation")
	pasal, _ := cmd.Flags().GetInt("pasal")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return regdb.QueryOptions{
		Query:        strings.Join(args, " "),
		RegulationID: regulation,
		Pasal:        pasal,
		MaxResults:   maxResults,
	}
}

func formatResults(results []regdb.QueryResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-24s  %-10s  %s\n", "Regulation", "Citation", "Text")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range results {
		citation := fmt.Sprintf("Pasal %d", r.Pasal)
		if r.Ayat != "" {
			citation = fmt.Sprintf("Pasal %d (%s)", r.Pasal, r.Ayat)
		}
		text := strings.Join(strings.Fields(r.Text), " ")
		if len(text) > 60 {
			text = text[:57] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-24s  %-10s  %s\n", r.RegulationNumber, citation, text)
	}
	return nil
}

func formatRegulations(regs []types.Regulation, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(regs)
	}

	if len(regs) == 0 {
		fmt.Println("No regulations found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-28s  %-6s  %-20s  %-6s  %-8s  %s\n",
		"ID", "Type", "Number", "Year", "Status", "Title")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for _, r := range regs {
		title := r.Title
		if len(title) > 40 {
			title = title[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-28s  %-6s  %-20s  %-6d  %-8s  %s\n",
			r.ID, r.Type, r.Number, r.Year, r.Status, title)
	}
	return nil
}

func init() {
	queryCmd.Flags().String("db", "", "path to the database (default: ojk.db or query.database_path from config)")
	queryCmd.Flags().String("regulation", "", "filter by regulation identifier")
	queryCmd.Flags().Int("pasal", 0, "filter by pasal number")
	queryCmd.Flags().Int("max-results", 20, "maximum number of results")
	queryCmd.Flags().Bool("json", false, "output results as JSON")
	queryCmd.Flags().Bool("list", false, "list the regulations in the database")

	rootCmd.AddCommand(queryCmd)
}
