package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate item catalogs",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a catalog file, or the embedded catalog when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		cat, err := loadCatalog(path)
		if err != nil {
			return err
		}
		return printCatalogSummary(cmd.OutOrStdout(), path, cat)
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list [file]",
	Short: "List catalog items",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		cat, err := loadCatalog(path)
		if err != nil {
			return err
		}
		return printCatalogItems(cmd.OutOrStdout(), cat)
	},
}

var catalogSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for catalog files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(catalog.Schema()); err != nil {
			return fmt.Errorf("failed to encode schema: %w", err)
		}
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogSchemaCmd)
}

func printCatalogSummary(w io.Writer, path string, cat *catalog.Catalog) error {
	source := path
	if source == "" {
		source = "embedded catalog"
	}

	starting := cat.StartingItems()
	if _, err := fmt.Fprintf(w, "%s: %d items, %d starting items\n", source, cat.Len(), len(starting)); err != nil {
		return err
	}
	for _, item := range starting {
		if _, err := fmt.Fprintf(w, "  starting: %d %s\n", item.Code, item.Name); err != nil {
			return err
		}
	}
	return nil
}

func printCatalogItems(w io.Writer, cat *catalog.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tCATEGORY\tNAME\tSTARTING")
	for _, code := range cat.Codes() {
		item, _ := cat.Lookup(code)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%v\n", item.Code, item.Category, item.Name, item.IsStartingItem)
	}
	return tw.Flush()
}
