package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bazar.GO/catalog"
	"bazar.GO/config"
)

var validatePath string

// catalogStoreForCLI loads the configured catalog document, exiting on
// failure (CLI contexts want the error now, not a degraded store).
func catalogStoreForCLI() *catalog.Store {
	config.LoadAppConfig()
	path := validatePath
	if path == "" {
		path = config.AppConfig.CatalogPath
	}
	store := catalog.NewStore()
	if err := store.LoadFile(path); err != nil {
		fmt.Printf("Failed to load catalog: %v\n", err)
		os.Exit(1)
	}
	return store
}

var catalogValidateCmd = &cobra.Command{
	Use:   "catalog:validate",
	Short: "Load the catalog document and report structure and gaps",
	Run: func(cmd *cobra.Command, args []string) {
		store := catalogStoreForCLI()
		doc, _ := store.Document()
		idx, _ := store.Index()

		directItems := 0
		missingNames := 0
		for _, cat := range doc.Categories {
			directItems += len(cat.Items)
			for _, sub := range cat.Subcategories {
				for _, item := range sub.Items {
					if item.Name.IsZero() {
						missingNames++
					}
				}
			}
		}

		fmt.Printf(`
=== Catalog Report ===
Categories:       %d
Subcategories:    %d
Indexed products: %d
Direct items:     %d (not searchable: attached to a category without a subcategory)
Missing names:    %d
`, len(doc.Categories), len(idx.AllSubcategories), len(idx.AllProducts), directItems, missingNames)

		seen := make(map[string]bool)
		for _, p := range idx.AllProducts {
			if seen[p.ID] {
				fmt.Printf("  [warn] duplicate product id: %s\n", p.ID)
			}
			seen[p.ID] = true
		}
	},
}

func init() {
	catalogValidateCmd.Flags().StringVarP(&validatePath, "file", "f", "", "Catalog JSON path (defaults to CATALOG_PATH)")
	Register(catalogValidateCmd)
}
