package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bazar.GO/config"
	imagesService "bazar.GO/service/images"
)

var (
	imagesDryRun bool
	imagesWrite  bool
)

var imagesCmd = &cobra.Command{
	Use:   "images:reorganize",
	Short: "Lay out catalog images per subcategory, resize and thumbnail them",
	Run: func(cmd *cobra.Command, args []string) {
		store := catalogStoreForCLI()
		doc, _ := store.Document()

		svc := &imagesService.Service{
			StaticDir: config.AppConfig.StaticDir,
			DryRun:    imagesDryRun,
		}
		res, err := svc.Run(doc)
		if err != nil {
			fmt.Printf("Image pass failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf(`
=== Image Report ===
Moved:    %d
Resized:  %d
Thumbs:   %d
Missing:  %d
Warnings: %d
`, res.Moved, res.Resized, res.Thumbs, len(res.Missing), len(res.Warnings))
		for _, m := range res.Missing {
			fmt.Printf("  [missing] %s\n", m)
		}

		// Image paths in the document were rewritten; write them back only
		// when asked, never on a dry run.
		if imagesWrite && !imagesDryRun {
			data, err := json.MarshalIndent(doc, "", "    ")
			if err != nil {
				fmt.Printf("Failed to encode catalog: %v\n", err)
				os.Exit(1)
			}
			if err := os.WriteFile(config.AppConfig.CatalogPath, data, 0o644); err != nil {
				fmt.Printf("Failed to write catalog: %v\n", err)
				os.Exit(1)
			}
			fmt.Println("Catalog document updated.")
		}
	},
}

func init() {
	imagesCmd.Flags().BoolVar(&imagesDryRun, "dry-run", false, "Report without touching files")
	imagesCmd.Flags().BoolVar(&imagesWrite, "write", false, "Write rewritten image paths back to the catalog document")
	Register(imagesCmd)
}
