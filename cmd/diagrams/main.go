// Diagrams renders Mermaid .mmd files to PDF/PNG/SVG with mermaid-cli.
//
// Usage:
//
//	diagrams
//	diagrams -i docs/mermaid -o docs/diagrams -f pdf -f png
//	diagrams --file docs/mermaid/flow.mmd
//
// Requires mermaid-cli on PATH: npm install -g @mermaid-js/mermaid-cli
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"hfenv/diagrams"
)

func main() {
	var (
		inputDir   string
		outputDir  string
		formats    []string
		background string
		singleFile string
	)

	root := &cobra.Command{
		Use:          "diagrams",
		Short:        "Generate diagrams from Mermaid files",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), inputDir, outputDir, formats, background, singleFile)
		},
	}

	f := root.Flags()
	f.StringVarP(&inputDir, "input-dir", "i", "docs/mermaid", "Directory containing .mmd files")
	f.StringVarP(&outputDir, "output-dir", "o", "docs/diagrams", "Directory to save generated diagrams")
	f.StringSliceVarP(&formats, "formats", "f", []string{"pdf"}, "Output formats (pdf, png, svg)")
	f.StringVarP(&background, "background", "b", "transparent", "Background color (transparent, white, ...)")
	f.StringVar(&singleFile, "file", "", "Process a single file instead of a directory")

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, inputDir, outputDir string, formats []string, background, singleFile string) error {
	for _, format := range formats {
		if !slices.Contains(diagrams.SupportedFormats, format) {
			return fmt.Errorf("unsupported format %q (choose from pdf, png, svg)", format)
		}
	}

	gen := diagrams.NewGenerator(outputDir, background)
	if !gen.CheckCLI(ctx) {
		return errors.New("mermaid-cli (mmdc) not found; install it with: npm install -g @mermaid-js/mermaid-cli")
	}

	var files []string
	if singleFile != "" {
		if _, err := os.Stat(singleFile); err != nil {
			return fmt.Errorf("file not found: %s", singleFile)
		}
		files = []string{singleFile}
	} else {
		if _, err := os.Stat(inputDir); os.IsNotExist(err) {
			fmt.Printf("Creating directory: %s\n", inputDir)
			if err := os.MkdirAll(inputDir, 0o755); err != nil {
				return fmt.Errorf("create input dir: %w", err)
			}
		}
		var err error
		files, err = diagrams.FindFiles(inputDir)
		if err != nil {
			return err
		}
	}

	if len(files) == 0 {
		fmt.Printf("No .mmd files found in %s\n", inputDir)
		return nil
	}

	fmt.Printf("Found %d Mermaid file(s)\n", len(files))
	success, total := gen.GenerateAll(ctx, files, formats)
	fmt.Printf("Generated %d/%d diagram(s)\n", success, total)

	if success == 0 {
		return errors.New("no diagrams were generated")
	}
	return nil
}
