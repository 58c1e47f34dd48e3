// Package diagrams renders Mermaid (.mmd) files to image files by shelling
// out to mermaid-cli (mmdc). Rendering is strictly sequential: one blocking
// subprocess call per output, no retries, no timeout.
package diagrams

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"hfenv/logging"
)

var log *logrus.Logger

func init() {
	log = logging.GetLogger()
}

const defaultBin = "mmdc"

// Formats supported by mermaid-cli for our purposes.
var SupportedFormats = []string{"pdf", "png", "svg"}

// Generator renders Mermaid files into OutputDir.
type Generator struct {
	// Bin is the mermaid-cli executable name. Empty means "mmdc".
	Bin        string
	OutputDir  string
	Background string
}

// NewGenerator creates a Generator writing to outputDir with the given
// background color (transparent, white, ...).
func NewGenerator(outputDir, background string) *Generator {
	return &Generator{
		OutputDir:  outputDir,
		Background: background,
	}
}

func (g *Generator) bin() string {
	if g.Bin == "" {
		return defaultBin
	}
	return g.Bin
}

// CheckCLI reports whether mermaid-cli is installed and runnable.
func (g *Generator) CheckCLI(ctx context.Context) bool {
	return exec.CommandContext(ctx, g.bin(), "--version").Run() == nil
}

// FindFiles returns all .mmd files under dir, recursively.
func FindFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".mmd" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return files, nil
}

// Generate renders one file into one format and returns the output path. The
// output directory is created if absent.
func (g *Generator) Generate(ctx context.Context, inputFile, format string) (string, error) {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	base := filepath.Base(inputFile)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	outputFile := filepath.Join(g.OutputDir, stem+"."+format)

	cmd := exec.CommandContext(ctx, g.bin(),
		"-i", inputFile,
		"-o", outputFile,
		"-b", g.Background,
	)
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("render %s as %s: %w: %s", base, format, err, strings.TrimSpace(string(out)))
	}
	return outputFile, nil
}

// GenerateAll renders every file in every format, one subprocess at a time,
// and returns the success count and the total number of attempts. Individual
// failures are logged and counted, never fatal.
func (g *Generator) GenerateAll(ctx context.Context, files, formats []string) (success, total int) {
	total = len(files) * len(formats)
	for _, file := range files {
		for _, format := range formats {
			outputFile, err := g.Generate(ctx, file, format)
			if err != nil {
				log.Errorf("Failed to generate diagram: %v", err)
				continue
			}
			log.Infof("Generated %s", outputFile)
			success++
		}
	}
	return success, total
}
