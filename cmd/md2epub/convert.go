package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	md2epub "github.com/alnah/go-md2epub"
	"github.com/alnah/go-md2epub/internal/assets"
	"github.com/alnah/go-md2epub/internal/config"
	"github.com/alnah/go-md2epub/internal/fileutil"
	"github.com/alnah/go-md2epub/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrReadMarkdown     = errors.New("failed to read markdown file")
	ErrWriteEPUB        = errors.New("failed to write epub file")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// filePermissions is the mode for the written archive.
const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

// run loads configuration, reads the source, converts it, and writes the
// archive. It is separated from main for testability.
func run(flags *cliFlags, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w\n%s", ErrNoInput, usage)
	}
	inputPath := args[0]

	if err := validateMarkdownExtension(inputPath); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return fmt.Errorf("%w%s", err, hints.ForConfigNotFound())
			}
			return err
		}
		cfg = loaded
	}

	source, err := readMarkdownFile(inputPath)
	if err != nil {
		return err
	}

	style := flags.style
	if style == "" {
		style = cfg.CSS.Style
	}

	conv, err := md2epub.NewConverter(md2epub.WithStyle(style))
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) {
			return fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.ListStyles()))
		}
		return err
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Converting %s...\n", inputPath)
	}

	result, err := conv.Convert(context.Background(), md2epub.Input{
		Markdown:   source,
		SourceName: filepath.Base(inputPath),
		Metadata:   resolveMetadata(flags, cfg),
	})
	if err != nil {
		return err
	}

	outputPath := resolveOutputPath(inputPath, flags.output, cfg.Output.DefaultDir)
	if err := os.WriteFile(outputPath, result.EPUB, filePermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteEPUB, err, hints.ForOutputWrite())
	}

	fmt.Printf("Created %s (%d bytes)\n", outputPath, len(result.EPUB))
	return nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown
// extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// readMarkdownFile reads the content of a Markdown file.
func readMarkdownFile(path string) (string, error) {
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %v%s", ErrReadMarkdown, err, hints.ForSourceNotFound())
		}
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(content), nil
}

// resolveMetadata merges flag overrides over config values.
// Returns nil when nothing is overridden so library defaults apply.
func resolveMetadata(flags *cliFlags, cfg *config.Config) *md2epub.Metadata {
	m := md2epub.Metadata{
		Title:    cfg.Metadata.Title,
		Creator:  cfg.Metadata.Creator,
		Language: cfg.Metadata.Language,
	}
	if flags.title != "" {
		m.Title = flags.title
	}
	if flags.creator != "" {
		m.Creator = flags.creator
	}
	if flags.language != "" {
		m.Language = flags.language
	}
	if m == (md2epub.Metadata{}) {
		return nil
	}
	return &m
}

// resolveOutputPath picks the destination: the explicit flag wins, then
// the config default directory joined with the derived name, then the
// input path with its extension replaced.
func resolveOutputPath(inputPath, output, defaultDir string) string {
	if output != "" {
		return output
	}
	derived := fileutil.ReplaceExt(inputPath, ".epub")
	if defaultDir != "" {
		return filepath.Join(defaultDir, filepath.Base(derived))
	}
	return derived
}
