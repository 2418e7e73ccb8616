package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/export"
	"github.com/nikogura/resume-builder/pkg/renderer"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var previewOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var previewPDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var previewKeepMarkdown bool

//nolint:gochecknoglobals // Cobra boilerplate
var previewSummaryFromForm bool

//nolint:gochecknoglobals // Cobra boilerplate
var previewCmd = &cobra.Command{
	Use:   "preview <form-file>",
	Short: "Render the 履歴書 and 職務経歴書 as markdown or PDF",
	Long: `Submit a form file, classify its answers, and write both documents to one
markdown file in the output directory. With --pdf the markdown is rendered
through pandoc as well.

Example:
  resume-builder preview me.yaml
  resume-builder preview me.yaml --pdf --keep-markdown=false`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewOutputDir, "output-dir", "", "Output directory (default from config)")
	previewCmd.Flags().BoolVar(&previewPDF, "pdf", false, "Render a PDF with pandoc")
	previewCmd.Flags().BoolVar(&previewKeepMarkdown, "keep-markdown", true, "Keep the markdown file after PDF generation")
	previewCmd.Flags().BoolVar(&previewSummaryFromForm, "summary-from-form", true, "Use the form's summary as the 自己PR section")
}

func runPreview(cmd *cobra.Command, args []string) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	now := time.Now()
	form, record, err := submitForm(args[0], now.Year())
	if err != nil {
		return err
	}

	opts := renderer.PreviewOptions{}
	if previewSummaryFromForm {
		opts.Summary = form.Summary
	}
	preview := renderer.RenderPreview(record, opts)

	outDir := getOutputDir(previewOutputDir, cfg.Defaults.OutputDir)
	base := filepath.Join(outDir, export.BaseName(record.Name, now))
	markdownPath := base + ".md"

	err = renderer.WriteMarkdown(preview.Markdown(), markdownPath)
	if err != nil {
		return err
	}
	logger.Debug().Str("path", markdownPath).Msg("markdown written")

	if !previewPDF {
		fmt.Printf("Markdown: %s\n", markdownPath)
		return err
	}

	pdfPath := base + ".pdf"
	err = renderer.RenderPDF(ctx, markdownPath, pdfPath, pdfOptions(cfg))
	if err != nil {
		return err
	}

	if !previewKeepMarkdown {
		err = renderer.CleanupMarkdown(markdownPath)
		if err != nil {
			return err
		}
	} else {
		fmt.Printf("Markdown: %s\n", markdownPath)
	}
	fmt.Printf("PDF: %s\n", pdfPath)

	return err
}

func pdfOptions(cfg config.Config) (opts renderer.PDFOptions) {
	opts = renderer.PDFOptions{
		TemplatePath: cfg.Pandoc.TemplatePath,
		ClassPath:    cfg.Pandoc.ClassFile,
		Engine:       cfg.Pandoc.Engine,
		MainFont:     cfg.Pandoc.MainFont,
	}
	return opts
}
