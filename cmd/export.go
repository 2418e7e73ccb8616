package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/nikogura/resume-builder/pkg/config"
	"github.com/nikogura/resume-builder/pkg/export"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportFormat string

//nolint:gochecknoglobals // Cobra boilerplate
var exportOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var exportS3 bool

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export <form-file>",
	Short: "Export the résumé as Excel or CSV",
	Long: `Submit a form file, classify its answers, and write the résumé as an Excel
workbook (履歴書 and 職務経歴書 sheets) or a single CSV table.

The file goes to the output directory, or with --s3 to the configured bucket.

Example:
  resume-builder export me.yaml
  resume-builder export me.yaml --format csv --output-dir ~/Documents
  resume-builder export me.yaml --s3`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportFormat, "format", string(export.FormatXLSX), "Export format: xlsx or csv")
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", "", "Output directory (default from config)")
	exportCmd.Flags().BoolVar(&exportS3, "s3", false, "Upload to the configured S3 bucket instead of writing locally")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	var format export.Format
	format, err = export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var dest export.Destination
	dest, err = exportDestination(ctx, cfg)
	if err != nil {
		return err
	}

	_, record, err := submitForm(args[0], time.Now().Year())
	if err != nil {
		return err
	}

	var artifact export.Artifact
	artifact, err = export.NewExporter().Export(ctx, record, format)
	if err != nil {
		err = errors.Wrap(err, "failed to export résumé")
		return err
	}

	var location string
	location, err = dest.Save(ctx, artifact)
	if err != nil {
		return err
	}
	logger.Debug().Str("format", string(format)).Int("bytes", len(artifact.Data)).Str("location", location).Msg("export saved")

	fmt.Printf("Exported: %s\n", location)
	return err
}

func exportDestination(ctx context.Context, cfg config.Config) (dest export.Destination, err error) {
	if !exportS3 {
		dest = export.DirDestination{Dir: getOutputDir(exportOutputDir, cfg.Defaults.OutputDir)}
		return dest, err
	}

	err = cfg.ValidateS3()
	if err != nil {
		return dest, err
	}

	var s3Dest *export.S3Destination
	s3Dest, err = export.NewS3Destination(ctx, cfg.S3Options())
	if err != nil {
		return dest, err
	}
	dest = s3Dest
	return dest, err
}
