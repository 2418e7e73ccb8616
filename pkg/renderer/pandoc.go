package renderer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// DefaultPDFEngine handles CJK text without extra LaTeX packages.
const DefaultPDFEngine = "lualatex"

// PDFOptions tune the pandoc invocation. Every field is optional.
type PDFOptions struct {
	TemplatePath string
	ClassPath    string
	Engine       string
	MainFont     string
}

// pandocArgs builds the pandoc argument list.
func pandocArgs(markdownPath, outputPath string, opts PDFOptions) (args []string) {
	engine := opts.Engine
	if engine == "" {
		engine = DefaultPDFEngine
	}

	args = []string{
		"-f", "markdown",
		"-o", outputPath,
		"--pdf-engine=" + engine,
	}
	if opts.TemplatePath != "" {
		args = append(args, "--template", opts.TemplatePath)
	}
	if opts.MainFont != "" {
		args = append(args, "-V", "CJKmainfont="+opts.MainFont)
	}
	args = append(args, markdownPath)
	return args
}

// RenderPDF converts markdown to PDF using pandoc.
func RenderPDF(ctx context.Context, markdownPath, outputPath string, opts PDFOptions) (err error) {
	err = checkPandocExists(ctx)
	if err != nil {
		return err
	}

	paths := []string{markdownPath}
	for _, p := range []string{opts.TemplatePath, opts.ClassPath} {
		if p != "" {
			paths = append(paths, p)
		}
	}
	err = validateFiles(paths...)
	if err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	//nolint:gosec // arguments are built from local paths, not shell input
	cmd := exec.CommandContext(ctx, "pandoc", pandocArgs(markdownPath, outputPath, opts)...)

	cmd.Env = os.Environ()
	if opts.ClassPath != "" {
		// TEXINPUTS must include the directory holding the .cls file.
		texinputs := filepath.Dir(opts.ClassPath) + ":" + os.Getenv("TEXINPUTS")
		cmd.Env = append(cmd.Env, "TEXINPUTS="+texinputs)
	}

	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return err
	}

	return err
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists(ctx context.Context) (err error) {
	err = exec.CommandContext(ctx, "pandoc", "--version").Run()
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to generate PDFs)")
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}

// WriteMarkdown writes markdown content to a file.
func WriteMarkdown(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write markdown file: %s", outputPath)
		return err
	}

	return err
}

// CleanupMarkdown removes markdown files after PDF generation.
func CleanupMarkdown(paths ...string) (err error) {
	for _, path := range paths {
		err = os.Remove(path)
		if err != nil {
			err = errors.Wrapf(err, "failed to remove markdown file: %s", path)
			return err
		}
	}
	return err
}
