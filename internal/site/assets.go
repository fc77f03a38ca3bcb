package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
)

// WriteSyntaxStylesheets generates the light and dark syntax-highlighting
// stylesheets from the named chroma styles. The theme controller swaps
// the two via their disabled flags, so both are always emitted.
func WriteSyntaxStylesheets(outputDir, lightStyle, darkStyle string) error {
	if err := writeSyntaxStylesheet(filepath.Join(outputDir, "syntax-light.css"), lightStyle); err != nil {
		return err
	}
	return writeSyntaxStylesheet(filepath.Join(outputDir, "syntax-dark.css"), darkStyle)
}

func writeSyntaxStylesheet(path, styleName string) error {
	// styles.Get falls back to a default style for unknown names.
	style := styles.Get(styleName)

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf bytes.Buffer
	if err := formatter.WriteCSS(&buf, style); err != nil {
		return fmt.Errorf("rendering style %q: %w", styleName, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
