// Package export renders report datasets into portable file formats.
package export

import "fmt"

// Dataset is a titled table ready for rendering.
type Dataset struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// Renderer turns a dataset into file content.
type Renderer interface {
	Render(data Dataset) ([]byte, error)
	Ext() string
}

// ByFormat resolves a renderer for the requested format.
func ByFormat(format string) (Renderer, error) {
	switch format {
	case "csv":
		return &CSVRenderer{}, nil
	case "pdf":
		return &PDFRenderer{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
