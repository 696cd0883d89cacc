// Package document renders plain text into a single fixed-layout PDF file.
//
// Rendering never fails because of its input: characters the page encoding
// cannot represent are replaced, trading fidelity for availability.
package document

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/exp/slog"
)

const (
	fontFamily    = "Helvetica"
	titleFontSize = 16
	bodyFontSize  = 11
	titleWidth    = 190
	lineHeight    = 10
)

// Renderer turns editor content into PDF bytes.
type Renderer interface {
	Render(content, title string) ([]byte, error)
}

type PDFRenderer struct {
	log *slog.Logger
}

func NewPDFRenderer(log *slog.Logger) *PDFRenderer {
	return &PDFRenderer{log: log.With("component", "pdf_renderer")}
}

// Render lays out an uppercased, bold, centered title followed by the
// word-wrapped body on A4 pages.
func (r *PDFRenderer) Render(content, title string) ([]byte, error) {
	cleanTitle, lostTitle := Sanitize(strings.ToUpper(title))
	cleanBody, lostBody := Sanitize(normalizeNewlines(content))
	if lost := lostTitle + lostBody; lost > 0 {
		r.log.Debug("characters replaced for page encoding", "count", lost)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	pdf.SetTitle(cleanTitle, false)
	pdf.AddPage()

	pdf.SetFont(fontFamily, "B", titleFontSize)
	pdf.CellFormat(titleWidth, lineHeight, cleanTitle, "", 1, "C", false, 0, "")
	pdf.Ln(lineHeight)

	pdf.SetFont(fontFamily, "", bodyFontSize)
	pdf.MultiCell(0, lineHeight, cleanBody, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
