package document

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/papercrawl/papercrawl/internal/model"
)

// Page geometry, A4 with 0.75 inch margins.
const (
	pageMargin = 19.05 // 0.75in in mm

	titleFontSize   = 16
	headingFontSize = 12
	bodyFontSize    = 10
	metaFontSize    = 9

	bodyLineHeight    = 5.0
	headingLineHeight = 6.0
	titleLineHeight   = 8.0
	metaLineHeight    = 4.5
	spacerHeight      = 4.0
)

// Ink colors per block role.
var (
	titleColor   = [3]int{44, 62, 80}    // #2c3e50
	metaColor    = [3]int{127, 140, 141} // #7f8c8d
	headingColor = [3]int{52, 73, 94}    // #34495e
	bodyColor    = [3]int{44, 62, 80}    // #2c3e50
)

// PDFRenderer writes assembled block sequences as PDF files into a
// fixed output directory.
type PDFRenderer struct {
	outputDir string
}

// NewPDFRenderer creates a renderer writing into outputDir, creating
// the directory if needed.
func NewPDFRenderer(outputDir string) (*PDFRenderer, error) {
	if err := os.MkdirAll(outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}
	return &PDFRenderer{outputDir: outputDir}, nil
}

// OutputDir returns the directory artifacts are written into.
func (r *PDFRenderer) OutputDir() string {
	return r.outputDir
}

// Render writes the blocks as a PDF named filename and returns the full
// path of the created file.
func (r *PDFRenderer) Render(blocks []model.Block, filename string) (string, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	// Core PDF fonts are cp1252; the translator maps umlauts and other
	// Latin-1 text onto it.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	textWidth := pageWidth - 2*pageMargin

	for _, block := range blocks {
		switch block.Kind {
		case model.BlockTitle:
			pdf.SetFont("Helvetica", "B", titleFontSize)
			pdf.SetTextColor(titleColor[0], titleColor[1], titleColor[2])
			pdf.MultiCell(textWidth, titleLineHeight, tr(block.Text), "", "L", false)
			pdf.Ln(2)
		case model.BlockMeta, model.BlockFooter:
			pdf.SetFont("Helvetica", "I", metaFontSize)
			pdf.SetTextColor(metaColor[0], metaColor[1], metaColor[2])
			pdf.MultiCell(textWidth, metaLineHeight, tr(block.Text), "", "L", false)
		case model.BlockDivider:
			pdf.SetDrawColor(metaColor[0], metaColor[1], metaColor[2])
			y := pdf.GetY()
			pdf.Line(pageMargin, y, pageMargin+textWidth, y)
			pdf.Ln(2)
		case model.BlockHeading:
			pdf.Ln(2)
			pdf.SetFont("Helvetica", "B", headingFontSize)
			pdf.SetTextColor(headingColor[0], headingColor[1], headingColor[2])
			pdf.MultiCell(textWidth, headingLineHeight, tr(block.Text), "", "L", false)
		case model.BlockBody:
			pdf.SetFont("Helvetica", "", bodyFontSize)
			pdf.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
			pdf.MultiCell(textWidth, bodyLineHeight, tr(block.Text), "", "L", false)
			pdf.Ln(1)
		case model.BlockSpacer:
			pdf.Ln(spacerHeight)
		}
	}

	path := filepath.Join(r.outputDir, filename)
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
