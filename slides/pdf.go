package slides

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/phanxgames/podium"
)

// DefaultPDFDPI renders a letter page about 1100 pixels wide.
const DefaultPDFDPI = 144

// RenderPDF rasterizes the given 1-based pages of the PDF at path. No pages
// means every page.
func RenderPDF(path string, pages []int, dpi float64) ([]image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	if dpi <= 0 {
		dpi = DefaultPDFDPI
	}
	count := doc.NumPage()
	if len(pages) == 0 {
		pages = make([]int, count)
		for i := range pages {
			pages[i] = i + 1
		}
	}
	out := make([]image.Image, 0, len(pages))
	for _, p := range pages {
		if p < 1 || p > count {
			return nil, fmt.Errorf("pdf %s: page %d out of range 1..%d", path, p, count)
		}
		img, err := doc.ImageDPI(p-1, dpi)
		if err != nil {
			return nil, fmt.Errorf("pdf %s: render page %d: %w", path, p, err)
		}
		out = append(out, img)
	}
	return out, nil
}

// PDFPages turns pages of a PDF into full-stage image slides.
func PDFPages(th Theme, path string, pages []int) ([]podium.Slide, error) {
	images, err := RenderPDF(path, pages, DefaultPDFDPI)
	if err != nil {
		return nil, err
	}
	out := make([]podium.Slide, len(images))
	for i, img := range images {
		out[i] = Image(th, "", img, "")
	}
	return out, nil
}
