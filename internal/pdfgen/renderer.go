// Package pdfgen lays letter text out onto US-Letter PDF pages.
package pdfgen

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/mnprivacy/shield/internal/letter"
)

const (
	pageWidth  = 612.0 // US Letter, points
	pageHeight = 792.0
)

// Options configures page geometry and typography.
type Options struct {
	// Margin is the page margin in points
	Margin float64
	// LineHeight is the vertical advance per text line in points
	LineHeight float64
	// FontSize is the body font size
	FontSize float64
	// TitleFontSize is the subject-line font size
	TitleFontSize float64
}

// Option is a functional option for configuring the renderer.
type Option func(*Options)

// DefaultOptions returns the standard one-inch-margin letter layout.
func DefaultOptions() *Options {
	return &Options{
		Margin:        72,
		LineHeight:    14,
		FontSize:      11,
		TitleFontSize: 12,
	}
}

// WithMargin sets the page margin in points.
func WithMargin(margin float64) Option {
	return func(o *Options) {
		o.Margin = margin
	}
}

// WithLineHeight sets the per-line vertical advance in points.
func WithLineHeight(h float64) Option {
	return func(o *Options) {
		o.LineHeight = h
	}
}

// WithFontSize sets the body font size.
func WithFontSize(size float64) Option {
	return func(o *Options) {
		o.FontSize = size
	}
}

// Renderer renders letters as PDF documents.
type Renderer struct {
	opts *Options
}

// New creates a renderer with the given options applied over defaults.
func New(opts ...Option) *Renderer {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &Renderer{opts: o}
}

// page tracks the drawing cursor on the current output page.
type page struct {
	doc        *fpdf.Fpdf
	opts       *Options
	translate  func(string) string
	y          float64
	printWidth float64
}

// Render lays one letter out onto as many pages as it needs and returns the
// PDF bytes.
func (r *Renderer) Render(content letter.Content) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)

	r.renderInto(doc, content)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// renderInto draws one letter into the document starting on a fresh page.
func (r *Renderer) renderInto(doc *fpdf.Fpdf, content letter.Content) {
	doc.AddPage()

	p := &page{
		doc:  doc,
		opts: r.opts,
		// Core fonts are cp1252; letter text carries UTF-8 bullets.
		translate:  doc.UnicodeTranslatorFromDescriptor(""),
		y:          r.opts.Margin,
		printWidth: pageWidth - 2*r.opts.Margin,
	}

	// Date
	p.drawLine(content.Date, false, r.opts.FontSize)
	p.advance(r.opts.LineHeight)

	// Recipient block
	p.drawLine(content.RecipientName, true, r.opts.FontSize)
	p.drawWrapped(content.RecipientAddress, r.opts.FontSize)
	p.advance(r.opts.LineHeight)

	// Subject
	p.drawLine("Re: "+content.Subject, true, r.opts.TitleFontSize)
	p.advance(r.opts.LineHeight)

	// Body: one source line at a time, applying the inline conventions.
	for _, line := range strings.Split(content.Body, "\n") {
		switch {
		case strings.TrimSpace(line) == "":
			p.advance(r.opts.LineHeight / 2)
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**"):
			p.drawLine(strings.ReplaceAll(line, "**", ""), true, r.opts.FontSize)
		case strings.HasPrefix(line, "---"):
			p.drawRule()
		default:
			p.drawWrapped(line, r.opts.FontSize)
		}
	}
}

// drawLine draws one unwrapped line at the cursor and advances it.
func (p *page) drawLine(text string, bold bool, size float64) {
	p.setFont(bold, size)
	p.doc.Text(p.opts.Margin, p.y, p.translate(text))
	p.advance(p.opts.LineHeight)
}

// drawWrapped greedily word-wraps text to the printable width, breaking
// pages as the cursor passes the bottom margin.
func (p *page) drawWrapped(text string, size float64) {
	if text == "" {
		return
	}

	p.setFont(false, size)

	line := ""
	for _, word := range strings.Split(text, " ") {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}

		if p.doc.GetStringWidth(p.translate(candidate)) > p.printWidth && line != "" {
			p.doc.Text(p.opts.Margin, p.y, p.translate(line))
			p.advance(p.opts.LineHeight)
			p.setFont(false, size)
			line = word

			continue
		}

		line = candidate
	}

	if line != "" {
		p.doc.Text(p.opts.Margin, p.y, p.translate(line))
		p.advance(p.opts.LineHeight)
	}
}

// drawRule draws a horizontal separator line.
func (p *page) drawRule() {
	p.advance(p.opts.LineHeight / 2)
	p.doc.SetDrawColor(128, 128, 128)
	p.doc.SetLineWidth(0.5)
	p.doc.Line(p.opts.Margin, p.y, pageWidth-p.opts.Margin, p.y)
	p.advance(p.opts.LineHeight)
}

// advance moves the cursor down, starting a new page when it passes the
// bottom margin.
func (p *page) advance(by float64) {
	p.y += by

	if p.y > pageHeight-p.opts.Margin {
		p.doc.AddPage()
		p.y = p.opts.Margin
	}
}

func (p *page) setFont(bold bool, size float64) {
	style := ""
	if bold {
		style = "B"
	}

	p.doc.SetFont("Times", style, size)
}
