package pdfgen

import (
	"bytes"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/mnprivacy/shield/internal/letter"
)

// RenderMerged renders each letter independently and concatenates the
// resulting page sequences into one document. Every letter starts on its own
// page; short letters are not packed together.
func (r *Renderer) RenderMerged(letters []letter.Content) ([]byte, error) {
	if len(letters) == 0 {
		return nil, ErrNoLetters
	}

	if len(letters) == 1 {
		return r.Render(letters[0])
	}

	parts := make([]io.ReadSeeker, 0, len(letters))

	for _, l := range letters {
		b, err := r.Render(l)
		if err != nil {
			return nil, err
		}

		parts = append(parts, bytes.NewReader(b))
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	var buf bytes.Buffer
	if err := api.MergeRaw(parts, &buf, false, conf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// PageCount parses rendered PDF bytes and returns the page count.
func PageCount(pdf []byte) (int, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(pdf), conf)
	if err != nil {
		return 0, err
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return 0, err
	}

	return ctx.PageCount, nil
}
