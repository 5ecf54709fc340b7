package pdfgen

import "errors"

var (
	// ErrNoLetters is returned when a merged render is requested with an empty letter list
	ErrNoLetters = errors.New("no letters to render")
)
