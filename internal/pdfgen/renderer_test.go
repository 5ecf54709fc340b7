package pdfgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mnprivacy/shield/internal/letter"
)

var testUser = letter.UserInfo{
	Name:    "Jordan Larsen",
	Address: "1420 Summit Ave",
	City:    "Saint Paul",
	State:   "MN",
	Zip:     "55105",
	Email:   "jordan.larsen@example.com",
}

var testBroker = letter.DataBroker{
	ID:      "acme-data",
	Name:    "Acme Data Partners LLC",
	Email:   "privacy@acmedata.example",
	Website: "https://acmedata.example",
	Address: "100 Market St",
	City:    "Minneapolis",
	State:   "MN",
}

func TestRender_SingleLetter(t *testing.T) {
	content := letter.Generate(testBroker, []letter.RequestType{letter.RequestDeletion}, testUser, nil)

	pdf, err := New().Render(content)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatal("output is not a PDF document")
	}

	pages, err := PageCount(pdf)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}

	if pages < 1 {
		t.Errorf("expected at least one page, got %d", pages)
	}
}

func TestRender_LongBodyBreaksPages(t *testing.T) {
	content := letter.Generate(testBroker, letter.RequestTypes, testUser,
		map[letter.RequestType]string{
			letter.RequestCorrection:    strings.Repeat("The listed previous address is incorrect. ", 40),
			letter.RequestProfilingInfo: strings.Repeat("The decision denied my rental application. ", 40),
		})

	pdf, err := New().Render(content)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	pages, err := PageCount(pdf)
	if err != nil {
		t.Fatalf("PageCount: %v", err)
	}

	if pages < 2 {
		t.Errorf("expected a page break for a long letter, got %d page(s)", pages)
	}
}

func TestRenderMerged(t *testing.T) {
	brokers := []letter.DataBroker{
		testBroker,
		{ID: "b2", Name: "People Finder Inc", Email: "p@b2.example", Website: "https://b2.example"},
	}

	letters := letter.GenerateAll(brokers, []letter.RequestType{letter.RequestOptOut}, testUser, nil)

	r := New()

	merged, err := r.RenderMerged(letters)
	if err != nil {
		t.Fatalf("RenderMerged: %v", err)
	}

	mergedPages, err := PageCount(merged)
	if err != nil {
		t.Fatalf("PageCount(merged): %v", err)
	}

	// Per-letter page breaks are preserved: the merged document has exactly
	// the sum of the individual page counts.
	sum := 0
	for _, l := range letters {
		single, err := r.Render(l)
		if err != nil {
			t.Fatalf("Render: %v", err)
		}

		pages, err := PageCount(single)
		if err != nil {
			t.Fatalf("PageCount(single): %v", err)
		}

		sum += pages
	}

	if mergedPages != sum {
		t.Errorf("merged pages = %d, want %d", mergedPages, sum)
	}
}

func TestRenderMerged_Empty(t *testing.T) {
	if _, err := New().RenderMerged(nil); err != ErrNoLetters {
		t.Errorf("expected ErrNoLetters, got %v", err)
	}
}

func TestNew_Options(t *testing.T) {
	r := New(WithMargin(36), WithLineHeight(12), WithFontSize(10))

	if r.opts.Margin != 36 || r.opts.LineHeight != 12 || r.opts.FontSize != 10 {
		t.Errorf("options not applied: %+v", r.opts)
	}
}
