package letter

import (
	"strings"
	"testing"
	"time"
)

var testUser = UserInfo{
	Name:    "Jordan Larsen",
	Address: "1420 Summit Ave",
	City:    "Saint Paul",
	State:   "MN",
	Zip:     "55105",
	Email:   "jordan.larsen@example.com",
}

var testBroker = DataBroker{
	ID:       "acme-data",
	Name:     "Acme Data Partners LLC",
	Email:    "privacy@acmedata.example",
	Website:  "https://acmedata.example",
	Address:  "100 Market St",
	City:     "Minneapolis",
	State:    "MN",
	Category: CategoryAggregator,
}

func TestSplit(t *testing.T) {
	combinable, standalone := Split([]RequestType{
		RequestOptOut, RequestCorrection, RequestDeletion, RequestProfilingInfo,
	})

	if len(combinable) != 2 || combinable[0] != RequestOptOut || combinable[1] != RequestDeletion {
		t.Errorf("combinable = %v", combinable)
	}

	if len(standalone) != 2 || standalone[0] != RequestCorrection || standalone[1] != RequestProfilingInfo {
		t.Errorf("standalone = %v", standalone)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		name     string
		brokers  int
		types    []RequestType
		expected int
	}{
		{"combinable only", 3, []RequestType{RequestOptOut, RequestDeletion}, 3},
		{"one standalone only", 3, []RequestType{RequestCorrection}, 3},
		{"mixed", 3, []RequestType{RequestOptOut, RequestCorrection}, 6},
		{"both standalone plus combinable", 2, []RequestType{RequestOptOut, RequestCorrection, RequestProfilingInfo}, 6},
		{"no brokers", 0, []RequestType{RequestOptOut}, 0},
		{"no types", 4, nil, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Count(tc.brokers, tc.types); got != tc.expected {
				t.Errorf("Count(%d, %v) = %d, want %d", tc.brokers, tc.types, got, tc.expected)
			}
		})
	}
}

func TestGenerateAll_SplitRule(t *testing.T) {
	brokers := []DataBroker{
		testBroker,
		{ID: "b2", Name: "People Finder Inc", Email: "p@b2.example", Website: "https://b2.example"},
		{ID: "b3", Name: "AdTrack Co", Email: "p@b3.example", Website: "https://b3.example"},
	}

	types := []RequestType{RequestOptOut, RequestCorrection}
	inputs := map[RequestType]string{RequestCorrection: "My address is listed as 99 Wrong St; it should be 1420 Summit Ave."}

	letters := GenerateAll(brokers, types, testUser, inputs)

	if len(letters) != 6 {
		t.Fatalf("expected 6 letters, got %d", len(letters))
	}

	if len(letters) != Count(len(brokers), types) {
		t.Errorf("letter count %d does not match Count %d", len(letters), Count(len(brokers), types))
	}

	// Per broker: one combined (opt-out) letter, then one correction letter.
	for i := 0; i < 3; i++ {
		combined := letters[i*2]
		standalone := letters[i*2+1]

		if len(combined.RequestTypes) != 1 || combined.RequestTypes[0] != RequestOptOut {
			t.Errorf("broker %d combined letter types = %v", i, combined.RequestTypes)
		}

		if len(standalone.RequestTypes) != 1 || standalone.RequestTypes[0] != RequestCorrection {
			t.Errorf("broker %d standalone letter types = %v", i, standalone.RequestTypes)
		}

		// Request-type lists for the same broker are disjoint.
		for _, rt := range combined.RequestTypes {
			for _, st := range standalone.RequestTypes {
				if rt == st {
					t.Errorf("broker %d: type %q appears in both letters", i, rt)
				}
			}
		}
	}
}

func TestGenerateAll_CombinableOnly(t *testing.T) {
	brokers := []DataBroker{testBroker, {ID: "b2", Name: "B2", Email: "p@b2.example"}}
	types := []RequestType{RequestRightToKnow, RequestDeletion, RequestOptOut}

	letters := GenerateAll(brokers, types, testUser, nil)

	if len(letters) != 2 {
		t.Fatalf("expected 2 letters, got %d", len(letters))
	}

	for _, l := range letters {
		if len(l.RequestTypes) != 3 {
			t.Errorf("expected full selection on each letter, got %v", l.RequestTypes)
		}
	}
}

func TestGenerate_SubjectLines(t *testing.T) {
	single := Generate(testBroker, []RequestType{RequestDeletion}, testUser, nil)
	if single.Subject != "MCDPA Request: Deletion of Personal Data" {
		t.Errorf("single subject = %q", single.Subject)
	}

	multi := Generate(testBroker, []RequestType{RequestDeletion, RequestOptOut, RequestPortability}, testUser, nil)
	if multi.Subject != "MCDPA Request: Multiple Rights (3 requests)" {
		t.Errorf("multi subject = %q", multi.Subject)
	}
}

func TestGenerate_Body(t *testing.T) {
	got := Generate(testBroker, []RequestType{RequestDeletion, RequestOptOut}, testUser, nil)

	for _, want := range []string{
		"To whom it may concern:",
		"THIS REQUEST INCLUDES:",
		"• Delete all personal data you hold about me",
		"• Opt out of sale, targeted advertising, and profiling",
		"subd. 1(d)",
		"subd. 1(f)",
		"Name: Jordan Larsen",
		"Home address: 1420 Summit Ave, Saint Paul, MN 55105",
		"Minnesota Statutes sections 325M.10-325M.21",
		"within 45 days",
		"$7,500 per violation",
	} {
		if !strings.Contains(got.Body, want) {
			t.Errorf("body missing %q", want)
		}
	}

	// Paragraphs in a multi-type letter are separated by a rule marker.
	if !strings.Contains(got.Body, "\n\n---\n\n") {
		t.Error("expected horizontal-rule separator between paragraphs")
	}

	if got.RecipientAddress != "100 Market St, Minneapolis, MN" {
		t.Errorf("recipient address = %q", got.RecipientAddress)
	}
}

func TestGenerate_PlaceholderSubstitution(t *testing.T) {
	input := "The birth date on file is wrong; it should be 1989-04-02."

	got := Generate(testBroker, []RequestType{RequestCorrection}, testUser,
		map[RequestType]string{RequestCorrection: input})

	if !strings.Contains(got.Body, input) {
		t.Error("expected correction input to appear verbatim in body")
	}

	if strings.Contains(got.Body, "[CORRECTION_DETAILS]") {
		t.Error("placeholder token should have been replaced")
	}
}

func TestGenerate_MissingInputLeavesPlaceholder(t *testing.T) {
	got := Generate(testBroker, []RequestType{RequestProfilingInfo}, testUser, nil)

	if !strings.Contains(got.Body, "[PROFILING_DECISION_DETAILS]") {
		t.Error("placeholder should remain when no input is supplied")
	}
}

func TestDeadline(t *testing.T) {
	sent := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	want := time.Date(2026, time.February, 24, 12, 0, 0, 0, time.UTC)

	if got := Deadline(sent); !got.Equal(want) {
		t.Errorf("Deadline(%v) = %v, want %v", sent, got, want)
	}
}

func TestFilenameAt(t *testing.T) {
	at := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)

	got := FilenameAt("Acme Data Partners, LLC!", []RequestType{RequestOptOut}, at)
	want := "MCDPA_Acme_Data_Partners__LLC__opt-out_2026-03-05.pdf"

	if got != want {
		t.Errorf("FilenameAt = %q, want %q", got, want)
	}

	// Long names and type lists are truncated deterministically.
	long := FilenameAt(strings.Repeat("x", 80), RequestTypes, at)
	if len(long) > len("MCDPA_")+30+1+20+1+len("2026-03-05.pdf")+1 {
		t.Errorf("filename too long: %q", long)
	}
}

func TestStandaloneFlags(t *testing.T) {
	for _, rt := range RequestTypes {
		want := rt == RequestCorrection || rt == RequestProfilingInfo
		if rt.Standalone() != want {
			t.Errorf("%s.Standalone() = %v, want %v", rt, rt.Standalone(), want)
		}

		if !rt.Valid() {
			t.Errorf("%s should be valid", rt)
		}
	}

	if RequestType("junk").Valid() {
		t.Error("unknown type should be invalid")
	}
}
