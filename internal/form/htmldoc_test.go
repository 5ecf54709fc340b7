package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnprivacy/shield/internal/fields"
)

const optOutFormHTML = `<!DOCTYPE html>
<html><body>
<form action="/privacy-request" method="post">
  <label for="fname">First Name</label>
  <input type="text" id="fname" name="fname">
  <label for="lname">Last Name</label>
  <input type="text" id="lname" name="lname">
  <input type="email" name="contact">
  <label>
    Street Address
    <input type="text" name="addr1">
  </label>
  <input type="text" name="locality" aria-label="City">
  <select name="state">
    <option value="">Choose one</option>
    <option value="CA">California</option>
    <option value="MN">Minnesota</option>
  </select>
  <span>ZIP Code</span>
  <input type="text" name="postal5">
  <input type="checkbox" name="request" value="optout" id="cb-optout">
  <label for="cb-optout">Opt out of the sale of my data</label>
  <input type="hidden" name="csrf" value="tok">
  <input type="submit" value="Send">
</form>
</body></html>`

func TestParseHTML_LabelResolution(t *testing.T) {
	doc, err := ParseHTML(optOutFormHTML)
	require.NoError(t, err)

	byName := map[string]Control{}
	for _, ctl := range doc.Controls() {
		byName[ctl.Attr("name")] = ctl
	}

	assert.Equal(t, "First Name", byName["fname"].LabelText(), "label[for] lookup")
	assert.Equal(t, "Street Address", byName["addr1"].LabelText(), "wrapping label")
	assert.Equal(t, "City", byName["locality"].LabelText(), "aria-label")
	assert.Equal(t, "ZIP Code", byName["postal5"].LabelText(), "preceding span")
}

func TestScanHTML(t *testing.T) {
	doc, err := ParseHTML(optOutFormHTML)
	require.NoError(t, err)

	result := Scan(doc)

	assert.True(t, result.HasForm())
	assert.Len(t, result.Fields[fields.FieldFirstName], 1)
	assert.Len(t, result.Fields[fields.FieldLastName], 1)
	assert.Len(t, result.Fields[fields.FieldEmail], 1)
	assert.Len(t, result.Fields[fields.FieldAddress], 1)
	assert.Len(t, result.Fields[fields.FieldCity], 1)
	assert.Len(t, result.Fields[fields.FieldState], 1)
	assert.Len(t, result.Fields[fields.FieldZip], 1)
	assert.Len(t, result.Checkboxes[fields.IntentOptOut], 1)

	// The csrf token and submit button never surface.
	for _, controls := range result.Fields {
		for _, ctl := range controls {
			assert.NotEqual(t, "hidden", ctl.Type())
			assert.NotEqual(t, "submit", ctl.Type())
		}
	}
}

func TestFillHTML(t *testing.T) {
	doc, err := ParseHTML(optOutFormHTML)
	require.NoError(t, err)

	report, err := Fill(doc, testProfile)
	require.NoError(t, err)

	assert.Empty(t, report.Failed)
	assert.ElementsMatch(t, []fields.RequestIntent{fields.IntentOptOut}, report.CheckedTypes)

	byName := map[string]*htmlControl{}
	for _, ctl := range doc.Controls() {
		byName[ctl.Attr("name")] = ctl.(*htmlControl)
	}

	assert.Equal(t, "Jordan", byName["fname"].Value())
	assert.Equal(t, "Olson", byName["lname"].Value())
	assert.Equal(t, "jordan@example.com", byName["contact"].Value())
	assert.Equal(t, "MN", byName["state"].Value())
	assert.Equal(t, "55101", byName["postal5"].Value())
	assert.True(t, byName["request"].Checked())
	assert.Contains(t, byName["fname"].Events, "input")
	assert.Contains(t, byName["state"].Events, "change")
}

func TestParseHTML_TextareaValue(t *testing.T) {
	doc, err := ParseHTML(`<textarea name="details">  existing text  </textarea>`)
	require.NoError(t, err)

	require.Len(t, doc.Controls(), 1)
	assert.Equal(t, "existing text", doc.Controls()[0].Value())
}

func TestFillHTML_ValuelessOptions(t *testing.T) {
	doc, err := ParseHTML(`<select name="state">
  <option>Choose one</option>
  <option>CA</option>
  <option>MN</option>
</select>`)
	require.NoError(t, err)

	require.Len(t, doc.Controls(), 1)
	sel := doc.Controls()[0]

	// Valueless options expose their text as the submitted value.
	assert.Equal(t, []SelectOption{
		{Value: "Choose one", Text: "Choose one"},
		{Value: "CA", Text: "CA"},
		{Value: "MN", Text: "MN"},
	}, sel.Options())

	report, err := Fill(doc, testProfile)
	require.NoError(t, err)

	assert.Empty(t, report.Failed)
	assert.Equal(t, "MN", sel.Value())

	html, err := doc.HTML()
	require.NoError(t, err)

	// Only the matched option is marked selected in the replayed markup.
	assert.Contains(t, html, `<option selected="selected">MN</option>`)
	assert.NotContains(t, html, `<option selected="selected">CA</option>`)
	assert.NotContains(t, html, `<option selected="selected">Choose one</option>`)
}
