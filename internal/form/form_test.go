package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mnprivacy/shield/internal/fields"
	"github.com/mnprivacy/shield/internal/letter"
)

// fakeControl is a scriptable Control for exercising the filler without a
// parsed document.
type fakeControl struct {
	tag     string
	typ     string
	attrs   map[string]string
	label   string
	value   string
	checked bool
	options []SelectOption

	setErr error

	events     []string
	focused    bool
	blurred    bool
	clicked    bool
	highlights []HighlightStatus
}

func (c *fakeControl) Tag() string  { return c.tag }
func (c *fakeControl) Type() string { return c.typ }
func (c *fakeControl) Attr(name string) string {
	return c.attrs[name]
}
func (c *fakeControl) LabelText() string { return c.label }
func (c *fakeControl) Value() string     { return c.value }
func (c *fakeControl) SetValue(v string) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.value = v
	return nil
}
func (c *fakeControl) Options() []SelectOption { return c.options }
func (c *fakeControl) Checked() bool           { return c.checked }
func (c *fakeControl) Click() error {
	c.clicked = true
	c.checked = !c.checked
	return nil
}
func (c *fakeControl) DispatchEvent(name string) error {
	c.events = append(c.events, name)
	return nil
}
func (c *fakeControl) Highlight(status HighlightStatus) {
	c.highlights = append(c.highlights, status)
}
func (c *fakeControl) Focus() { c.focused = true }
func (c *fakeControl) Blur()  { c.blurred = true }

type fakeDocument struct {
	controls []Control
}

func (d *fakeDocument) Controls() []Control { return d.controls }

func textInput(name string) *fakeControl {
	return &fakeControl{tag: "input", typ: "text", attrs: map[string]string{"name": name}}
}

var testProfile = letter.UserInfo{
	Name:    "Jordan Olson",
	Address: "100 Main St",
	City:    "Saint Paul",
	State:   "MN",
	Zip:     "55101",
	Email:   "jordan@example.com",
	Phone:   "651-555-0100",
}

func TestScan_GroupsByFieldType(t *testing.T) {
	email := textInput("email")
	hidden := &fakeControl{tag: "input", typ: "hidden", attrs: map[string]string{"name": "email"}}
	submit := &fakeControl{tag: "input", typ: "submit", attrs: map[string]string{"name": "full_name"}}
	optOut := &fakeControl{tag: "input", typ: "checkbox", label: "Do not sell my personal information"}

	result := Scan(&fakeDocument{controls: []Control{email, hidden, submit, optOut}})

	assert.True(t, result.HasForm())
	require.Len(t, result.Fields[fields.FieldEmail], 1)
	assert.Same(t, email, result.Fields[fields.FieldEmail][0])
	require.Len(t, result.Checkboxes[fields.IntentOptOut], 1)
}

func TestScan_NoFields(t *testing.T) {
	result := Scan(&fakeDocument{controls: []Control{
		&fakeControl{tag: "input", typ: "text", attrs: map[string]string{"name": "captcha_answer"}},
	}})

	assert.False(t, result.HasForm())
}

func TestFill_RequiresProfile(t *testing.T) {
	_, err := Fill(&fakeDocument{}, letter.UserInfo{})
	assert.ErrorIs(t, err, ErrNoProfile)
}

func TestFill_TextInputs(t *testing.T) {
	email := textInput("email")
	first := textInput("first_name")
	last := textInput("last_name")

	report, err := Fill(&fakeDocument{controls: []Control{email, first, last}}, testProfile)
	require.NoError(t, err)

	assert.Equal(t, "jordan@example.com", email.value)
	assert.Equal(t, "Jordan", first.value)
	assert.Equal(t, "Olson", last.value)
	assert.Equal(t, []string{"input", "change", "keyup"}, email.events)
	assert.True(t, email.focused)
	assert.True(t, email.blurred)
	assert.Equal(t, 3, report.TotalFields)
	assert.Len(t, report.Filled, 3)
	assert.Empty(t, report.Failed)
}

func TestFill_EmptyValueSkipped(t *testing.T) {
	phone := textInput("phone")

	profile := testProfile
	profile.Phone = ""

	report, err := Fill(&fakeDocument{controls: []Control{phone}}, profile)
	require.NoError(t, err)

	assert.Empty(t, phone.value)
	assert.Empty(t, report.Filled)
	assert.Empty(t, report.Failed)
	assert.Equal(t, 1, report.TotalFields)
}

func TestFill_FailureCollected(t *testing.T) {
	broken := textInput("email")
	broken.setErr = errors.New("read only")

	report, err := Fill(&fakeDocument{controls: []Control{broken}}, testProfile)
	require.NoError(t, err)

	require.Len(t, report.Failed, 1)
	assert.Equal(t, fields.FieldEmail, report.Failed[0].Field)
	assert.Equal(t, "read only", report.Failed[0].Error)
	assert.Equal(t, []HighlightStatus{HighlightError}, broken.highlights)
}

func TestFill_ChecksDeleteAndOptOut(t *testing.T) {
	optOut := &fakeControl{tag: "input", typ: "checkbox", label: "Do not sell my personal information"}
	del := &fakeControl{tag: "input", typ: "checkbox", attrs: map[string]string{"name": "delete_my_data"}}
	already := &fakeControl{tag: "input", typ: "checkbox", attrs: map[string]string{"name": "marketing-optout"}, checked: true}
	access := &fakeControl{tag: "input", typ: "checkbox", attrs: map[string]string{"name": "access_request"}}

	report, err := Fill(&fakeDocument{controls: []Control{optOut, del, already, access}}, testProfile)
	require.NoError(t, err)

	assert.True(t, optOut.clicked)
	assert.True(t, del.clicked)
	assert.False(t, already.clicked, "checked boxes stay untouched")
	assert.False(t, access.clicked, "access checkboxes are left to the user")
	assert.ElementsMatch(t, []fields.RequestIntent{fields.IntentDelete, fields.IntentOptOut}, report.CheckedTypes)
}

func TestFillSelect(t *testing.T) {
	stateOptions := []SelectOption{
		{Value: "", Text: "Select a state"},
		{Value: "CA", Text: "California"},
		{Value: "MN", Text: "Minnesota"},
	}

	tests := []struct {
		name    string
		control *fakeControl
		value   string
		want    string
	}{
		{
			name: "exact value match",
			control: &fakeControl{
				tag: "select", attrs: map[string]string{"name": "state"},
				options: stateOptions,
			},
			value: "MN",
			want:  "MN",
		},
		{
			name: "exact text match",
			control: &fakeControl{
				tag: "select", attrs: map[string]string{"name": "state"},
				options: []SelectOption{{Value: "23", Text: "Minnesota"}},
			},
			value: "Minnesota",
			want:  "23",
		},
		{
			name: "substring match",
			control: &fakeControl{
				tag: "select", attrs: map[string]string{"name": "region"},
				options: []SelectOption{{Value: "us-mn", Text: "Minnesota (US)"}},
			},
			value: "Minnesota",
			want:  "us-mn",
		},
		{
			name: "abbreviation fallback",
			control: &fakeControl{
				tag: "select", attrs: map[string]string{"name": "state"},
				options: []SelectOption{{Value: "Minnesota", Text: "Minnesota"}},
			},
			value: "MN",
			want:  "Minnesota",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.NoError(t, fillSelect(tc.control, tc.value))
			assert.Equal(t, tc.want, tc.control.value)
			assert.Equal(t, []string{"change"}, tc.control.events)
		})
	}
}

func TestFill_SelectWithoutMatchLeftUntouched(t *testing.T) {
	ctl := &fakeControl{
		tag: "select", attrs: map[string]string{"name": "country"},
		options: []SelectOption{{Value: "fr", Text: "France"}},
	}

	report, err := Fill(&fakeDocument{controls: []Control{ctl}}, testProfile)
	require.NoError(t, err)

	assert.Empty(t, report.Filled)
	assert.Empty(t, report.Failed)
	assert.Empty(t, ctl.value)
	assert.Empty(t, ctl.events)
	assert.Empty(t, ctl.highlights)
}
