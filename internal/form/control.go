// Package form scans web forms for privacy-request fields and fills them from
// a saved user profile. Controls are abstracted behind a small capability
// interface so the same scanner and filler work against parsed HTML, a
// headless browser bridge, or test fakes.
package form

// HighlightStatus marks the visual outcome applied to a control after a fill
// attempt.
type HighlightStatus string

const (
	// HighlightSuccess marks a control that was filled or checked
	HighlightSuccess HighlightStatus = "success"
	// HighlightError marks a control the filler could not set
	HighlightError HighlightStatus = "error"
)

// SelectOption is one entry of a select control.
type SelectOption struct {
	// Value is the option's submit value
	Value string `json:"value"`
	// Text is the option's visible text
	Text string `json:"text"`
}

// Control is the minimal surface the scanner and filler need from a form
// control. Implementations wrap a DOM node, a parsed HTML element, or a fake.
type Control interface {
	// Tag returns the lowercase element tag, such as "input" or "select".
	Tag() string

	// Type returns the lowercase input type, or "" when the element has none.
	Type() string

	// Attr returns the named attribute, or "" when absent.
	Attr(name string) string

	// LabelText returns the human-visible label associated with the control.
	LabelText() string

	// Value returns the control's current value.
	Value() string

	// SetValue replaces the control's value.
	SetValue(v string) error

	// Options lists the entries of a select control. Non-selects return nil.
	Options() []SelectOption

	// Checked reports whether a checkbox or radio is currently checked.
	Checked() bool

	// Click activates the control, toggling checkboxes and radios.
	Click() error

	// DispatchEvent fires a named DOM event so framework listeners observe
	// the change.
	DispatchEvent(name string) error

	// Highlight applies transient visual feedback after a fill attempt.
	Highlight(status HighlightStatus)
}

// Focusable is implemented by controls that support focus and blur. The
// filler uses it when available so validation listeners fire the way they
// would for a human typist.
type Focusable interface {
	Focus()
	Blur()
}

// Document exposes the controls of a page in document order.
type Document interface {
	Controls() []Control
}
