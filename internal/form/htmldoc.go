package form

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLDocument is a Document over parsed HTML. It backs the server-side form
// scan and fill endpoints: writes and events are recorded on the control
// rather than applied to a live page, and the caller replays them in the
// browser.
type HTMLDocument struct {
	doc      *goquery.Document
	controls []Control
}

// ParseHTML parses a snapshot of a page into a scannable document.
func ParseHTML(html string) (*HTMLDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	hd := &HTMLDocument{doc: doc}

	doc.Find("input, select, textarea").Each(func(_ int, sel *goquery.Selection) {
		hd.controls = append(hd.controls, &htmlControl{doc: doc, sel: sel})
	})

	return hd, nil
}

// Controls returns every form control of the page in document order.
func (d *HTMLDocument) Controls() []Control {
	return d.controls
}

// HTML serializes the document, including any recorded fills, so the caller
// can replay the result in a live page.
func (d *HTMLDocument) HTML() (string, error) {
	return goquery.OuterHtml(d.doc.Selection)
}

// htmlControl adapts one parsed element to the Control interface. Value and
// checked state start from the markup and track recorded writes.
type htmlControl struct {
	doc *goquery.Document
	sel *goquery.Selection

	value      string
	valueSet   bool
	checked    bool
	checkedSet bool

	// Events lists the event names dispatched against this control, in order.
	Events []string
}

func (c *htmlControl) Tag() string {
	return strings.ToLower(goquery.NodeName(c.sel))
}

func (c *htmlControl) Type() string {
	return strings.ToLower(c.sel.AttrOr("type", ""))
}

func (c *htmlControl) Attr(name string) string {
	return c.sel.AttrOr(name, "")
}

// LabelText resolves the control's visible label. It checks, in order, a
// label element targeting the control's id, a wrapping label, an aria-label
// attribute, an aria-labelledby reference, and finally a label or span
// immediately preceding the control.
func (c *htmlControl) LabelText() string {
	if id := c.Attr("id"); id != "" {
		if text, ok := c.labelFor(id); ok {
			return text
		}
	}

	if wrapping := c.sel.ParentsFiltered("label").First(); wrapping.Length() > 0 {
		return cleanText(wrapping.Text())
	}

	if aria := c.Attr("aria-label"); aria != "" {
		return strings.TrimSpace(aria)
	}

	if ref := c.Attr("aria-labelledby"); ref != "" {
		if text, ok := c.elementText(ref); ok {
			return text
		}
	}

	prev := c.sel.Prev()
	if tag := strings.ToLower(goquery.NodeName(prev)); tag == "label" || tag == "span" {
		return cleanText(prev.Text())
	}

	return ""
}

// labelFor finds a label whose for attribute targets the given id. Labels
// are walked rather than queried by selector so ids holding quotes or
// brackets cannot break the lookup.
func (c *htmlControl) labelFor(id string) (string, bool) {
	var text string
	var found bool

	c.doc.Find("label").EachWithBreak(func(_ int, label *goquery.Selection) bool {
		if label.AttrOr("for", "") == id {
			text = cleanText(label.Text())
			found = true

			return false
		}

		return true
	})

	return text, found
}

func (c *htmlControl) elementText(id string) (string, bool) {
	var text string
	var found bool

	c.doc.Find("*").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.AttrOr("id", "") == id {
			text = cleanText(sel.Text())
			found = true

			return false
		}

		return true
	})

	return text, found
}

func (c *htmlControl) Value() string {
	if c.valueSet {
		return c.value
	}

	if c.Tag() == "textarea" {
		return strings.TrimSpace(c.sel.Text())
	}

	return c.Attr("value")
}

func (c *htmlControl) SetValue(v string) error {
	c.value = v
	c.valueSet = true

	switch c.Tag() {
	case "textarea":
		c.sel.SetText(v)
	case "select":
		c.sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
			opt.RemoveAttr("selected")
			if optionValue(opt) == v {
				opt.SetAttr("selected", "selected")
			}
		})
	default:
		c.sel.SetAttr("value", v)
	}

	return nil
}

func (c *htmlControl) Options() []SelectOption {
	if c.Tag() != "select" {
		return nil
	}

	var options []SelectOption

	c.sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		options = append(options, SelectOption{
			Value: optionValue(opt),
			Text:  strings.TrimSpace(opt.Text()),
		})
	})

	return options
}

// optionValue mirrors the DOM's option.value: the value attribute when
// present, the option text otherwise.
func optionValue(opt *goquery.Selection) string {
	if v, ok := opt.Attr("value"); ok {
		return v
	}

	return strings.TrimSpace(opt.Text())
}

func (c *htmlControl) Checked() bool {
	if c.checkedSet {
		return c.checked
	}

	_, checked := c.sel.Attr("checked")

	return checked
}

func (c *htmlControl) Click() error {
	c.checked = !c.Checked()
	c.checkedSet = true
	c.Events = append(c.Events, "click")

	if c.checked {
		c.sel.SetAttr("checked", "checked")
	} else {
		c.sel.RemoveAttr("checked")
	}

	return nil
}

func (c *htmlControl) DispatchEvent(name string) error {
	c.Events = append(c.Events, name)

	return nil
}

func (c *htmlControl) Highlight(HighlightStatus) {}

// cleanText collapses runs of whitespace so multi-line markup yields a single
// readable label.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
