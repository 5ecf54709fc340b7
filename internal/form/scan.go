package form

import (
	"github.com/samber/lo"

	"github.com/mnprivacy/shield/internal/fields"
)

// skippedInputTypes are input types that never hold user data.
var skippedInputTypes = []string{"hidden", "submit", "button", "image", "reset"}

// ScanResult groups the recognized controls of a page by what they mean.
type ScanResult struct {
	// Fields maps each detected field type to its controls in document order
	Fields map[fields.FieldType][]Control `json:"-"`
	// Checkboxes maps each detected request intent to its controls
	Checkboxes map[fields.RequestIntent][]Control `json:"-"`
}

// HasForm reports whether the page contains at least one fillable field.
func (r ScanResult) HasForm() bool {
	return len(r.Fields) > 0
}

// FieldTypes lists the detected field types.
func (r ScanResult) FieldTypes() []fields.FieldType {
	return lo.Keys(r.Fields)
}

// Intents lists the detected request intents.
func (r ScanResult) Intents() []fields.RequestIntent {
	return lo.Keys(r.Checkboxes)
}

// Scan walks every control of the document and classifies it. Hidden and
// button-like inputs are excluded. Controls that match no rule are ignored
// rather than reported.
func Scan(doc Document) ScanResult {
	result := ScanResult{
		Fields:     map[fields.FieldType][]Control{},
		Checkboxes: map[fields.RequestIntent][]Control{},
	}

	for _, ctl := range doc.Controls() {
		typ := ctl.Type()

		if lo.Contains(skippedInputTypes, typ) {
			continue
		}

		if typ == "checkbox" || typ == "radio" {
			intent, ok := fields.ClassifyRequest(fields.RequestSignals{
				Name:  ctl.Attr("name"),
				ID:    ctl.Attr("id"),
				Value: ctl.Attr("value"),
				Label: ctl.LabelText(),
			})
			if ok {
				result.Checkboxes[intent] = append(result.Checkboxes[intent], ctl)
			}

			continue
		}

		fieldType, ok := fields.ClassifyField(fields.Signals{
			Name:         ctl.Attr("name"),
			ID:           ctl.Attr("id"),
			Placeholder:  ctl.Attr("placeholder"),
			Autocomplete: ctl.Attr("autocomplete"),
			Type:         typ,
			Label:        ctl.LabelText(),
		})
		if ok {
			result.Fields[fieldType] = append(result.Fields[fieldType], ctl)
		}
	}

	return result
}
