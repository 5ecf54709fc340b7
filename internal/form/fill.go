package form

import (
	"errors"
	"strings"

	"github.com/mnprivacy/shield/internal/fields"
	"github.com/mnprivacy/shield/internal/letter"
)

// fillOrder fixes the order fields are filled in so reports are stable.
var fillOrder = []fields.FieldType{
	fields.FieldFullName,
	fields.FieldFirstName,
	fields.FieldLastName,
	fields.FieldEmail,
	fields.FieldPhone,
	fields.FieldAddress,
	fields.FieldCity,
	fields.FieldState,
	fields.FieldZip,
	fields.FieldCountry,
}

// checkIntents are the request intents the filler will actively check.
// Access and correction checkboxes are left for the user to decide.
var checkIntents = []fields.RequestIntent{fields.IntentDelete, fields.IntentOptOut}

// FillFailure records a single control the filler could not set.
type FillFailure struct {
	// Field is the field type of the failed control
	Field fields.FieldType `json:"field"`
	// Error is the failure message
	Error string `json:"error"`
}

// FillReport summarizes a fill pass over a page.
type FillReport struct {
	// Filled lists the field types that were written, one entry per control
	Filled []fields.FieldType `json:"filled"`
	// Failed lists per-control failures
	Failed []FillFailure `json:"failed"`
	// CheckedTypes lists the request intents whose checkboxes were checked
	CheckedTypes []fields.RequestIntent `json:"checkedTypes"`
	// TotalFields is the number of distinct field types detected on the page
	TotalFields int `json:"totalFields"`
}

// Fill scans the document and writes the profile into every recognized field.
// Individual control failures are collected in the report, never returned as
// an error, and a select with no matching option is skipped without being
// reported. Delete and opt-out checkboxes are checked when unchecked.
func Fill(doc Document, profile letter.UserInfo) (FillReport, error) {
	if profile == (letter.UserInfo{}) {
		return FillReport{}, ErrNoProfile
	}

	scan := Scan(doc)
	values := profileValues(profile)
	report := FillReport{TotalFields: len(scan.Fields)}

	for _, fieldType := range fillOrder {
		value := values[fieldType]
		if value == "" {
			continue
		}

		for _, ctl := range scan.Fields[fieldType] {
			err := fillControl(ctl, value)
			if errors.Is(err, ErrNoMatchingOption) {
				// A select with no usable option is left untouched.
				continue
			}

			if err != nil {
				report.Failed = append(report.Failed, FillFailure{Field: fieldType, Error: err.Error()})
				ctl.Highlight(HighlightError)

				continue
			}

			report.Filled = append(report.Filled, fieldType)
			ctl.Highlight(HighlightSuccess)
		}
	}

	for _, intent := range checkIntents {
		for _, ctl := range scan.Checkboxes[intent] {
			if ctl.Checked() {
				continue
			}

			if err := ctl.Click(); err != nil {
				continue
			}

			report.CheckedTypes = append(report.CheckedTypes, intent)
			ctl.Highlight(HighlightSuccess)
		}
	}

	return report, nil
}

// profileValues maps field types to the profile values that fill them. Name
// fields split on the first space; the country is always the United States
// since the MCDPA covers Minnesota residents.
func profileValues(profile letter.UserInfo) map[fields.FieldType]string {
	first, last := splitName(profile.Name)

	return map[fields.FieldType]string{
		fields.FieldFullName:  profile.Name,
		fields.FieldFirstName: first,
		fields.FieldLastName:  last,
		fields.FieldEmail:     profile.Email,
		fields.FieldPhone:     profile.Phone,
		fields.FieldAddress:   profile.Address,
		fields.FieldCity:      profile.City,
		fields.FieldState:     profile.State,
		fields.FieldZip:       profile.Zip,
		fields.FieldCountry:   "United States",
	}
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}

	return parts[0], strings.Join(parts[1:], " ")
}

// fillControl writes a value into one control with the event choreography
// framework listeners expect.
func fillControl(ctl Control, value string) error {
	if ctl.Tag() == "select" {
		return fillSelect(ctl, value)
	}

	if f, ok := ctl.(Focusable); ok {
		f.Focus()
	}

	if err := ctl.SetValue(""); err != nil {
		return err
	}

	if err := ctl.SetValue(value); err != nil {
		return err
	}

	for _, event := range []string{"input", "change", "keyup"} {
		if err := ctl.DispatchEvent(event); err != nil {
			return err
		}
	}

	if f, ok := ctl.(Focusable); ok {
		f.Blur()
	}

	return nil
}

// fillSelect picks the option matching the value. It tries an exact match on
// value or text, then a substring match in both directions, then a state
// abbreviation lookup when the control looks like a state selector.
func fillSelect(ctl Control, value string) error {
	options := ctl.Options()
	valueLower := strings.ToLower(value)

	match, ok := findOption(options, func(optValue, optText string) bool {
		return optValue == valueLower || optText == valueLower
	})

	if !ok {
		match, ok = findOption(options, func(optValue, optText string) bool {
			return strings.Contains(optValue, valueLower) ||
				strings.Contains(optText, valueLower) ||
				(optValue != "" && strings.Contains(valueLower, optValue)) ||
				(optText != "" && strings.Contains(valueLower, optText))
		})
	}

	if !ok && strings.Contains(strings.ToLower(ctl.Attr("name")), "state") {
		if alt, exists := stateAbbreviations[valueLower]; exists {
			match, ok = findOption(options, func(optValue, optText string) bool {
				return optValue == alt || optText == alt
			})
		}
	}

	if !ok {
		return ErrNoMatchingOption
	}

	if err := ctl.SetValue(match.Value); err != nil {
		return err
	}

	return ctl.DispatchEvent("change")
}

func findOption(options []SelectOption, match func(value, text string) bool) (SelectOption, bool) {
	for _, opt := range options {
		if match(strings.ToLower(opt.Value), strings.ToLower(strings.TrimSpace(opt.Text))) {
			return opt, true
		}
	}

	return SelectOption{}, false
}
