// Package fields classifies form controls on third-party opt-out pages by
// their static attributes and associated label text.
package fields

import "strings"

// FieldType identifies the semantic meaning of a form field.
type FieldType string

const (
	// FieldFirstName identifies given-name inputs
	FieldFirstName FieldType = "firstName"
	// FieldLastName identifies family-name inputs
	FieldLastName FieldType = "lastName"
	// FieldFullName identifies single full-name inputs
	FieldFullName FieldType = "fullName"
	// FieldEmail identifies email address inputs
	FieldEmail FieldType = "email"
	// FieldPhone identifies telephone inputs
	FieldPhone FieldType = "phone"
	// FieldAddress identifies street address inputs
	FieldAddress FieldType = "address"
	// FieldCity identifies city/locality inputs
	FieldCity FieldType = "city"
	// FieldState identifies state/region inputs
	FieldState FieldType = "state"
	// FieldZip identifies postal code inputs
	FieldZip FieldType = "zip"
	// FieldCountry identifies country inputs
	FieldCountry FieldType = "country"
)

// RequestIntent identifies the privacy request category a checkbox or radio
// control represents.
type RequestIntent string

const (
	// IntentDelete covers deletion/erasure controls
	IntentDelete RequestIntent = "delete"
	// IntentOptOut covers do-not-sell and opt-out controls
	IntentOptOut RequestIntent = "optOut"
	// IntentAccess covers access/copy/portability controls
	IntentAccess RequestIntent = "access"
	// IntentCorrect covers correction/rectification controls
	IntentCorrect RequestIntent = "correct"
)

// Signals holds the observable static properties of a single form control.
// Label is the resolved associated label text; resolving it is the caller's
// job so classification stays a pure function.
type Signals struct {
	Name         string
	ID           string
	Placeholder  string
	Autocomplete string
	Type         string
	Label        string
}

// fieldRule defines the match patterns for a single field type. Rules are
// evaluated in declared order and the first match wins, so the ordering of
// fieldRules is part of the classification contract.
type fieldRule struct {
	fieldType    FieldType
	types        []string
	autocomplete []string
	attributes   []string
	labels       []string
}

var fieldRules = []fieldRule{
	{
		fieldType:    FieldFirstName,
		autocomplete: []string{"given-name"},
		attributes:   []string{"first", "fname", "given", "forename"},
		labels:       []string{"first name", "given name", "forename"},
	},
	{
		fieldType:    FieldLastName,
		autocomplete: []string{"family-name"},
		attributes:   []string{"last", "lname", "surname", "family"},
		labels:       []string{"last name", "surname", "family name"},
	},
	{
		fieldType:    FieldFullName,
		autocomplete: []string{"name"},
		attributes:   []string{"name", "fullname", "full_name"},
		labels:       []string{"name", "full name", "your name"},
	},
	{
		fieldType:    FieldEmail,
		types:        []string{"email"},
		autocomplete: []string{"email"},
		attributes:   []string{"email", "mail", "e-mail"},
		labels:       []string{"email", "e-mail", "email address"},
	},
	{
		fieldType:    FieldPhone,
		types:        []string{"tel"},
		autocomplete: []string{"tel"},
		attributes:   []string{"phone", "tel", "mobile", "cell"},
		labels:       []string{"phone", "telephone", "mobile", "cell"},
	},
	{
		fieldType:    FieldAddress,
		autocomplete: []string{"street-address", "address-line1"},
		attributes:   []string{"address", "street", "addr", "address1", "address_line_1"},
		labels:       []string{"address", "street address", "address line 1"},
	},
	{
		fieldType:    FieldCity,
		autocomplete: []string{"address-level2"},
		attributes:   []string{"city", "locality", "town"},
		labels:       []string{"city", "town", "locality"},
	},
	{
		fieldType:    FieldState,
		autocomplete: []string{"address-level1"},
		attributes:   []string{"state", "region", "province"},
		labels:       []string{"state", "province", "region"},
	},
	{
		fieldType:    FieldZip,
		autocomplete: []string{"postal-code"},
		attributes:   []string{"zip", "postal", "postcode", "zipcode"},
		labels:       []string{"zip", "zip code", "postal code", "postcode"},
	},
	{
		fieldType:    FieldCountry,
		autocomplete: []string{"country", "country-name"},
		attributes:   []string{"country"},
		labels:       []string{"country"},
	},
}

// intentRule defines the match patterns for a request intent. Checkbox and
// radio controls rarely carry type or autocomplete hints, so a single token
// list is tested against name, id, value, and label text.
type intentRule struct {
	intent   RequestIntent
	patterns []string
}

var intentRules = []intentRule{
	{intent: IntentDelete, patterns: []string{"delete", "erasure", "remove", "forget"}},
	{intent: IntentOptOut, patterns: []string{"opt-out", "optout", "opt out", "do not sell", "dns", "dnsmpi", "stop selling", "stop sale"}},
	{intent: IntentAccess, patterns: []string{"access", "know", "copy", "download", "portability"}},
	{intent: IntentCorrect, patterns: []string{"correct", "rectify", "update", "fix"}},
}

// ClassifyField determines the field type of a form control. For each field
// type in declared order it checks, in priority order: exact type attribute
// match, autocomplete token containment, substring match against name, id,
// and placeholder, then substring match against the resolved label text.
// The first rule to fire wins. Returns false when nothing matches.
func ClassifyField(s Signals) (FieldType, bool) {
	for _, rule := range fieldRules {
		if containsExact(rule.types, s.Type) {
			return rule.fieldType, true
		}

		if containsAnyToken(s.Autocomplete, rule.autocomplete) {
			return rule.fieldType, true
		}

		if matchesAny(s.Name, rule.attributes) ||
			matchesAny(s.ID, rule.attributes) ||
			matchesAny(s.Placeholder, rule.attributes) {
			return rule.fieldType, true
		}

		if matchesAny(s.Label, rule.labels) {
			return rule.fieldType, true
		}
	}

	return "", false
}

// ClassifyRequest determines the privacy request category of a checkbox or
// radio control by testing name, id, value, and label text against each
// intent's token list in declared order. The first intent to match wins.
func ClassifyRequest(s RequestSignals) (RequestIntent, bool) {
	for _, rule := range intentRules {
		if matchesAny(s.Name, rule.patterns) ||
			matchesAny(s.ID, rule.patterns) ||
			matchesAny(s.Value, rule.patterns) ||
			matchesAny(s.Label, rule.patterns) {
			return rule.intent, true
		}
	}

	return "", false
}

// RequestSignals holds the observable properties of a checkbox/radio control.
type RequestSignals struct {
	Name  string
	ID    string
	Value string
	Label string
}

// matchesAny reports whether any pattern occurs as a case-insensitive
// substring of the input.
func matchesAny(input string, patterns []string) bool {
	if input == "" {
		return false
	}

	lower := strings.ToLower(input)
	for _, p := range patterns {
		if strings.Contains(lower, strings.ToLower(p)) {
			return true
		}
	}

	return false
}

// containsExact reports whether the value equals any entry in the list.
func containsExact(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}

	return false
}

// containsAnyToken reports whether the attribute value contains any of the
// given tokens as a substring.
func containsAnyToken(value string, tokens []string) bool {
	if value == "" {
		return false
	}

	for _, tok := range tokens {
		if strings.Contains(value, tok) {
			return true
		}
	}

	return false
}
