package letter

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

// ResponseDeadlineDays is the controller response window under Minn. Stat.
// section 325M.14, subd. 11.
const ResponseDeadlineDays = 45

// paragraphSeparator joins request paragraphs in a combined letter. The PDF
// renderer draws it as a horizontal rule.
const paragraphSeparator = "\n\n---\n\n"

// Split partitions a selection into combinable types and standalone-only
// types, preserving the selection order within each group.
func Split(types []RequestType) (combinable, standalone []RequestType) {
	combinable = lo.Filter(types, func(rt RequestType, _ int) bool { return !rt.Standalone() })
	standalone = lo.Filter(types, func(rt RequestType, _ int) bool { return rt.Standalone() })

	return combinable, standalone
}

// Count returns the number of letters Generate All will produce for the
// given selection: one combined letter per broker when any combinable type
// is selected, plus one letter per standalone type per broker.
func Count(brokerCount int, types []RequestType) int {
	combinable, standalone := Split(types)

	count := 0
	if len(combinable) > 0 {
		count += brokerCount
	}

	count += len(standalone) * brokerCount

	return count
}

// Generate assembles one letter covering the given request types for a
// single broker. Standalone-only types in the selection must carry a
// non-empty entry in inputs; the generator does not enforce this and leaves
// the placeholder token unreplaced when input is missing, so callers
// validate before invoking.
func Generate(broker DataBroker, types []RequestType, user UserInfo, inputs map[RequestType]string) Content {
	now := time.Now()
	date := formatDate(now)

	subject := subjectFor(types)
	summary := requestSummary(types)

	paragraphs := lo.Map(types, func(rt RequestType, _ int) string {
		c := ContentFor(rt)
		p := c.Paragraph

		if c.RequiresInput && inputs[rt] != "" {
			p = strings.ReplaceAll(p, c.Placeholder, inputs[rt])
		}

		return p
	})

	combined := ""

	switch len(paragraphs) {
	case 0:
	case 1:
		combined = paragraphs[0]
	default:
		combined = strings.Join(paragraphs, paragraphSeparator)
	}

	body := fmt.Sprintf(`%s

%s

To whom it may concern:

THIS REQUEST INCLUDES:
%s

---

%s

This request is submitted regarding the following person's data:

Name: %s
Home address: %s, %s, %s %s
Email address: %s

I am making this request pursuant to the Minnesota Consumer Data Privacy Act, Minnesota Statutes sections 325M.10-325M.21 and the terms used herein should be construed as those terms are used in that Act.

Please send a response within %d days consistent with your obligations under Minnesota Statutes section 325M.14, subdivision 11.

LEGAL NOTICE: The Minnesota Attorney General may seek civil penalties of up to $7,500 per violation, plus reasonable attorney's fees and costs. If you deny this request or fail to respond, I have the right to appeal your decision through your internal appeal process, and subsequently file a complaint with the Minnesota Attorney General.

Thank you,

%s
%s`,
		date, broker.Name, summary, combined,
		user.Name, user.Address, user.City, user.State, user.Zip, user.Email,
		ResponseDeadlineDays,
		user.Name, user.Email)

	return Content{
		Date:             date,
		RecipientName:    broker.Name,
		RecipientAddress: mailingAddress(broker),
		RecipientEmail:   broker.Email,
		RecipientWebsite: broker.Website,
		OptOutURL:        broker.OptOutURL,
		Subject:          subject,
		RequestSummary:   summary,
		Body:             body,
		UserInfo:         user,
		RequestTypes:     types,
	}
}

// GenerateAll produces the full letter set for a selection: per broker, one
// combined letter covering every combinable type selected, then one
// standalone letter per standalone-only type selected. Each letter's
// request-type list is either the full combinable subset or exactly one
// standalone type, never a mix.
func GenerateAll(brokers []DataBroker, types []RequestType, user UserInfo, inputs map[RequestType]string) []Content {
	combinable, standalone := Split(types)

	letters := make([]Content, 0, Count(len(brokers), types))

	for _, broker := range brokers {
		if len(combinable) > 0 {
			letters = append(letters, Generate(broker, combinable, user, inputs))
		}

		for _, rt := range standalone {
			letters = append(letters, Generate(broker, []RequestType{rt}, user, inputs))
		}
	}

	return letters
}

// Deadline returns the statutory response deadline for a request sent at t.
func Deadline(t time.Time) time.Time {
	return t.AddDate(0, 0, ResponseDeadlineDays)
}

// subjectFor builds the subject line: the type-specific subject for a
// single-type letter, a generic multiple-rights subject otherwise.
func subjectFor(types []RequestType) string {
	if len(types) == 1 {
		return fmt.Sprintf("MCDPA Request: %s", ContentFor(types[0]).Subject)
	}

	return fmt.Sprintf("MCDPA Request: Multiple Rights (%d requests)", len(types))
}

// requestSummary builds the bulleted THIS REQUEST INCLUDES block.
func requestSummary(types []RequestType) string {
	lines := lo.Map(types, func(rt RequestType, _ int) string {
		return "• " + ContentFor(rt).Summary
	})

	return strings.Join(lines, "\n")
}

// mailingAddress flattens the broker's optional mailing fields.
func mailingAddress(b DataBroker) string {
	if b.Address == "" {
		return ""
	}

	addr := b.Address
	if b.City != "" {
		addr += ", " + b.City
	}

	if b.State != "" {
		addr += ", " + b.State
	}

	return addr
}

// formatDate renders a date the way the letter templates expect,
// e.g. "January 2, 2026".
func formatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
