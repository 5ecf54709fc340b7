// Package brokers holds the read-only data broker directory consulted when
// generating letters and building opt-out sessions.
package brokers

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/mnprivacy/shield/internal/letter"
)

//go:embed data/brokers.json
var brokerData []byte

// Directory answers lookups over the embedded broker list.
type Directory struct {
	brokers []letter.DataBroker
	byID    map[string]letter.DataBroker
}

// Load parses the embedded directory.
func Load() (*Directory, error) {
	var brokers []letter.DataBroker
	if err := json.Unmarshal(brokerData, &brokers); err != nil {
		return nil, fmt.Errorf("parsing broker directory: %w", err)
	}

	byID := make(map[string]letter.DataBroker, len(brokers))
	for _, b := range brokers {
		if b.ID == "" {
			return nil, fmt.Errorf("%w: broker %q", ErrMissingID, b.Name)
		}

		if _, dup := byID[b.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, b.ID)
		}

		byID[b.ID] = b
	}

	return &Directory{brokers: brokers, byID: byID}, nil
}

// All returns every broker in directory order.
func (d *Directory) All() []letter.DataBroker {
	return d.brokers
}

// Get returns the broker with the given id.
func (d *Directory) Get(id string) (letter.DataBroker, bool) {
	b, ok := d.byID[id]
	return b, ok
}

// Search returns brokers whose name or trade name contains the query,
// case-insensitively. An empty query returns everything.
func (d *Directory) Search(query string) []letter.DataBroker {
	if query == "" {
		return d.brokers
	}

	q := strings.ToLower(query)

	return lo.Filter(d.brokers, func(b letter.DataBroker, _ int) bool {
		return strings.Contains(strings.ToLower(b.Name), q) ||
			strings.Contains(strings.ToLower(b.DBA), q)
	})
}

// ByCategory returns brokers with the given category tag.
func (d *Directory) ByCategory(cat letter.BrokerCategory) []letter.DataBroker {
	return lo.Filter(d.brokers, func(b letter.DataBroker, _ int) bool {
		return b.Category == cat
	})
}

// Queueable filters to brokers that can appear in an opt-out session: those
// with a website or a dedicated opt-out URL to visit. Letter generation does
// not apply this filter; letters can still be emailed or mailed.
func Queueable(brokers []letter.DataBroker) []letter.DataBroker {
	return lo.Filter(brokers, func(b letter.DataBroker, _ int) bool {
		return b.Website != "" || b.OptOutURL != ""
	})
}
