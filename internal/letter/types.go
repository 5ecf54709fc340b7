// Package letter assembles Minnesota Consumer Data Privacy Act request
// letters from per-request-type template fragments.
package letter

// RequestType identifies one of the consumer rights under Minn. Stat.
// section 325M.14. The declared order of RequestTypes is the order request
// paragraphs appear in a combined letter.
type RequestType string

const (
	// RequestRightToKnow is the right to confirm processing and access data categories
	RequestRightToKnow RequestType = "right-to-know"
	// RequestCorrection is the right to correct inaccurate personal data
	RequestCorrection RequestType = "correction"
	// RequestDeletion is the right to delete personal data
	RequestDeletion RequestType = "deletion"
	// RequestPortability is the right to a portable copy of personal data
	RequestPortability RequestType = "portability"
	// RequestOptOut is the right to opt out of sale, targeted advertising, and profiling
	RequestOptOut RequestType = "opt-out"
	// RequestProfilingInfo is the right to information about a profiling decision
	RequestProfilingInfo RequestType = "profiling-info"
	// RequestThirdPartyList is the right to a list of third-party recipients
	RequestThirdPartyList RequestType = "third-party-list"
)

// RequestTypes lists all request types in statutory order.
var RequestTypes = []RequestType{
	RequestRightToKnow,
	RequestCorrection,
	RequestDeletion,
	RequestPortability,
	RequestOptOut,
	RequestProfilingInfo,
	RequestThirdPartyList,
}

// StandaloneOnly lists the request types that must be issued as a dedicated
// letter and require free-text elaboration from the requester.
var StandaloneOnly = []RequestType{RequestCorrection, RequestProfilingInfo}

// Valid reports whether rt is a known request type.
func (rt RequestType) Valid() bool {
	for _, t := range RequestTypes {
		if t == rt {
			return true
		}
	}

	return false
}

// Standalone reports whether rt must be issued as its own letter.
func (rt RequestType) Standalone() bool {
	for _, t := range StandaloneOnly {
		if t == rt {
			return true
		}
	}

	return false
}

// UserInfo is the requester identity captured at letter-generation time.
type UserInfo struct {
	// Name is the requester's full legal name
	Name string `json:"name"`
	// Address is the street address
	Address string `json:"address"`
	// City is the city of residence
	City string `json:"city"`
	// State is the two-letter state code
	State string `json:"state"`
	// Zip is the postal code
	Zip string `json:"zip"`
	// Email is the contact email address
	Email string `json:"email"`
	// Phone is an optional contact number
	Phone string `json:"phone,omitempty"`
}

// Empty reports whether no identifying fields are set.
func (u UserInfo) Empty() bool {
	return u.Name == "" && u.Address == "" && u.Email == ""
}

// BrokerCategory tags a data broker by its line of business.
type BrokerCategory string

const (
	CategoryPeopleSearch    BrokerCategory = "people-search"
	CategoryLocation        BrokerCategory = "location"
	CategoryAdvertising     BrokerCategory = "advertising"
	CategoryAggregator      BrokerCategory = "aggregator"
	CategoryBackgroundCheck BrokerCategory = "background-check"
	CategoryFinancial       BrokerCategory = "financial"
	CategoryOther           BrokerCategory = "other"
)

// DataBroker is read-only reference data describing one letter recipient.
type DataBroker struct {
	// ID is the stable directory key
	ID string `json:"id"`
	// Name is the legal entity name
	Name string `json:"name"`
	// DBA is an optional trade name
	DBA string `json:"dba,omitempty"`
	// Email is the privacy contact address
	Email string `json:"email"`
	// Website is the main website URL
	Website string `json:"website"`
	// OptOutURL is a dedicated opt-out portal URL when one exists
	OptOutURL string `json:"optOutUrl,omitempty"`
	// Address is an optional mailing street address
	Address string `json:"address,omitempty"`
	// City is the optional mailing city
	City string `json:"city,omitempty"`
	// State is the optional mailing state
	State string `json:"state,omitempty"`
	// Category tags the broker's line of business
	Category BrokerCategory `json:"category"`
	// CollectsMinorData flags brokers known to hold minors' data
	CollectsMinorData bool `json:"collectsMinorData,omitempty"`
	// CollectsGeolocation flags brokers known to hold precise geolocation
	CollectsGeolocation bool `json:"collectsGeolocation,omitempty"`
}

// Content is the immutable letter artifact produced for one (broker,
// letter-group) pair.
type Content struct {
	// Date is the human-formatted generation date
	Date string `json:"date"`
	// RecipientName is the broker's name
	RecipientName string `json:"recipient_name"`
	// RecipientAddress is the broker's mailing address, possibly empty
	RecipientAddress string `json:"recipient_address"`
	// RecipientEmail is the broker's privacy contact
	RecipientEmail string `json:"recipient_email"`
	// RecipientWebsite is the broker's website
	RecipientWebsite string `json:"recipient_website"`
	// OptOutURL is the broker's opt-out portal when known
	OptOutURL string `json:"opt_out_url,omitempty"`
	// Subject is the letter subject line
	Subject string `json:"subject"`
	// RequestSummary is the bulleted summary of requested rights
	RequestSummary string `json:"request_summary"`
	// Body is the assembled letter text
	Body string `json:"body"`
	// UserInfo is the requester identity snapshot
	UserInfo UserInfo `json:"user_info"`
	// RequestTypes lists the rights this letter covers
	RequestTypes []RequestType `json:"request_types"`
}
