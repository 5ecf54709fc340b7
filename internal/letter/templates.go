package letter

// Letter text follows the Minnesota Attorney General's MCDPA template
// letters (325M.14 subd. 1(b)-(h)).

// TypeContent holds the template fragments associated with one request type.
type TypeContent struct {
	// Subject is the type-specific subject line
	Subject string
	// Citation is the statutory subdivision the request relies on
	Citation string
	// Label is the short human name shown in UIs
	Label string
	// Summary is the one-line bullet used in the request summary block
	Summary string
	// Paragraph is the legal paragraph inserted into the letter body
	Paragraph string
	// RequiresInput marks types that need free-text elaboration
	RequiresInput bool
	// InputPrompt is shown when collecting the free-text elaboration
	InputPrompt string
	// Placeholder is the bracketed token replaced by the user's free text
	Placeholder string
}

// typeContents maps each request type to its template fragments.
var typeContents = map[RequestType]TypeContent{
	RequestRightToKnow: {
		Subject:  "Right to Confirm and Access Personal Data",
		Citation: "subd. 1(b) (see also subd. 2)",
		Label:    "Right to Know",
		Summary:  "Confirm whether you process my data and provide categories",
		Paragraph: `I am writing pursuant to my rights under Minnesota Statutes section 325M.14, subd. 1(b) to request that you tell me whether your organization is processing personal data concerning me.

If your organization is processing personal data concerning me, please provide me with the categories of data that your organization is processing concerning me.`,
	},
	RequestCorrection: {
		Subject:  "Correction of Inaccurate Personal Data",
		Citation: "subd. 1(c) (see also subd. 3)",
		Label:    "Correction",
		Summary:  "Correct inaccurate personal data",
		Paragraph: `I am writing pursuant to my rights under Minnesota Statutes section 325M.14, subd. 1(c) to request that you correct inaccurate personal data concerning me.

I am requesting the following corrections:

[CORRECTION_DETAILS]`,
		RequiresInput: true,
		InputPrompt:   "Please describe what information is inaccurate and what the correct information should be:",
		Placeholder:   "[CORRECTION_DETAILS]",
	},
	RequestDeletion: {
		Subject:   "Deletion of Personal Data",
		Citation:  "subd. 1(d) (see also subd. 4)",
		Label:     "Deletion",
		Summary:   "Delete all personal data you hold about me",
		Paragraph: `I am writing pursuant to my rights under Minnesota Statutes section 325M.14, subd. 1(d) to request that you delete all personal data concerning me that you hold, control, or process.`,
	},
	RequestPortability: {
		Subject:  "Data Portability Request",
		Citation: "subd. 1(e) (see also subd. 5)",
		Label:    "Portability",
		Summary:  "Provide a copy of my data in portable format",
		Paragraph: `I am writing pursuant to my rights under Minnesota Statutes section 325M.14, subd. 1(e) to request that you provide me with a copy of all personal data that you hold, control, or process which has been provided to you previously by, and is concerning me.

Please provide this data in a portable and, to the extent technically feasible, readily usable format that allows me to transmit the data to another controller without hindrance.`,
	},
	RequestOptOut: {
		Subject:  "Opt-Out Request",
		Citation: "subd. 1(f) (see also subd. 6)",
		Label:    "Opt-Out",
		Summary:  "Opt out of sale, targeted advertising, and profiling",
		Paragraph: `I am writing pursuant to my rights under Minnesota Statutes section 325M.14, subd. 1(f) to opt out of the following:

• The processing of personal data concerning me for purposes of targeted advertising.
• The sale of personal data concerning me.
• The use of personal data in profiling in furtherance of automated decisions that produce legal effects (or similarly significant effects) concerning me.

Note: Under Minnesota law, you are also required to honor universal opt-out mechanisms such as Global Privacy Control (GPC). Please ensure your systems recognize and respect such signals.`,
	},
	RequestProfilingInfo: {
		Subject:  "Request Regarding Profiling Decision",
		Citation: "subd. 1(g) (see also subd. 7)",
		Label:    "Profiling Information",
		Summary:  "Provide information about a profiling decision",
		Paragraph: `I am writing pursuant to my rights under Minnesota Statutes section 325M.14, subd. 1(g) regarding your recent profiling decision that was made using personal data concerning me.

Specifically, I write regarding the following profiling decision:

[PROFILING_DECISION_DETAILS]

I ask that you provide the following information:

• A full explanation of the reasons that the profiling resulted in this decision.
• A description of what actions I might have taken to secure a different result.
• A description of what actions I might take in the future to obtain a different result from the profiling.
• A copy of the personal data you used in the profiling action.

I would also like to contest and request review of the outcome of this profiling action and/or opt out of profiling in furtherance of these decisions in the future.`,
		RequiresInput: true,
		InputPrompt:   "Please describe the specific profiling decision you are challenging (e.g., denied credit, insurance rate increase, etc.):",
		Placeholder:   "[PROFILING_DECISION_DETAILS]",
	},
	RequestThirdPartyList: {
		Subject:  "Request for List of Third Parties",
		Citation: "subd. 1(h) (see also subd. 8)",
		Label:    "Third-Party List",
		Summary:  "Provide list of third parties who received my data",
		Paragraph: `I am writing pursuant to my rights under Minnesota Statutes section 325M.14, subd. 1(h) to request that you provide me with a list of specific third parties to which you have disclosed the personal data concerning me.

If your organization does not maintain data with sufficient specificity to determine where the above-specified data was transferred, I ask that you provide me with a list of specific third parties to whom you have disclosed any consumers' personal data.`,
	},
}

// ContentFor returns the template fragments for a request type. Unknown
// types get a generic subject and no paragraph.
func ContentFor(rt RequestType) TypeContent {
	if c, ok := typeContents[rt]; ok {
		return c
	}

	return TypeContent{Subject: "Consumer Data Privacy Request"}
}
