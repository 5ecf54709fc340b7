package form

// stateAbbreviations maps US state names to postal codes and back, all
// lowercase, so a profile holding either form can match a select that offers
// the other.
var stateAbbreviations = map[string]string{}

func init() {
	states := map[string]string{
		"alabama":              "al",
		"alaska":               "ak",
		"arizona":              "az",
		"arkansas":             "ar",
		"california":           "ca",
		"colorado":             "co",
		"connecticut":          "ct",
		"delaware":             "de",
		"district of columbia": "dc",
		"florida":              "fl",
		"georgia":              "ga",
		"hawaii":               "hi",
		"idaho":                "id",
		"illinois":             "il",
		"indiana":              "in",
		"iowa":                 "ia",
		"kansas":               "ks",
		"kentucky":             "ky",
		"louisiana":            "la",
		"maine":                "me",
		"maryland":             "md",
		"massachusetts":        "ma",
		"michigan":             "mi",
		"minnesota":            "mn",
		"mississippi":          "ms",
		"missouri":             "mo",
		"montana":              "mt",
		"nebraska":             "ne",
		"nevada":               "nv",
		"new hampshire":        "nh",
		"new jersey":           "nj",
		"new mexico":           "nm",
		"new york":             "ny",
		"north carolina":       "nc",
		"north dakota":         "nd",
		"ohio":                 "oh",
		"oklahoma":             "ok",
		"oregon":               "or",
		"pennsylvania":         "pa",
		"rhode island":         "ri",
		"south carolina":       "sc",
		"south dakota":         "sd",
		"tennessee":            "tn",
		"texas":                "tx",
		"utah":                 "ut",
		"vermont":              "vt",
		"virginia":             "va",
		"washington":           "wa",
		"west virginia":        "wv",
		"wisconsin":            "wi",
		"wyoming":              "wy",
	}

	for name, abbr := range states {
		stateAbbreviations[name] = abbr
		stateAbbreviations[abbr] = name
	}
}
