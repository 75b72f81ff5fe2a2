package normalize

import "strings"

// Full state name -> USPS abbreviation.
var stateAbbreviations = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR",
	"california": "CA", "colorado": "CO", "connecticut": "CT",
	"delaware": "DE", "florida": "FL", "georgia": "GA", "hawaii": "HI",
	"idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA",
	"kansas": "KS", "kentucky": "KY", "louisiana": "LA", "maine": "ME",
	"maryland": "MD", "massachusetts": "MA", "michigan": "MI",
	"minnesota": "MN", "mississippi": "MS", "missouri": "MO",
	"montana": "MT", "nebraska": "NE", "nevada": "NV",
	"new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
	"new york": "NY", "north carolina": "NC", "north dakota": "ND",
	"ohio": "OH", "oklahoma": "OK", "oregon": "OR", "pennsylvania": "PA",
	"rhode island": "RI", "south carolina": "SC", "south dakota": "SD",
	"tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "west virginia": "WV",
	"wisconsin": "WI", "wyoming": "WY",
}

// CityState splits a "City, State" location on its first comma. Either part
// may come back empty.
func CityState(location string) (string, string) {
	city, state, found := strings.Cut(location, ",")
	if !found {
		return strings.TrimSpace(location), ""
	}
	return strings.TrimSpace(city), strings.TrimSpace(state)
}

// StateCandidates extracts the state token from a "City, State" location and
// returns the forms a state dropdown might render, most specific first:
// the token as written plus its two-letter abbreviation when the token is a
// full state name. A location without a comma yields nothing.
func StateCandidates(location string) []string {
	_, state := CityState(location)
	if state == "" {
		return nil
	}

	if abbr, ok := stateAbbreviations[strings.ToLower(state)]; ok {
		return []string{state, abbr}
	}
	return []string{state}
}
