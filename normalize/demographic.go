package normalize

import "strings"

var genderCanonical = map[string]string{
	"m":                 "Male",
	"male":              "Male",
	"man":               "Male",
	"f":                 "Female",
	"female":            "Female",
	"woman":             "Female",
	"nonbinary":         "Non-binary",
	"non-binary":        "Non-binary",
	"non binary":        "Non-binary",
	"decline":           "Decline to self identify",
	"prefer not to say": "Decline to self identify",
	"decline to answer": "Decline to self identify",
	"decline to state":  "Decline to self identify",
}

var veteranCanonical = map[string]string{
	"no":                "I am not a protected veteran",
	"not a veteran":     "I am not a protected veteran",
	"non-veteran":       "I am not a protected veteran",
	"yes":               "I identify as one or more of the classifications of a protected veteran",
	"veteran":           "I identify as one or more of the classifications of a protected veteran",
	"protected veteran": "I identify as one or more of the classifications of a protected veteran",
	"decline":           "I don't wish to answer",
	"prefer not to say": "I don't wish to answer",
}

var disabilityCanonical = map[string]string{
	"no":                "No, I do not have a disability",
	"yes":               "Yes, I have a disability",
	"decline":           "I do not want to answer",
	"prefer not to say": "I do not want to answer",
}

// Gender maps a shorthand profile answer onto the label EEO dropdowns use.
// Unrecognized answers pass through unchanged so an exact option match can
// still succeed.
func Gender(answer string) string {
	if v, ok := genderCanonical[strings.ToLower(strings.TrimSpace(answer))]; ok {
		return v
	}
	return answer
}

// VeteranStatus maps a shorthand answer onto the standard protected-veteran
// self-identification label.
func VeteranStatus(answer string) string {
	if v, ok := veteranCanonical[strings.ToLower(strings.TrimSpace(answer))]; ok {
		return v
	}
	return answer
}

// DisabilityStatus maps a shorthand answer onto the standard disability
// self-identification label.
func DisabilityStatus(answer string) string {
	if v, ok := disabilityCanonical[strings.ToLower(strings.TrimSpace(answer))]; ok {
		return v
	}
	return answer
}
