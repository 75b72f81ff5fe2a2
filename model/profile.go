package model

// Demographics holds the candidate's voluntary self-identification answers.
// Every field is free text; the normalize package maps the common phrasings
// onto the vocabulary each platform renders.
type Demographics struct {
	Gender           string `yaml:"gender" json:"gender"`
	Race             string `yaml:"race" json:"race"`
	Hispanic         string `yaml:"hispanic" json:"hispanic"`
	VeteranStatus    string `yaml:"veteran_status" json:"veteran_status"`
	DisabilityStatus string `yaml:"disability_status" json:"disability_status"`
}

// Profile is the candidate record one fill pass reads from. It is built by
// the caller before any adapter runs and is never mutated by the workers.
type Profile struct {
	FullName  string `yaml:"full_name" json:"full_name"`
	FirstName string `yaml:"first_name" json:"first_name"`
	LastName  string `yaml:"last_name" json:"last_name"`
	Email     string `yaml:"email" json:"email"`
	Phone     string `yaml:"phone" json:"phone"`

	// Location is "City, State" as the candidate would type it.
	Location string `yaml:"location" json:"location"`

	LinkedIn  string `yaml:"linkedin" json:"linkedin"`
	GitHub    string `yaml:"github" json:"github"`
	Portfolio string `yaml:"portfolio" json:"portfolio"`

	ResumePath string `yaml:"resume_path" json:"resume_path"`

	// WorkStatus is the dropdown answer for the current work-authorization
	// status question ("U.S. Citizen", "H-1B", ...).
	WorkStatus             string `yaml:"work_status" json:"work_status"`
	AuthorizedToWork       string `yaml:"authorized_to_work" json:"authorized_to_work"`
	NeedsSponsorship       string `yaml:"needs_sponsorship" json:"needs_sponsorship"`
	NeedsSponsorshipFuture string `yaml:"needs_sponsorship_future" json:"needs_sponsorship_future"`
	CanCommute             string `yaml:"can_commute" json:"can_commute"`
	IsVeteran              string `yaml:"is_veteran" json:"is_veteran"`
	YearsExperience        string `yaml:"years_experience" json:"years_experience"`

	// DefaultAnswer is the fallback for yes/no questions the profile has no
	// explicit answer for.
	DefaultAnswer string `yaml:"default_answer" json:"default_answer"`

	Demographics *Demographics `yaml:"demographics,omitempty" json:"demographics,omitempty"`
}
