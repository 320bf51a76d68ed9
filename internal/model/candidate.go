package model

import "strings"

// CandidateRecord holds the raw application data parsed from a Workable
// CSV export. Records are immutable once constructed: a row with neither
// a name nor an email is never turned into a record.
type CandidateRecord struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	JobTitle       string `json:"job_title,omitempty"`
	Headline       string `json:"headline,omitempty"`
	CreationTime   string `json:"creation_time,omitempty"`
	Stage          string `json:"stage,omitempty"`
	Tags           string `json:"tags,omitempty"`
	JobDepartment  string `json:"job_department,omitempty"`
	JobLocation    string `json:"job_location,omitempty"`
	Source         string `json:"source,omitempty"`
	CandidateType  string `json:"candidate_type,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	Summary        string `json:"summary,omitempty"`
	Keywords       string `json:"keywords,omitempty"`
	Educations     string `json:"educations,omitempty"`
	Experiences    string `json:"experiences,omitempty"`
	Skills         string `json:"skills,omitempty"`
	SocialProfiles string `json:"social_profiles,omitempty"`
}

// Identity returns the best human-readable identifier for logging,
// preferring the name over the email.
func (c CandidateRecord) Identity() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Email
}

// LinkedInURL extracts a LinkedIn profile URL from the free-text social
// profiles field. Returns "" when none is present.
func (c CandidateRecord) LinkedInURL() string {
	if c.SocialProfiles == "" {
		return ""
	}
	for _, part := range strings.Fields(strings.ReplaceAll(c.SocialProfiles, ",", " ")) {
		if strings.Contains(strings.ToLower(part), "linkedin.com") {
			return strings.TrimSpace(part)
		}
	}
	return ""
}
