package model

// Go models for the candidate form and the structured CV content that
// backends produce and the renderer consumes.

// CandidateInput is the raw form data for one request. Only Name, Email and
// Phone are required; everything else may be blank.
type CandidateInput struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ProfileURL      string `json:"profile_url,omitempty"`
	Location        string `json:"location,omitempty"`
	Objective       string `json:"objective,omitempty"`
	ExperienceYears string `json:"experience_years,omitempty"`
	WorkHistory     string `json:"work_history,omitempty"`
	Education       string `json:"education,omitempty"`
	Skills          string `json:"skills,omitempty"`
	Languages       string `json:"languages,omitempty"`
}

type Role struct {
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	Period       string   `json:"period"`
	Bullets      []string `json:"bullets"`
}

// Skills buckets are disjoint: a token appears in at most one of them.
type Skills struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
	Tools     []string `json:"tools"`
}

func (s Skills) Empty() bool {
	return len(s.Technical) == 0 && len(s.Soft) == 0 && len(s.Tools) == 0
}

type StructuredCV struct {
	Summary    string `json:"summary"`
	Experience []Role `json:"experience"`
	Skills     Skills `json:"skills"`
}
