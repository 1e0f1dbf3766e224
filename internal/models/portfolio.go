package models

import (
	"encoding/json"
	"fmt"
)

// PortfolioData is the profile document served by the data endpoint.
// Every field is optional; a zero value renders as an empty section.
type PortfolioData struct {
	Profile   Profile   `json:"profile"`
	About     About     `json:"about"`
	Skills    SkillList `json:"skills"`
	Projects  []Project `json:"projects"`
	Resume    Resume    `json:"resume"`
	Contact   Contact   `json:"contact"`
	Interests Interests `json:"interests"`
}

// Profile holds the site owner's identity
type Profile struct {
	Name           string `json:"name"`
	Nickname       string `json:"nickname"`
	Tagline        string `json:"tagline"`
	GitHubUsername string `json:"githubUsername"`
	ProfileImage   string `json:"profileImage"`
}

// About holds the bio and education history
type About struct {
	Intro     string      `json:"intro"`
	Education []Education `json:"education"`
}

// Education is a single qualification. Year is absent for ongoing studies.
type Education struct {
	Level string `json:"level"`
	Year  *int   `json:"year,omitempty"`
	Score string `json:"score"`
}

// Resume points at the downloadable resume document
type Resume struct {
	PDF string `json:"pdf"`
}

// Contact holds public contact channels
type Contact struct {
	Emails   []string `json:"emails"`
	GitHub   string   `json:"github"`
	LinkedIn string   `json:"linkedin"`
}

// Interests holds hobbies shown on the interests page
type Interests struct {
	Hobbies []string `json:"hobbies"`
}

// SkillList is a list of skill names. It decodes both plain strings and
// objects of the form {"name": "..."}.
type SkillList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	out := make(SkillList, 0, len(items))
	for i, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			out = append(out, name)
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return fmt.Errorf("skill %d: %w", i, err)
		}
		out = append(out, obj.Name)
	}
	*s = out
	return nil
}

// DisplayName returns the nickname when requested and present, otherwise the name.
func (d *PortfolioData) DisplayName(nickname bool) string {
	if d == nil {
		return ""
	}
	if nickname && d.Profile.Nickname != "" {
		return d.Profile.Nickname
	}
	return d.Profile.Name
}

// PrimaryEmail returns the first listed email or "".
func (d *PortfolioData) PrimaryEmail() string {
	if d == nil || len(d.Contact.Emails) == 0 {
		return ""
	}
	return d.Contact.Emails[0]
}

// TopSkills returns at most n skills
func (d *PortfolioData) TopSkills(n int) []string {
	if d == nil {
		return nil
	}
	if len(d.Skills) <= n {
		return d.Skills
	}
	return d.Skills[:n]
}

// FeaturedProjects returns at most n projects
func (d *PortfolioData) FeaturedProjects(n int) []Project {
	if d == nil {
		return nil
	}
	if len(d.Projects) <= n {
		return d.Projects
	}
	return d.Projects[:n]
}
