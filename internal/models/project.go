package models

import (
	"encoding/json"
	"strings"
	"unicode"
)

// Project represents a portfolio project
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
	GitHub      string   `json:"github,omitempty"`
	Demo        string   `json:"demo,omitempty"`
}

// UnmarshalJSON accepts the older "technologies" key as an alias for techStack.
func (p *Project) UnmarshalJSON(data []byte) error {
	type projectAlias Project
	var raw struct {
		projectAlias
		Technologies []string `json:"technologies"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Project(raw.projectAlias)
	if len(p.TechStack) == 0 {
		p.TechStack = raw.Technologies
	}
	return nil
}

// Slug derives a URL-safe identifier from the project title
func (p Project) Slug() string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(p.Title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Highlights returns at most n entries of the tech stack.
func (p Project) Highlights(n int) []string {
	if len(p.TechStack) <= n {
		return p.TechStack
	}
	return p.TechStack[:n]
}
