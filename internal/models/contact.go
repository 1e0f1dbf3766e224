package models

import "strings"

// ContactDraft is the in-progress contact form of a single visitor
type ContactDraft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// IsEmpty reports whether every field is blank
func (d ContactDraft) IsEmpty() bool {
	return strings.TrimSpace(d.Name) == "" &&
		strings.TrimSpace(d.Email) == "" &&
		strings.TrimSpace(d.Message) == ""
}
