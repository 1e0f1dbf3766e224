package models

import "time"

// GitHubUser holds the public profile counters of a GitHub account
type GitHubUser struct {
	Login       string    `json:"login"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
	Bio         string    `json:"bio"`
	Location    string    `json:"location"`
	HTMLURL     string    `json:"html_url"`
}

// GitHubRepo is a public repository as listed by the GitHub REST API
type GitHubRepo struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Language    string    `json:"language"`
	HTMLURL     string    `json:"html_url"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GitHubActivity combines a user profile with their recently updated repos.
// User is nil when the profile lookup failed.
type GitHubActivity struct {
	Username  string       `json:"username"`
	User      *GitHubUser  `json:"user,omitempty"`
	Repos     []GitHubRepo `json:"repos"`
	FetchedAt time.Time    `json:"fetched_at"`
}
