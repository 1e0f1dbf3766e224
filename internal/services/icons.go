package services

import "strings"

// Icon keys understood by the templates and stylesheet
const (
	IconCode      = "code"
	IconDatabase  = "database"
	IconGitBranch = "git-branch"
	IconHeart     = "heart"
	IconMusic     = "music"
	IconGamepad   = "gamepad"
	IconPalette   = "palette"
)

type iconRule struct {
	match func(name string) bool
	icon  string
}

func contains(sub string) func(string) bool {
	return func(name string) bool { return strings.Contains(name, sub) }
}

// Order matters: "javascript" must win over "java", "github" over "git".
var techIconRules = []iconRule{
	{contains("react"), "react"},
	{contains("javascript"), "javascript"},
	{contains("node"), "nodejs"},
	{contains("python"), "python"},
	{contains("html"), "html5"},
	{contains("css"), "css3"},
	{func(n string) bool { return strings.Contains(n, "java") && !strings.Contains(n, "javascript") }, "java"},
	{contains("mongodb"), "mongodb"},
	{contains("mysql"), "mysql"},
	{contains("firebase"), "firebase"},
	{func(n string) bool { return strings.Contains(n, "git") && !strings.Contains(n, "github") }, "git"},
	{contains("github"), "github"},
	{contains("blender"), "blender"},
	{contains("figma"), "figma"},
}

// TechIcon picks the icon key for a skill name
func TechIcon(skill string) string {
	name := strings.ToLower(skill)
	for _, rule := range techIconRules {
		if rule.match(name) {
			return rule.icon
		}
	}
	return IconCode
}

// HobbyIcon picks the icon key for a hobby
func HobbyIcon(hobby string) string {
	name := strings.ToLower(hobby)
	switch {
	case strings.Contains(name, "music"):
		return IconMusic
	case strings.Contains(name, "gaming"):
		return IconGamepad
	case strings.Contains(name, "anime"):
		return IconHeart
	case strings.Contains(name, "blender"), strings.Contains(name, "design"):
		return IconPalette
	}
	return IconHeart
}
