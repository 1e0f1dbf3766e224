package services

import "testing"

func TestTechIcon(t *testing.T) {
	tests := []struct {
		skill string
		want  string
	}{
		{"React.js", "react"},
		{"JavaScript", "javascript"},
		{"Java", "java"},
		{"Node.js", "nodejs"},
		{"HTML5", "html5"},
		{"CSS3", "css3"},
		{"Git", "git"},
		{"GitHub", "github"},
		{"MongoDB", "mongodb"},
		{"Blender", "blender"},
		{"Rust", IconCode},
		{"", IconCode},
	}
	for _, tt := range tests {
		if got := TechIcon(tt.skill); got != tt.want {
			t.Errorf("TechIcon(%q) = %q, want %q", tt.skill, got, tt.want)
		}
	}
}

func TestHobbyIcon(t *testing.T) {
	tests := map[string]string{
		"Music Production": IconMusic,
		"Gaming":           IconGamepad,
		"Watching Anime":   IconHeart,
		"3D Design":        IconPalette,
		"Blender":          IconPalette,
		"Hiking":           IconHeart,
	}
	for hobby, want := range tests {
		if got := HobbyIcon(hobby); got != want {
			t.Errorf("HobbyIcon(%q) = %q, want %q", hobby, got, want)
		}
	}
}

func TestSkillCategoriesReturnsCopy(t *testing.T) {
	cats := SkillCategories()
	if len(cats) != 4 {
		t.Fatalf("len(categories) = %d, want 4", len(cats))
	}
	cats[0].Name = "changed"
	if SkillCategories()[0].Name != "Frontend" {
		t.Fatal("SkillCategories exposed shared state")
	}
}
