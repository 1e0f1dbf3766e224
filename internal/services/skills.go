package services

// SkillCategory groups related skills under a heading
type SkillCategory struct {
	Name   string
	Icon   string
	Skills []string
}

var skillCategories = []SkillCategory{
	{Name: "Frontend", Icon: IconCode, Skills: []string{"React.js", "HTML5", "CSS3", "JavaScript"}},
	{Name: "Backend", Icon: IconDatabase, Skills: []string{"Node.js", "Java", "Python"}},
	{Name: "Database", Icon: IconDatabase, Skills: []string{"MongoDB", "MySQL", "Firebase"}},
	{Name: "Tools", Icon: IconGitBranch, Skills: []string{"Git", "GitHub", "Figma", "Blender"}},
}

// SkillCategories returns the fixed skill groupings shown on the skills page
func SkillCategories() []SkillCategory {
	out := make([]SkillCategory, len(skillCategories))
	copy(out, skillCategories)
	return out
}
