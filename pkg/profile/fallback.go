package profile

import (
	"regexp"
	"strings"
)

// Labelled-field patterns and keyword dictionaries for resumes we could not
// get structured data for. Deterministic: no network, no randomness.
var (
	reName      = regexp.MustCompile(`(?:姓名|名字)[：:]\s*([^\n]+)`)
	reEducation = regexp.MustCompile(`(?:教育背景|学历|毕业院校)[：:]\s*([^\n]+)`)
	reMajor     = regexp.MustCompile(`(?:专业)[：:]\s*([^\n]+)`)
	reGradYear  = regexp.MustCompile(`(?:毕业年份|毕业时间)[：:]\s*([^\n]+)`)
	reExp       = regexp.MustCompile(`(?:项目经验|工作经历|项目经历)[：:]\s*([^\n]+)`)
	reIntention = regexp.MustCompile(`(?:求职意向|期望岗位|目标职位)[：:]\s*([^\n]+)`)
	reCity      = regexp.MustCompile(`(?:目标城市|期望城市)[：:]\s*([^\n]+)`)
)

var hardSkillTokens = []string{
	"JavaScript", "TypeScript", "React", "Vue", "Python", "Java",
	"Node.js", "SQL", "Git", "Golang", "Docker", "Kubernetes",
}

var softSkillTokens = []string{
	"沟通", "团队协作", "项目管理", "领导力", "学习能力",
}

// HeuristicExtract derives a minimal Profile from raw resume text using fixed
// dictionaries and labelled-field patterns. Used when the model reply cannot
// be normalized into structured data.
func HeuristicExtract(text string) Profile {
	p := Profile{
		Name:           firstMatch(reName, text),
		Education:      firstMatch(reEducation, text),
		Major:          firstMatch(reMajor, text),
		GraduationYear: firstMatch(reGradYear, text),
		HardSkills:     []string{},
		SoftSkills:     []string{},
		Experience:     []string{},
		TargetPosition: firstMatch(reIntention, text),
		TargetCity:     firstMatch(reCity, text),
		Intention:      firstMatch(reIntention, text),
	}
	for _, tok := range hardSkillTokens {
		if containsFold(text, tok) {
			p.HardSkills = append(p.HardSkills, tok)
		}
	}
	for _, tok := range softSkillTokens {
		if strings.Contains(text, tok) {
			p.SoftSkills = append(p.SoftSkills, tok)
		}
	}
	if exp := firstMatch(reExp, text); exp != "" {
		p.Experience = append(p.Experience, exp)
	}
	return p
}

func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
