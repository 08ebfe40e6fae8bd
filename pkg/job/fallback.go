package job

import (
	"fmt"
	"regexp"
	"strings"
)

var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`招聘[：:]\s*([^\n]+)`),
	regexp.MustCompile(`岗位[：:]\s*([^\n]+)`),
	regexp.MustCompile(`职位[：:]\s*([^\n]+)`),
	regexp.MustCompile(`([^\n]{2,20}(?:工程师|开发|经理|专员|助理|总监))`),
}

var salaryPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+[Kk万]?\s*[-~至]\s*\d+[Kk万]?)`),
	regexp.MustCompile(`(\d+[Kk万]\+)`),
	regexp.MustCompile(`薪资[：:]\s*([^\n]+)`),
	regexp.MustCompile(`薪酬[：:]\s*([^\n]+)`),
}

var educationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(本科|硕士|博士|专科|不限)`),
	regexp.MustCompile(`学历[：:]\s*([^\n]+)`),
	regexp.MustCompile(`教育背景[：:]\s*([^\n]+)`),
}

var requirementTokens = []string{
	"React", "Vue", "Angular", "TypeScript", "JavaScript",
	"Python", "Java", "Node.js", "前端", "后端", "全栈", "经验",
}

var reYears = regexp.MustCompile(`(\d+)\s*年`)

const maxDescriptionChars = 500

// heuristicPosting derives a minimal Posting from raw JD text with fixed
// patterns. Deterministic, no network.
func heuristicPosting(text string) Posting {
	p := Posting{
		Title:        matchFirst(titlePatterns, text, "待定岗位"),
		Salary:       matchFirst(salaryPatterns, text, "面议"),
		Description:  truncateRunes(text, maxDescriptionChars),
		Education:    matchFirst(educationPatterns, text, "不限"),
		Requirements: Strings{},
	}
	for _, tok := range requirementTokens {
		if strings.Contains(text, tok) {
			p.Requirements = append(p.Requirements, tok)
		}
	}
	if m := reYears.FindStringSubmatch(text); m != nil {
		p.Requirements = append(p.Requirements, fmt.Sprintf("%s年经验", m[1]))
	}
	if len(p.Requirements) > 5 {
		p.Requirements = p.Requirements[:5]
	}
	return p
}

func matchFirst(patterns []*regexp.Regexp, text, def string) string {
	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return def
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
