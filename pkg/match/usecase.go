package match

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/llm"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/normalize"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/profile"
)

// MatchOutcome is what the matching flow hands back to the HTTP layer.
type MatchOutcome struct {
	Matches  []Matched `json:"matches"`
	Degraded bool      `json:"degraded"`
}

// Service scores a profile against a catalog via the LLM and reconciles the
// reply. A reply that cannot be normalized degrades to the deterministic
// fallback scorer; upstream failures are surfaced.
type Service struct {
	llm    llm.ChatModel
	logger *zap.Logger
}

func NewService(model llm.ChatModel, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{llm: model, logger: logger}
}

const matchSystemPrompt = `你是一个资深的职业匹配专家。请对比简历和岗位列表，为每个岗位进行严格评分（0-100分）。

评分标准：
1. 专业是否对口（30分）：教育背景与岗位要求的匹配度
2. 技能重合度（40分）：硬技能和软技能与岗位要求的匹配度
3. 项目经验相关性（20分）：项目经验与岗位职责的匹配度
4. 求职意向匹配度（10分）：求职意向与岗位的匹配度

请返回匹配度最高的3个岗位，返回格式必须是有效的 JSON 数组：
[
  {
    "id": "岗位ID",
    "matchScore": 95,
    "recommendation": "推荐理由（50字以内）",
    "gapAnalysis": "差距分析（指出需要提升的方面，50字以内）"
  }
]`

// MatchJobs runs one scoring invocation for (profile, catalog) and returns at
// most TopN reconciled matches. An empty catalog yields an empty outcome.
func (s *Service) MatchJobs(ctx context.Context, p profile.Profile, catalog []job.Job) (MatchOutcome, error) {
	if len(catalog) == 0 {
		return MatchOutcome{Matches: []Matched{}}, nil
	}

	user := buildUserPrompt(p, catalog)
	raw, err := s.llm.Ask(ctx, matchSystemPrompt, user, 0.3)
	if err != nil {
		return MatchOutcome{}, fmt.Errorf("岗位匹配失败: %w", err)
	}

	records, err := s.decodeRecords(raw)
	degraded := false
	if err != nil {
		var nf *normalize.Failure
		if !errors.As(err, &nf) {
			return MatchOutcome{}, err
		}
		s.logger.Warn("match reply not parsable, using fallback scorer",
			zap.Int("catalog_size", len(catalog)),
		)
		records = FallbackScoreAll(p, catalog)
		degraded = true
	}

	return MatchOutcome{Matches: Reconcile(records, catalog), Degraded: degraded}, nil
}

func (s *Service) decodeRecords(raw string) ([]Result, error) {
	msg, err := normalize.Array(raw)
	if err != nil {
		return nil, err
	}
	records, err := adaptRecords(msg)
	if err != nil {
		// valid JSON array of the wrong element shape: same recovery path
		return nil, &normalize.Failure{Raw: raw}
	}
	return records, nil
}

func buildUserPrompt(p profile.Profile, catalog []job.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "简历信息：\n")
	fmt.Fprintf(&b, "- 姓名：%s\n", orDefault(p.Name))
	fmt.Fprintf(&b, "- 教育背景：%s\n", orDefault(p.Education))
	fmt.Fprintf(&b, "- 硬技能：%s\n", joinOrDefault(p.HardSkills))
	fmt.Fprintf(&b, "- 软技能：%s\n", joinOrDefault(p.SoftSkills))
	fmt.Fprintf(&b, "- 项目经验：%s\n", joinOrDefault(p.Experience))
	fmt.Fprintf(&b, "- 求职意向：%s\n", orDefault(p.Intention))

	b.WriteString("\n岗位列表：\n")
	for i, j := range catalog {
		fmt.Fprintf(&b, "\n岗位 %d：\n", i+1)
		fmt.Fprintf(&b, "- ID: %s\n", j.ID)
		fmt.Fprintf(&b, "- 岗位名称：%s\n", j.Position)
		fmt.Fprintf(&b, "- 公司：%s\n", j.Company)
		fmt.Fprintf(&b, "- 岗位描述：%s\n", orDefault(j.Description))
		fmt.Fprintf(&b, "- 岗位要求：%s\n", joinOrDefault(j.Requirements))
	}
	b.WriteString("\n请为这些岗位评分，返回匹配度最高的3个岗位。")
	return b.String()
}

func orDefault(s string) string {
	if strings.TrimSpace(s) == "" {
		return "未提供"
	}
	return s
}

func joinOrDefault(items []string) string {
	if len(items) == 0 {
		return "未提供"
	}
	return strings.Join(items, "、")
}
