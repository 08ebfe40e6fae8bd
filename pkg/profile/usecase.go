package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/llm"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/normalize"
)

const (
	// Parsing wants deterministic output.
	parseTemperature = 0.3
	maxPromptChars   = 12_000
	previewChars     = 200
)

// ParseResult carries the extracted profile and whether the heuristic
// fallback produced it instead of the model.
type ParseResult struct {
	Profile  Profile `json:"profile"`
	Degraded bool    `json:"degraded"`
	Model    string  `json:"model,omitempty"`
}

// ParseService turns raw resume text into a Profile via the LLM, falling back
// to HeuristicExtract when the reply cannot be normalized. Upstream failures
// are surfaced to the caller, never hidden behind the fallback.
type ParseService struct {
	llm       llm.ChatModel
	modelName string
	logger    *zap.Logger
}

func NewParseService(model llm.ChatModel, modelName string, logger *zap.Logger) *ParseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ParseService{llm: model, modelName: modelName, logger: logger}
}

const parseSystemPrompt = `你是一个资深的职业规划专家。请分析这份简历，提取以下信息并以 JSON 格式返回：
{
  "name": "姓名",
  "education": "教育背景（包括学校、专业、学历）",
  "major": "专业",
  "graduationYear": "毕业年份",
  "skills": {
    "hard": ["硬技能1", "硬技能2"],
    "soft": ["软技能1", "软技能2"]
  },
  "experience": ["项目经验摘要1", "项目经验摘要2"],
  "targetPosition": "目标岗位",
  "targetCity": "目标城市",
  "intention": "求职意向（岗位方向、行业偏好等）"
}

请确保返回的是有效的 JSON 格式，不要包含任何额外的文字说明。空列表返回 []，不要返回 null。`

func (s *ParseService) Parse(ctx context.Context, text string) (ParseResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ParseResult{}, ErrValidation("简历内容为空，无法解析")
	}
	if len(text) > maxPromptChars {
		text = text[:maxPromptChars]
	}

	user := fmt.Sprintf("请分析以下简历内容：\n\n%s", text)
	raw, err := s.llm.Ask(ctx, parseSystemPrompt, user, parseTemperature)
	if err != nil {
		return ParseResult{}, fmt.Errorf("简历解析失败: %w", err)
	}

	var partial Partial
	if err := normalize.UnmarshalObject(raw, &partial); err != nil {
		var nf *normalize.Failure
		if !errors.As(err, &nf) {
			return ParseResult{}, err
		}
		s.logger.Warn("resume reply not parsable, using heuristic extraction",
			zap.String("reply_preview", preview(nf.Raw)),
		)
		return ParseResult{Profile: HeuristicExtract(text), Degraded: true}, nil
	}

	s.logger.Debug("resume parsed from model reply",
		zap.String("model", s.modelName),
		zap.Int("reply_chars", len(raw)),
	)
	return ParseResult{Profile: partial.Normalize(), Model: s.modelName}, nil
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewChars {
		return s
	}
	return string(r[:previewChars]) + "..."
}
