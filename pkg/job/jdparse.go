package job

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/llm"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/normalize"
)

// Posting is a structured job-description draft extracted from free text.
type Posting struct {
	Title        string  `json:"title"`
	Salary       string  `json:"salary"`
	Description  string  `json:"description"`
	Education    string  `json:"education"`
	Requirements Strings `json:"requirements"`
}

// ParseJDResult carries the draft and whether it came from the regex fallback.
type ParseJDResult struct {
	Posting  Posting `json:"posting"`
	Degraded bool    `json:"degraded"`
}

// JDParser extracts a Posting from arbitrary recruiting text via the LLM,
// degrading to regex extraction when the reply is not parsable.
type JDParser struct {
	llm    llm.ChatModel
	logger *zap.Logger
}

func NewJDParser(model llm.ChatModel, logger *zap.Logger) *JDParser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JDParser{llm: model, logger: logger}
}

const jdSystemPrompt = `你是一个资深的 HR 和招聘专家。请从一段招聘文本中提取以下信息，并以 JSON 格式返回：

{
  "title": "岗位名称（简洁明确，如：高级前端工程师）",
  "salary": "薪资范围（如：25K-40K，如果没有则返回\"面议\"）",
  "description": "岗位描述（整理后的完整描述，去除冗余信息）",
  "education": "最低学历要求（如：本科、硕士、不限等）",
  "requirements": ["要求1", "要求2", "要求3"]
}

返回的必须是有效的 JSON 格式，不要包含任何额外的文字说明。`

func (p *JDParser) Parse(ctx context.Context, jdText string) (ParseJDResult, error) {
	jdText = strings.TrimSpace(jdText)
	if jdText == "" {
		return ParseJDResult{}, ErrValidation("JD 文本不能为空")
	}

	user := fmt.Sprintf("请分析以下招聘文本：\n\n%s", jdText)
	raw, err := p.llm.Ask(ctx, jdSystemPrompt, user, 0.3)
	if err != nil {
		return ParseJDResult{}, fmt.Errorf("JD 解析失败: %w", err)
	}

	var posting Posting
	if err := normalize.UnmarshalObject(raw, &posting); err != nil {
		var nf *normalize.Failure
		if !errors.As(err, &nf) {
			return ParseJDResult{}, err
		}
		p.logger.Warn("jd reply not parsable, using regex extraction")
		return ParseJDResult{Posting: heuristicPosting(jdText), Degraded: true}, nil
	}
	if posting.Requirements == nil {
		posting.Requirements = Strings{}
	}
	if posting.Salary == "" {
		posting.Salary = "面议"
	}
	return ParseJDResult{Posting: posting}, nil
}
