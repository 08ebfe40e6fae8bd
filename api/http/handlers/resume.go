package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/api/http/presenter"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/document"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/match"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/profile"
)

// ResumeHandler runs the full pipeline: extract text, parse the profile,
// score against the active catalog, persist, respond.
type ResumeHandler struct {
	parser   *profile.ParseService
	matcher  *match.Service
	students profile.Store
	jobs     job.UseCase
	matches  match.Repository
	logger   *zap.Logger
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(
	parser *profile.ParseService,
	matcher *match.Service,
	students profile.Store,
	jobs job.UseCase,
	matches match.Repository,
	logger *zap.Logger,
) *ResumeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResumeHandler{
		parser:   parser,
		matcher:  matcher,
		students: students,
		jobs:     jobs,
		matches:  matches,
		logger:   logger,
		maxBytes: 15 << 20, // 15MB
	}
}

type analyzeResponse struct {
	Success   bool            `json:"success"`
	StudentID string          `json:"studentId,omitempty"`
	Profile   profile.Profile `json:"profile"`
	Matches   []match.Matched `json:"matches"`
	Degraded  bool            `json:"degraded"`
}

// Analyze 接收简历文件（PDF/DOC/DOCX），提取文本、解析画像并与在招岗位匹配。
// @Summary 简历分析与岗位匹配
// @Tags    简历
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "简历文件（PDF 或 Word）"
// @Success 200 {object} analyzeResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resume/analyze [post]
func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "未找到上传的文件")
	}
	mimeType := fh.Header.Get("Content-Type")
	if document.DetectKind(fh.Filename, mimeType) == document.KindUnknown {
		return presenter.Error(c, http.StatusBadRequest, "不支持的文件格式，请上传 PDF 或 Word 文档")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "无法读取上传的文件")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	text, err := document.Extract(fh.Filename, mimeType, data)
	if err != nil {
		switch {
		case errors.Is(err, document.ErrUnsupportedFormat):
			return presenter.Error(c, http.StatusBadRequest, "不支持的文件格式，请上传 PDF 或 Word 文档")
		case errors.Is(err, document.ErrEmptyContent):
			return presenter.Error(c, http.StatusBadRequest, "文件内容为空，无法解析")
		default:
			return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("文件解析失败: %v", err))
		}
	}

	return h.parseAndMatch(c, text)
}

type parseTextRequest struct {
	Content string `json:"content"`
}

// ParseText 接收纯文本简历内容，解析画像并与在招岗位匹配。
// @Summary 文本简历解析与匹配
// @Tags    简历
// @Accept  json
// @Produce json
// @Param   input body parseTextRequest true "简历文本"
// @Success 200 {object} analyzeResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /resume/parse [post]
func (h *ResumeHandler) ParseText(c *fiber.Ctx) error {
	var req parseTextRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "无效的 JSON 请求体")
	}
	if req.Content == "" {
		return presenter.Error(c, http.StatusBadRequest, "简历内容不能为空")
	}
	return h.parseAndMatch(c, req.Content)
}

// parseAndMatch is the sequential pipeline shared by both entry points:
// parse profile → store student → match active jobs → persist results.
func (h *ResumeHandler) parseAndMatch(c *fiber.Ctx, text string) error {
	parsed, err := h.parser.Parse(c.Context(), text)
	if err != nil {
		return mapPipelineError(c, err)
	}

	rec := profile.Record{ID: uuid.New(), Profile: parsed.Profile, RawText: text}
	if err := h.students.Save(c.Context(), rec); err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "保存学员信息失败")
	}

	catalog, err := h.jobs.ListActive(c.Context())
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "获取岗位列表失败")
	}

	outcome := match.MatchOutcome{Matches: []match.Matched{}}
	if len(catalog) > 0 {
		outcome, err = h.matcher.MatchJobs(c.Context(), parsed.Profile, catalog)
		if err != nil {
			return mapPipelineError(c, err)
		}
		if err := h.matches.SaveBatch(c.Context(), rec.ID, outcome.Matches); err != nil {
			// history is best-effort; the caller still gets the matches
			h.logger.Warn("failed to persist match results", zap.Error(err))
		}
	}

	return presenter.JSON(c, http.StatusOK, analyzeResponse{
		Success:   true,
		StudentID: rec.ID.String(),
		Profile:   parsed.Profile,
		Matches:   outcome.Matches,
		Degraded:  parsed.Degraded || outcome.Degraded,
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("读取文件失败: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("文件过大，限制为 %d 字节", max)
	}
	return b, nil
}
