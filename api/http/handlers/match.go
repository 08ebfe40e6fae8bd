package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/api/http/presenter"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/match"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/profile"
)

// MatchHandler scores caller-supplied (profile, jobs) pairs and serves the
// persisted match history.
type MatchHandler struct {
	matcher *match.Service
	history match.Repository
}

func NewMatchHandler(matcher *match.Service, history match.Repository) *MatchHandler {
	return &MatchHandler{matcher: matcher, history: history}
}

type matchRequest struct {
	ResumeAnalysis *profile.Partial `json:"resumeAnalysis"`
	Jobs           []job.Job        `json:"jobs"`
}

// Match 对简历画像与岗位列表评分，返回匹配度最高的 3 个岗位。
// @Summary 人岗匹配
// @Tags    匹配
// @Accept  json
// @Produce json
// @Param   input body matchRequest true "简历画像 + 岗位列表"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /match [post]
func (h *MatchHandler) Match(c *fiber.Ctx) error {
	var req matchRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "无效的 JSON 请求体")
	}
	if req.ResumeAnalysis == nil {
		return presenter.Error(c, http.StatusBadRequest, "缺少简历分析结果")
	}
	if len(req.Jobs) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "缺少岗位列表或岗位列表为空")
	}

	outcome, err := h.matcher.MatchJobs(c.Context(), req.ResumeAnalysis.Normalize(), req.Jobs)
	if err != nil {
		return mapPipelineError(c, err)
	}
	return presenter.Success(c, http.StatusOK, fiber.Map{
		"data":     outcome.Matches,
		"degraded": outcome.Degraded,
	})
}

// History 返回匹配历史（可按学员过滤），按分数倒序。
// @Summary 匹配历史
// @Tags    匹配
// @Produce json
// @Param   studentId query string false "学员 ID (UUID)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /matches [get]
func (h *MatchHandler) History(c *fiber.Ctx) error {
	if sid := c.Query("studentId"); sid != "" {
		studentID, err := uuid.Parse(sid)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "无效的 studentId")
		}
		entries, err := h.history.ListByStudent(c.Context(), studentID)
		if err != nil {
			return presenter.Error(c, http.StatusInternalServerError, "获取匹配历史失败")
		}
		return presenter.Success(c, http.StatusOK, fiber.Map{"results": entries})
	}

	limit, offset := parseLimitOffset(c, 50)
	entries, err := h.history.ListAll(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "获取匹配历史失败")
	}
	return presenter.Success(c, http.StatusOK, fiber.Map{"results": entries})
}
