package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/api/http/presenter"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
)

type JDHandler struct {
	parser *job.JDParser
}

func NewJDHandler(parser *job.JDParser) *JDHandler { return &JDHandler{parser: parser} }

type parseJDRequest struct {
	JDText string `json:"jdText"`
}

// Parse 从一段招聘文本中提取结构化岗位信息。
// @Summary JD 解析
// @Tags    岗位
// @Accept  json
// @Produce json
// @Param   input body parseJDRequest true "招聘文本"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /jd/parse [post]
func (h *JDHandler) Parse(c *fiber.Ctx) error {
	var req parseJDRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "无效的 JSON 请求体")
	}
	out, err := h.parser.Parse(c.Context(), req.JDText)
	if err != nil {
		return mapPipelineError(c, err)
	}
	return presenter.Success(c, http.StatusOK, fiber.Map{
		"data":     out.Posting,
		"degraded": out.Degraded,
	})
}
