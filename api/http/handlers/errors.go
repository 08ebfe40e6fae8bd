package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/api/http/presenter"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/llm/dashscope"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/profile"
)

// mapPipelineError translates domain errors into HTTP responses.
// Validation problems are the caller's fault; upstream failures carry the
// provider message for diagnostics. Normalization failures never reach here:
// they are recovered inside the pipeline via the deterministic fallbacks.
func mapPipelineError(c *fiber.Ctx, err error) error {
	var pve profile.ErrValidation
	if errors.As(err, &pve) {
		return presenter.Error(c, http.StatusBadRequest, pve.Error())
	}
	var jve job.ErrValidation
	if errors.As(err, &jve) {
		return presenter.Error(c, http.StatusBadRequest, jve.Error())
	}
	var ue *dashscope.UpstreamError
	if errors.As(err, &ue) {
		return presenter.Error(c, http.StatusBadGateway, "AI 服务暂时不可用: "+ue.Error())
	}
	if errors.Is(err, dashscope.ErrEmptyCompletion) {
		return presenter.Error(c, http.StatusBadGateway, "AI 服务返回空内容")
	}
	if errors.Is(err, dashscope.ErrMissingCredentials) {
		return presenter.Error(c, http.StatusInternalServerError, "AI 服务未配置")
	}
	return presenter.Error(c, http.StatusInternalServerError, err.Error())
}
