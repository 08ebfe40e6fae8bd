package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/api/http/presenter"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/job"
)

type JobsHandler struct {
	uc job.UseCase
}

func NewJobsHandler(uc job.UseCase) *JobsHandler { return &JobsHandler{uc: uc} }

// List 返回岗位列表（按创建时间倒序）。
// @Summary 岗位列表
// @Tags    岗位
// @Produce json
// @Param   limit query int false "每页数量"
// @Param   offset query int false "偏移量"
// @Success 200 {object} map[string]any
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /jobs [get]
func (h *JobsHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	jobs, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "获取岗位列表失败")
	}
	return presenter.Success(c, http.StatusOK, fiber.Map{"jobs": jobs})
}

// Create 新增一个岗位。
// @Summary 新增岗位
// @Tags    岗位
// @Accept  json
// @Produce json
// @Param   input body job.Job true "岗位信息"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /jobs [post]
func (h *JobsHandler) Create(c *fiber.Ctx) error {
	var j job.Job
	if err := c.BodyParser(&j); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "无效的 JSON 请求体")
	}
	created, err := h.uc.Create(c.Context(), j)
	if err != nil {
		return mapPipelineError(c, err)
	}
	return presenter.Success(c, http.StatusCreated, fiber.Map{"id": created.ID})
}

type batchRequest struct {
	Jobs []job.Job `json:"jobs"`
}

// CreateBatch 批量导入岗位，整体在一个事务内完成。
// @Summary 批量导入岗位
// @Tags    岗位
// @Accept  json
// @Produce json
// @Param   input body batchRequest true "岗位列表"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /jobs/batch [post]
func (h *JobsHandler) CreateBatch(c *fiber.Ctx) error {
	var req batchRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "无效的 JSON 请求体")
	}
	count, err := h.uc.CreateBatch(c.Context(), req.Jobs)
	if err != nil {
		return mapPipelineError(c, err)
	}
	return presenter.Success(c, http.StatusCreated, fiber.Map{"count": count})
}

// Get 返回单个岗位。
// @Summary 岗位详情
// @Tags    岗位
// @Produce json
// @Param   id path string true "岗位 ID"
// @Success 200 {object} job.Job
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [get]
func (h *JobsHandler) Get(c *fiber.Ctx) error {
	j, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "岗位不存在")
	}
	return presenter.JSON(c, http.StatusOK, j)
}

// Delete 删除岗位。
// @Summary 删除岗位
// @Tags    岗位
// @Param   id path string true "岗位 ID"
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /jobs/{id} [delete]
func (h *JobsHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return presenter.Error(c, http.StatusNotFound, "岗位不存在")
	}
	return c.SendStatus(http.StatusNoContent)
}
