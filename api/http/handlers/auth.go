package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/api/http/presenter"
	"github.com/linchangchun1991/HIGHMAKRCAREER-RESUME-JOB-MATCH/pkg/security/token"
)

// AuthHandler issues demo session tokens. Any non-empty username is accepted;
// there is no account database behind this endpoint.
type AuthHandler struct {
	signer *token.Signer
}

func NewAuthHandler(signer *token.Signer) *AuthHandler {
	return &AuthHandler{signer: signer}
}

type loginRequest struct {
	Username string `json:"username"`
}

// Login 颁发演示用会话令牌。
// @Summary 登录
// @Tags    认证
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "登录信息"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "无效的 JSON 请求体")
	}
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return presenter.Error(c, http.StatusBadRequest, "用户名不能为空")
	}

	tok, err := h.signer.Sign(username)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "登录失败")
	}
	return presenter.Success(c, http.StatusOK, fiber.Map{
		"username": username,
		"token":    tok,
	})
}
