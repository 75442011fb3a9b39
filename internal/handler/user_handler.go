// Package handler 提供 HTTP 请求处理器
// 本文件处理注册、登录与 Token 刷新
package handler

import (
	"net/http"

	"community_server/internal/dto/request"
	"community_server/internal/service"
	"community_server/pkg/constants"
	"community_server/pkg/errorx"
	"community_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// UserHandler 用户请求处理器
type UserHandler struct {
	userSvc service.UserService
	page    *Page
}

func NewUserHandler(userSvc service.UserService, page *Page) *UserHandler {
	return &UserHandler{userSvc: userSvc, page: page}
}

// LoginPage 登录表单
// GET /login?next=/community/chatrooms
func (h *UserHandler) LoginPage(c *gin.Context) {
	h.renderLogin(c, http.StatusOK, "", "")
}

// Register 用户注册
// POST /register
// 请求体: request.RegisterRequest (JSON 或表单)
func (h *UserHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Register(req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// Login 用户名密码登录
// POST /login
// 除 JSON 响应外，Access Token 同时写入 HttpOnly Cookie 供页面请求使用
func (h *UserHandler) Login(c *gin.Context) {
	// 登录页提交的表单走页面流程：失败重新渲染表单，成功跳回 next
	fromPage := c.ContentType() == binding.MIMEPOSTForm

	var req request.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		if fromPage {
			h.renderLogin(c, http.StatusBadRequest, req.Username, firstMessage(err))
			return
		}
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Login(req)
	if err != nil {
		if fromPage {
			status := errorx.HTTPStatus(err)
			if code := errorx.GetCode(err); code == errorx.CodeUserNotExist || code == errorx.CodeInvalidPassword {
				status = http.StatusUnauthorized
			}
			h.renderLogin(c, status, req.Username, userMessage(err))
			return
		}
		HandleError(c, err)
		return
	}
	maxAge := int(jwt.AccessTokenExpiry().Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.ACCESS_TOKEN_COOKIE, data.AccessToken, maxAge, "/", "", c.Request.TLS != nil, true)
	if fromPage {
		c.Redirect(http.StatusFound, h.nextPath(c))
		return
	}
	HandleSuccess(c, data)
}

func (h *UserHandler) renderLogin(c *gin.Context, status int, username, formError string) {
	h.page.HTML(c, status, "login.html", gin.H{
		"Title":     "로그인",
		"Next":      h.nextPath(c),
		"Username":  username,
		"FormError": formError,
	})
}

// nextPath 登录后的返回地址，只接受本站路径，默认回到帖子列表
func (h *UserHandler) nextPath(c *gin.Context) string {
	next := c.Query(constants.LOGIN_NEXT_PARAM)
	if next == "" {
		next = c.PostForm(constants.LOGIN_NEXT_PARAM)
	}
	if target, ok := localPath(next, c.Request.Host); ok && target != constants.LOGIN_PATH {
		return target
	}
	return "/community/posts"
}

// Refresh 使用 Refresh Token 换取新的 Access Token
// POST /auth/refresh
func (h *UserHandler) Refresh(c *gin.Context) {
	var req request.RefreshTokenRequest
	if err := c.ShouldBind(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.userSvc.Refresh(req.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
