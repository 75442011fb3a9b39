package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"community_server/internal/service"
	"community_server/pkg/constants"
	"community_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Page HTML 页面渲染
// 渲染前取出当前用户的一次性提示消息，放入模板数据的 Flashes 字段
type Page struct {
	flashSvc service.FlashService
}

func NewPage(flashSvc service.FlashService) *Page {
	return &Page{flashSvc: flashSvc}
}

// HTML 渲染模板
// 模板数据中额外注入 CurrentUserID 与 Flashes
func (p *Page) HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	userID, loggedIn := currentUserID(c)
	data["CurrentUserID"] = userID
	data["LoggedIn"] = loggedIn
	if loggedIn {
		flashes, err := p.flashSvc.Pop(c.Request.Context(), userID)
		if err != nil {
			zap.L().Warn("读取提示消息失败", zap.Uint("user_id", userID), zap.Error(err))
		}
		data["Flashes"] = flashes
	}
	c.HTML(status, name, data)
}

// Error 渲染错误页，HTTP 状态码由错误码决定
func (p *Page) Error(c *gin.Context, err error) {
	var codeErr *errorx.CodeError
	if !errors.As(err, &codeErr) {
		zap.L().Error("system error",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
	}
	status := errorx.HTTPStatus(err)
	p.HTML(c, status, "error.html", gin.H{"Status": status, "Message": userMessage(err)})
}

// NotFound 渲染 404 页面
func (p *Page) NotFound(c *gin.Context) {
	p.Error(c, errorx.New(errorx.CodeNotFound, "페이지를 찾을 수 없습니다."))
}

// Flash 为当前用户追加提示，失败只记录日志
func (p *Page) Flash(c *gin.Context, level, message string) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := p.flashSvc.Add(c.Request.Context(), userID, level, message); err != nil {
		zap.L().Warn("写入提示消息失败", zap.Uint("user_id", userID), zap.Error(err))
	}
}

// currentUserID 读取 JWT 中间件写入的用户 ID
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(constants.CONTEXT_USER_ID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}

// pathID 解析路径中的数字 ID，非法值视为不存在
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// redirectBack 跳回来源页面
// 只接受本站地址，Referer 缺失或指向其他站点时跳转到 fallback
func redirectBack(c *gin.Context, fallback string) {
	target, ok := localPath(c.GetHeader("Referer"), c.Request.Host)
	if !ok {
		target = fallback
	}
	c.Redirect(http.StatusFound, target)
}

// localPath 把 raw 转换为本站内的路径（含查询串）
// raw 带有其他主机、非 http(s) 协议或不是以 / 开头的路径时返回 false
func localPath(raw, host string) (string, bool) {
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", false
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	if u.Host != "" && !strings.EqualFold(u.Host, host) {
		return "", false
	}
	// 拒绝 //evil.com 与 /\evil.com 这类会被浏览器当成其他主机的路径
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.HasPrefix(u.Path, "/\\") {
		return "", false
	}
	target := u.Path
	if u.RawQuery != "" {
		target += "?" + u.RawQuery
	}
	return target, true
}

// userMessage 面向用户的错误提示，不包含底层错误细节
func userMessage(err error) string {
	var codeErr *errorx.CodeError
	if errors.As(err, &codeErr) {
		return codeErr.Msg
	}
	return errorx.ErrServerBusy.Msg
}
