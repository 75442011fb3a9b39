package middleware

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"community_server/pkg/constants"
	"community_server/pkg/errorx"
	"community_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// JWTAuth JWT 认证中间件
// 依次从 Authorization: Bearer 头和 access_token Cookie 读取 Access Token，
// 校验通过后将用户 ID（uint）存入上下文。
// 浏览器的页面请求未通过认证时跳转登录页，其余请求返回 401 JSON
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 获取 Token
		token, ok := extractToken(c)
		if !ok {
			abortUnauthorized(c, "请先登录")
			return
		}

		// 2. 验证 Token 及类型
		userID, msg := authenticate(token)
		if msg != "" {
			abortUnauthorized(c, msg)
			return
		}

		// 3. 将用户信息存入上下文，供后续 Handler 使用
		c.Set(constants.CONTEXT_USER_ID, userID)
		c.Next()
	}
}

// OptionalJWTAuth 公开页面使用：Token 有效时写入用户 ID，否则按匿名访问继续
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := extractToken(c); ok {
			if userID, msg := authenticate(token); msg == "" {
				c.Set(constants.CONTEXT_USER_ID, userID)
			}
		}
		c.Next()
	}
}

// authenticate 校验 Access Token，失败时返回提示信息
func authenticate(token string) (uint, string) {
	claims, err := jwt.ParseToken(token)
	if err != nil {
		return 0, "Token 已过期或无效，请重新登录"
	}
	if claims.Subject != jwt.SubjectAccessToken {
		return 0, "请使用 Access Token 访问此接口"
	}
	userID, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil || userID == 0 {
		return 0, "Token 已过期或无效，请重新登录"
	}
	return uint(userID), ""
}

// extractToken 优先读取 Header，其次读取 Cookie
// Header 存在但格式错误时不再回退到 Cookie
func extractToken(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if cookie, err := c.Cookie(constants.ACCESS_TOKEN_COOKIE); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

func abortUnauthorized(c *gin.Context, msg string) {
	if wantsHTML(c) {
		target := constants.LOGIN_PATH + "?" + constants.LOGIN_NEXT_PARAM + "=" + url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, target)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"code": errorx.CodeUnauthorized,
		"msg":  msg,
	})
}

// wantsHTML 判断是否为浏览器发起的页面请求
func wantsHTML(c *gin.Context) bool {
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		return false
	}
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
