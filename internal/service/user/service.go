// Package user 提供用户注册、登录与 Token 刷新
package user

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"go.uber.org/zap"

	"community_server/internal/dao/mysql/repository"
	myredis "community_server/internal/dao/redis"
	"community_server/internal/dto/request"
	"community_server/internal/dto/respond"
	"community_server/internal/model"
	"community_server/pkg/constants"
	"community_server/pkg/errorx"
	"community_server/pkg/util/jwt"
)

// usernamePattern 用户名允许字母、数字及 @ . + - _
var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// userService 用户业务逻辑实现
type userService struct {
	repos *repository.Repositories
	cache myredis.CacheService
}

// NewUserService 构造函数，注入 Repository 与缓存
func NewUserService(repos *repository.Repositories, cache myredis.CacheService) *userService {
	return &userService{repos: repos, cache: cache}
}

// tokenKey Redis 中保存用户当前 Refresh Token ID 的键
func tokenKey(userID uint) string {
	return constants.USER_TOKEN_KEY_PREFIX + strconv.FormatUint(uint64(userID), 10)
}

func formatDate(u *model.User) string {
	year, month, day := u.CreatedAt.Date()
	return fmt.Sprintf("%d.%d.%d", year, month, day)
}

// Register 注册
func (u *userService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if !usernamePattern.MatchString(req.Username) {
		return nil, errorx.New(errorx.CodeInvalidParam, "사용자 이름에는 문자, 숫자와 @/./+/-/_ 만 사용할 수 있습니다.")
	}

	_, err := u.repos.User.FindByUsername(req.Username)
	if err == nil {
		return nil, errorx.New(errorx.CodeUserExist, "이미 사용 중인 사용자 이름입니다.")
	}
	if !errorx.IsNotFound(err) {
		zap.L().Error("查询用户失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	user := &model.User{
		Username:    req.Username,
		Nickname:    req.Nickname,
		Email:       req.Email,
		RawPassword: req.Password,
	}
	if err := u.repos.User.Create(user); err != nil {
		zap.L().Error("创建用户失败", zap.String("username", req.Username), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	return &respond.RegisterRespond{
		ID:        user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Email:     user.Email,
		CreatedAt: formatDate(user),
	}, nil
}

// Login 登录
func (u *userService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := u.repos.User.FindByUsername(req.Username)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "존재하지 않는 사용자입니다.")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeInvalidPassword, "비밀번호가 올바르지 않습니다.")
	}

	userID := strconv.FormatUint(uint64(user.ID), 10)

	// 生成双 Token
	accessToken, err := jwt.GenerateAccessToken(userID)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	refreshToken, tokenID, err := jwt.GenerateRefreshToken(userID)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 将 Refresh Token ID 存入 Redis，新登录会使旧的 Refresh Token 失效
	if err := u.cache.Set(context.Background(), tokenKey(user.ID), tokenID, jwt.RefreshTokenExpiry()); err != nil {
		// 不阻塞登录流程，仅记录日志
		zap.L().Error("存储 Token ID 到 Redis 失败", zap.Error(err))
	}

	return &respond.LoginRespond{
		ID:                 user.ID,
		Username:           user.Username,
		Nickname:           user.Nickname,
		Email:              user.Email,
		ParticipationScore: user.ParticipationScore,
		CreatedAt:          formatDate(user),
		AccessToken:        accessToken,
		RefreshToken:       refreshToken,
	}, nil
}

// Refresh 校验 Refresh Token 及其在 Redis 中登记的 ID，签发新的 Access Token
func (u *userService) Refresh(refreshToken string) (*respond.RefreshTokenRespond, error) {
	claims, err := jwt.ParseToken(refreshToken)
	if err != nil || claims.Subject != jwt.SubjectRefreshToken {
		return nil, errorx.ErrUnauthorized
	}
	id, err := strconv.ParseUint(claims.UserID, 10, 64)
	if err != nil {
		return nil, errorx.ErrUnauthorized
	}

	validTokenID, err := u.cache.Get(context.Background(), tokenKey(uint(id)))
	if err != nil {
		zap.L().Error("读取 Token ID 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	if validTokenID == "" || validTokenID != claims.TokenID {
		return nil, errorx.New(errorx.CodeUnauthorized, "다른 기기에서 로그인되었거나 만료된 세션입니다.")
	}

	accessToken, err := jwt.GenerateAccessToken(claims.UserID)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.RefreshTokenRespond{AccessToken: accessToken}, nil
}
