// Package friend 提供好友申请与好友关系
package friend

import (
	"errors"

	"go.uber.org/zap"

	"community_server/internal/dao/mysql/repository"
	"community_server/internal/dto/respond"
	"community_server/internal/infrastructure/mq"
	"community_server/internal/model"
	"community_server/pkg/enum/activity/activity_type_enum"
	"community_server/pkg/enum/friend_request/send_result_enum"
	"community_server/pkg/errorx"
)

// ErrRequestNotFound 申请不存在（或已被处理）
var ErrRequestNotFound = errorx.New(errorx.CodeNotFound, "존재하지 않는 친구 요청입니다.")

type friendService struct {
	repos     *repository.Repositories
	publisher mq.Publisher
}

// NewFriendService 构造函数
func NewFriendService(repos *repository.Repositories, publisher mq.Publisher) *friendService {
	return &friendService{repos: repos, publisher: publisher}
}

// SendRequest 发送好友申请
// 仅检查同方向的重复申请，不检查反向申请与既有好友关系
func (s *friendService) SendRequest(fromUserID uint, toUsername string) (int8, error) {
	to, err := s.repos.User.FindByUsername(toUsername)
	if err != nil {
		if errorx.IsNotFound(err) {
			return 0, errorx.New(errorx.CodeUserNotExist, "존재하지 않는 사용자입니다.")
		}
		zap.L().Error(err.Error())
		return 0, errorx.ErrServerBusy
	}

	exists, err := s.repos.FriendRequest.Exists(fromUserID, to.ID)
	if err != nil {
		zap.L().Error("查询好友申请失败", zap.Error(err))
		return 0, errorx.ErrServerBusy
	}
	if exists {
		return send_result_enum.DUPLICATE, nil
	}

	if err := s.repos.FriendRequest.Create(&model.FriendRequest{FromUserID: fromUserID, ToUserID: to.ID}); err != nil {
		zap.L().Error("创建好友申请失败", zap.Uint("from", fromUserID), zap.Uint("to", to.ID), zap.Error(err))
		return 0, errorx.ErrServerBusy
	}
	return send_result_enum.SENT, nil
}

// loadForRecipient 查找申请并确认操作者为被申请人
func (s *friendService) loadForRecipient(actingUserID, requestID uint) (*model.FriendRequest, error) {
	req, err := s.repos.FriendRequest.FindByID(requestID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, ErrRequestNotFound
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if req.ToUserID != actingUserID {
		return nil, errorx.ErrUnauthorized
	}
	return req, nil
}

// AcceptRequest 接受好友申请
// 双向好友关系与删除申请在同一事务内完成
// 并发重复接受时，后到者删除 0 行并得到 NotFound
func (s *friendService) AcceptRequest(actingUserID, requestID uint) error {
	req, err := s.loadForRecipient(actingUserID, requestID)
	if err != nil {
		return err
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		deleted, err := txRepos.FriendRequest.Delete(req.ID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrRequestNotFound
		}
		if err := txRepos.Friend.Add(req.ToUserID, req.FromUserID); err != nil {
			return err
		}
		return txRepos.Friend.Add(req.FromUserID, req.ToUserID)
	})
	if err != nil {
		if errors.Is(err, ErrRequestNotFound) {
			return err
		}
		zap.L().Error("接受好友申请失败", zap.Uint("request_id", requestID), zap.Error(err))
		return errorx.ErrServerBusy
	}

	mq.Emit(s.publisher, mq.ActivityEvent{
		Type:     activity_type_enum.FRIEND_ACCEPTED,
		UserID:   req.ToUserID,
		TargetID: req.FromUserID,
	})
	return nil
}

// DeclineRequest 拒绝好友申请，仅删除申请
func (s *friendService) DeclineRequest(actingUserID, requestID uint) error {
	req, err := s.loadForRecipient(actingUserID, requestID)
	if err != nil {
		return err
	}
	deleted, err := s.repos.FriendRequest.Delete(req.ID)
	if err != nil {
		zap.L().Error("拒绝好友申请失败", zap.Uint("request_id", requestID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	if deleted == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// FriendshipStatus 查询 viewer 与 other 之间的申请与好友关系
func (s *friendService) FriendshipStatus(viewerID, otherID uint) (respond.FriendshipStatus, error) {
	var status respond.FriendshipStatus
	var err error
	if status.RequestSent, err = s.repos.FriendRequest.Exists(viewerID, otherID); err != nil {
		zap.L().Error(err.Error())
		return status, errorx.ErrServerBusy
	}
	if status.RequestReceived, err = s.repos.FriendRequest.Exists(otherID, viewerID); err != nil {
		zap.L().Error(err.Error())
		return status, errorx.ErrServerBusy
	}
	if status.Friends, err = s.repos.Friend.Exists(viewerID, otherID); err != nil {
		zap.L().Error(err.Error())
		return status, errorx.ErrServerBusy
	}
	return status, nil
}

// GetFriendPage 用户信息及其收到的好友申请
func (s *friendService) GetFriendPage(username string) (*respond.FriendPageRespond, error) {
	user, err := s.repos.User.FindByUsername(username)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeUserNotExist, "존재하지 않는 사용자입니다.")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	requests, err := s.repos.FriendRequest.FindReceived(user.ID)
	if err != nil {
		zap.L().Error("查询收到的好友申请失败", zap.Uint("user_id", user.ID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.FriendPageRespond{User: user, ReceivedRequests: requests}, nil
}
