// Package chat 提供两人聊天室的创建、查看与消息发送
// 聊天为请求/响应模式，发送后由页面重新加载读取
package chat

import (
	"sort"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"community_server/internal/dao/mysql/repository"
	"community_server/internal/dto/respond"
	"community_server/internal/infrastructure/mq"
	"community_server/internal/model"
	"community_server/pkg/constants"
	"community_server/pkg/enum/activity/activity_type_enum"
	"community_server/pkg/errorx"
	"community_server/pkg/util/snowflake"
)

// RoomName 由两个用户名生成聊天室名称
// 用户名排序后拼接，与参数顺序无关
func RoomName(a, b string) string {
	names := []string{a, b}
	sort.Strings(names)
	return constants.CHAT_ROOM_PREFIX + strings.Join(names, "_")
}

type chatService struct {
	repos     *repository.Repositories
	publisher mq.Publisher
}

// NewChatService 构造函数
func NewChatService(repos *repository.Repositories, publisher mq.Publisher) *chatService {
	return &chatService{repos: repos, publisher: publisher}
}

// ListChatCandidates 当前用户的好友即为可聊天对象
func (s *chatService) ListChatCandidates(userID uint) ([]model.User, error) {
	friends, err := s.repos.Friend.FindFriends(userID)
	if err != nil {
		zap.L().Error("查询好友列表失败", zap.Uint("user_id", userID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return friends, nil
}

// OpenOrCreateRoom 获取或创建聊天室，并确保双方都是参与者
func (s *chatService) OpenOrCreateRoom(userID uint, otherUsername string) (uint, error) {
	me, err := s.repos.User.FindByID(userID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return 0, errorx.ErrUnauthorized
		}
		zap.L().Error(err.Error())
		return 0, errorx.ErrServerBusy
	}
	other, err := s.repos.User.FindByUsername(otherUsername)
	if err != nil {
		if errorx.IsNotFound(err) {
			return 0, errorx.New(errorx.CodeUserNotExist, "존재하지 않는 사용자입니다.")
		}
		zap.L().Error(err.Error())
		return 0, errorx.ErrServerBusy
	}

	var roomID uint
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		room, err := txRepos.ChatRoom.FirstOrCreateByName(RoomName(me.Username, other.Username))
		if err != nil {
			return err
		}
		// 重复加入为幂等操作
		if err := txRepos.ChatRoom.AddParticipant(room.ID, me.ID); err != nil {
			return err
		}
		if err := txRepos.ChatRoom.AddParticipant(room.ID, other.ID); err != nil {
			return err
		}
		roomID = room.ID
		return nil
	})
	if err != nil {
		zap.L().Error("创建聊天室失败", zap.String("me", me.Username), zap.String("other", other.Username), zap.Error(err))
		return 0, errorx.ErrServerBusy
	}
	return roomID, nil
}

// GetRoom 聊天室详情，不校验查看者是否为参与者
func (s *chatService) GetRoom(viewerID, roomID uint) (*respond.ChatRoomRespond, error) {
	room, err := s.findRoom(roomID)
	if err != nil {
		return nil, err
	}
	participants, err := s.repos.ChatRoom.FindParticipants(roomID)
	if err != nil {
		zap.L().Error("查询聊天室参与者失败", zap.Uint("room_id", roomID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	messages, err := s.repos.Message.FindByRoomID(roomID)
	if err != nil {
		zap.L().Error("查询消息失败", zap.Uint("room_id", roomID), zap.Uint("viewer_id", viewerID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return &respond.ChatRoomRespond{Room: room, Participants: participants, Messages: messages}, nil
}

// SendMessage 发送消息
// 内容去除首尾空白后不能为空，且不超过 MESSAGE_MAX_LENGTH 个字符
func (s *chatService) SendMessage(roomID, senderID uint, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errorx.New(errorx.CodeInvalidParam, "메시지를 입력해 주세요.")
	}
	if utf8.RuneCountInString(content) > constants.MESSAGE_MAX_LENGTH {
		return errorx.Newf(errorx.CodeInvalidParam, "메시지는 %d자를 넘을 수 없습니다.", constants.MESSAGE_MAX_LENGTH)
	}
	if _, err := s.findRoom(roomID); err != nil {
		return err
	}

	msg := &model.Message{
		Uuid:       snowflake.GenerateID(),
		ChatRoomID: roomID,
		SenderID:   senderID,
		Content:    content,
	}
	if err := s.repos.Message.Create(msg); err != nil {
		zap.L().Error("保存消息失败", zap.Uint("room_id", roomID), zap.Error(err))
		return errorx.ErrServerBusy
	}

	mq.Emit(s.publisher, mq.ActivityEvent{
		Type:     activity_type_enum.CHAT_MESSAGE,
		UserID:   senderID,
		TargetID: roomID,
	})
	return nil
}

func (s *chatService) findRoom(roomID uint) (*model.ChatRoom, error) {
	room, err := s.repos.ChatRoom.FindByID(roomID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "존재하지 않는 채팅방입니다.")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return room, nil
}
