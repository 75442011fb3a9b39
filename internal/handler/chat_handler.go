package handler

import (
	"fmt"
	"net/http"

	"community_server/internal/dto/request"
	"community_server/internal/service"
	"community_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// ChatHandler 两人聊天室页面
type ChatHandler struct {
	chatSvc service.ChatService
	page    *Page
}

func NewChatHandler(chatSvc service.ChatService, page *Page) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc, page: page}
}

func roomURL(roomID uint) string {
	return fmt.Sprintf("/community/chatrooms/%d", roomID)
}

// CandidateList 可以发起聊天的好友
// GET /community/chatrooms
func (h *ChatHandler) CandidateList(c *gin.Context) {
	userID, _ := currentUserID(c)
	friends, err := h.chatSvc.ListChatCandidates(userID)
	if err != nil {
		h.page.Error(c, err)
		return
	}
	h.page.HTML(c, http.StatusOK, "chatroom_list.html", gin.H{"Friends": friends})
}

// RoomDetail 聊天室及全部消息
// GET /community/chatrooms/:id
func (h *ChatHandler) RoomDetail(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		h.page.NotFound(c)
		return
	}
	h.renderRoom(c, roomID, "")
}

// PostMessage 发送消息
// POST /community/chatrooms/:id
// 表单无效时重新渲染聊天室页面
func (h *ChatHandler) PostMessage(c *gin.Context) {
	roomID, ok := pathID(c, "id")
	if !ok {
		h.page.NotFound(c)
		return
	}
	userID, _ := currentUserID(c)

	var form request.MessageFormRequest
	if err := c.ShouldBind(&form); err != nil {
		h.renderRoom(c, roomID, firstMessage(err))
		return
	}
	if err := h.chatSvc.SendMessage(roomID, userID, form.Content); err != nil {
		if errorx.GetCode(err) == errorx.CodeInvalidParam {
			h.renderRoom(c, roomID, userMessage(err))
			return
		}
		h.page.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, roomURL(roomID))
}

// Start 打开或创建与指定用户的聊天室
// GET /community/chat/start/:username
func (h *ChatHandler) Start(c *gin.Context) {
	userID, _ := currentUserID(c)
	roomID, err := h.chatSvc.OpenOrCreateRoom(userID, c.Param("username"))
	if err != nil {
		h.page.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, roomURL(roomID))
}

func (h *ChatHandler) renderRoom(c *gin.Context, roomID uint, formError string) {
	userID, _ := currentUserID(c)
	data, err := h.chatSvc.GetRoom(userID, roomID)
	if err != nil {
		h.page.Error(c, err)
		return
	}
	h.page.HTML(c, http.StatusOK, "chatroom_detail.html", gin.H{
		"Room":         data.Room,
		"Participants": data.Participants,
		"Messages":     data.Messages,
		"FormError":    formError,
	})
}

// firstMessage 取绑定错误中的一条提示，用于表单页面展示
func firstMessage(err error) string {
	msgs := validationMessages(err)
	for _, field := range []string{"title", "content"} {
		if m, ok := msgs[field]; ok {
			return m
		}
	}
	for _, m := range msgs {
		return m
	}
	return errorx.ErrInvalidParam.Msg
}
