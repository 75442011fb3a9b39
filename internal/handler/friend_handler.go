package handler

import (
	"net/http"

	"community_server/internal/dto/respond"
	"community_server/internal/service"
	"community_server/internal/service/friend"
	"community_server/pkg/enum/flash/flash_level_enum"
	"community_server/pkg/enum/friend_request/send_result_enum"
	"community_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// FriendHandler 好友申请与好友页面
type FriendHandler struct {
	friendSvc service.FriendService
	page      *Page
}

func NewFriendHandler(friendSvc service.FriendService, page *Page) *FriendHandler {
	return &FriendHandler{friendSvc: friendSvc, page: page}
}

// Send 向指定用户发送好友申请，结果以提示消息展示并跳回来源页面
// GET /community/friend-request/send/:username
func (h *FriendHandler) Send(c *gin.Context) {
	userID, _ := currentUserID(c)
	result, err := h.friendSvc.SendRequest(userID, c.Param("username"))
	if err != nil {
		h.page.Error(c, err)
		return
	}
	switch result {
	case send_result_enum.DUPLICATE:
		h.page.Flash(c, flash_level_enum.WARNING, "이미 친구 요청을 보냈습니다.")
	case send_result_enum.SENT:
		h.page.Flash(c, flash_level_enum.SUCCESS, "친구 요청을 보냈습니다.")
	}
	redirectBack(c, "/")
}

// Accept 接受好友申请
// POST /community/friend-request/:id/accept
func (h *FriendHandler) Accept(c *gin.Context) {
	h.respond(c, h.friendSvc.AcceptRequest, "친구 요청을 수락했습니다.")
}

// Decline 拒绝好友申请
// POST /community/friend-request/:id/decline
func (h *FriendHandler) Decline(c *gin.Context) {
	h.respond(c, h.friendSvc.DeclineRequest, "친구 요청을 거절했습니다.")
}

func (h *FriendHandler) respond(c *gin.Context, action func(actingUserID, requestID uint) error, okMsg string) {
	requestID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, respond.FriendActionRespond{Status: "error", Message: friend.ErrRequestNotFound.Msg})
		return
	}
	userID, _ := currentUserID(c)
	if err := action(userID, requestID); err != nil {
		c.JSON(friendActionStatus(err), respond.FriendActionRespond{Status: "error", Message: userMessage(err)})
		return
	}
	c.JSON(http.StatusOK, respond.FriendActionRespond{Status: "success", Message: okMsg})
}

// friendActionStatus 申请不存在返回 404，非接收方操作仍返回 200
func friendActionStatus(err error) int {
	switch errorx.GetCode(err) {
	case errorx.CodeNotFound:
		return http.StatusNotFound
	case errorx.CodeUnauthorized:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// Page 用户信息与其收到的好友申请
// GET /community/friends/:username
func (h *FriendHandler) Page(c *gin.Context) {
	data, err := h.friendSvc.GetFriendPage(c.Param("username"))
	if err != nil {
		h.page.Error(c, err)
		return
	}
	h.page.HTML(c, http.StatusOK, "friend.html", gin.H{
		"User":             data.User,
		"ReceivedRequests": data.ReceivedRequests,
	})
}
