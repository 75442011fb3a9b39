package handler

import (
	"net/http"

	"community_server/internal/dto/request"
	"community_server/internal/service"
	"community_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

// CommentHandler 帖子评论
type CommentHandler struct {
	commentSvc service.CommentService
	page       *Page
}

func NewCommentHandler(commentSvc service.CommentService, page *Page) *CommentHandler {
	return &CommentHandler{commentSvc: commentSvc, page: page}
}

// Create 发表评论，无论表单是否有效都跳回帖子详情
// POST /community/posts/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		h.page.NotFound(c)
		return
	}
	userID, _ := currentUserID(c)

	var form request.CommentFormRequest
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, postURL(postID))
		return
	}
	if _, err := h.commentSvc.CreateComment(userID, postID, form.Content); err != nil && errorx.GetCode(err) != errorx.CodeInvalidParam {
		h.page.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(postID))
}

// Delete 删除评论，非作者请求直接跳回帖子详情
// POST /community/posts/:id/comments/:comment_id/delete
func (h *CommentHandler) Delete(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		h.page.NotFound(c)
		return
	}
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		h.page.NotFound(c)
		return
	}
	userID, _ := currentUserID(c)
	if _, err := h.commentSvc.DeleteComment(userID, postID, commentID); err != nil {
		h.page.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, postURL(postID))
}
