package request

// CommentFormRequest 评论表单
type CommentFormRequest struct {
	Content string `form:"content" binding:"required"`
}
