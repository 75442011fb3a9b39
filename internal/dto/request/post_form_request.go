package request

// PostFormRequest 帖子表单（新建与编辑共用）
// 使用位置:
//   - internal/handler/post_handler.go: Create, Update
type PostFormRequest struct {
	Title   string `form:"title" binding:"required,max=200"`
	Content string `form:"content" binding:"required"`
}
