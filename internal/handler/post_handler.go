package handler

import (
	"fmt"
	"net/http"

	"community_server/internal/dto/request"
	"community_server/internal/service"
	"community_server/pkg/enum/flash/flash_level_enum"
	"community_server/pkg/errorx"

	"github.com/gin-gonic/gin"
)

const postListURL = "/community/posts"

// PostHandler 社区帖子页面
type PostHandler struct {
	postSvc service.PostService
	page    *Page
}

func NewPostHandler(postSvc service.PostService, page *Page) *PostHandler {
	return &PostHandler{postSvc: postSvc, page: page}
}

func postURL(postID uint) string {
	return fmt.Sprintf("/community/posts/%d", postID)
}

// List GET /community/posts
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postSvc.ListPosts()
	if err != nil {
		h.page.Error(c, err)
		return
	}
	h.page.HTML(c, http.StatusOK, "post_list.html", gin.H{"Posts": posts})
}

// CreateForm GET /community/posts/new
func (h *PostHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, request.PostFormRequest{}, 0, "")
}

// Create 发帖
// POST /community/posts/new
func (h *PostHandler) Create(c *gin.Context) {
	userID, _ := currentUserID(c)
	var form request.PostFormRequest
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, form, 0, firstMessage(err))
		return
	}
	if _, err := h.postSvc.CreatePost(userID, form.Title, form.Content); err != nil {
		if errorx.GetCode(err) == errorx.CodeInvalidParam {
			h.renderForm(c, form, 0, userMessage(err))
			return
		}
		h.page.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, postListURL)
}

// UpdateForm GET /community/posts/:id/edit
// 非作者访问时提示并跳回列表
func (h *PostHandler) UpdateForm(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		h.page.NotFound(c)
		return
	}
	userID, _ := currentUserID(c)
	post, err := h.postSvc.GetPostForEdit(userID, postID)
	if err != nil {
		h.handleEditError(c, err)
		return
	}
	h.renderForm(c, request.PostFormRequest{Title: post.Title, Content: post.Content}, postID, "")
}

// Update POST /community/posts/:id/edit
func (h *PostHandler) Update(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		h.page.NotFound(c)
		return
	}
	userID, _ := currentUserID(c)
	// 先校验存在性与作者身份，非作者提交无效表单时同样提示并跳回列表
	if _, err := h.postSvc.GetPostForEdit(userID, postID); err != nil {
		h.handleEditError(c, err)
		return
	}

	var form request.PostFormRequest
	if err := c.ShouldBind(&form); err != nil {
		h.renderForm(c, form, postID, firstMessage(err))
		return
	}
	if err := h.postSvc.UpdatePost(userID, postID, form.Title, form.Content); err != nil {
		if errorx.GetCode(err) == errorx.CodeInvalidParam {
			h.renderForm(c, form, postID, userMessage(err))
			return
		}
		h.handleEditError(c, err)
		return
	}
	c.Redirect(http.StatusFound, postListURL)
}

func (h *PostHandler) handleEditError(c *gin.Context, err error) {
	if errorx.GetCode(err) == errorx.CodeForbidden {
		h.page.Flash(c, flash_level_enum.WARNING, userMessage(err))
		c.Redirect(http.StatusFound, postListURL)
		return
	}
	h.page.Error(c, err)
}

func (h *PostHandler) renderForm(c *gin.Context, form request.PostFormRequest, postID uint, formError string) {
	action := "/community/posts/new"
	if postID != 0 {
		action = fmt.Sprintf("/community/posts/%d/edit", postID)
	}
	h.page.HTML(c, http.StatusOK, "post_form.html", gin.H{
		"Form":      form,
		"Action":    action,
		"Editing":   postID != 0,
		"FormError": formError,
	})
}

// Delete 删除帖子，非作者请求直接跳回列表
// POST /community/posts/:id/delete
func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		h.page.NotFound(c)
		return
	}
	userID, _ := currentUserID(c)
	if _, err := h.postSvc.DeletePost(userID, postID); err != nil {
		h.page.Error(c, err)
		return
	}
	c.Redirect(http.StatusFound, postListURL)
}

// ToggleLike GET /community/posts/:id/like
func (h *PostHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, h.postSvc.ToggleLike)
}

// ToggleBookmark GET /community/posts/:id/bookmark
func (h *PostHandler) ToggleBookmark(c *gin.Context) {
	h.toggle(c, h.postSvc.ToggleBookmark)
}

func (h *PostHandler) toggle(c *gin.Context, action func(userID, postID uint) (bool, error)) {
	postID, ok := pathID(c, "id")
	if !ok {
		h.page.NotFound(c)
		return
	}
	userID, _ := currentUserID(c)
	if _, err := action(userID, postID); err != nil {
		h.page.Error(c, err)
		return
	}
	redirectBack(c, postURL(postID))
}

// Bookmarked GET /community/posts/bookmarked
func (h *PostHandler) Bookmarked(c *gin.Context) {
	userID, _ := currentUserID(c)
	posts, err := h.postSvc.ListBookmarked(userID)
	if err != nil {
		h.page.Error(c, err)
		return
	}
	h.page.HTML(c, http.StatusOK, "bookmarked_posts.html", gin.H{"Posts": posts})
}

// Liked GET /community/posts/liked
func (h *PostHandler) Liked(c *gin.Context) {
	userID, _ := currentUserID(c)
	posts, err := h.postSvc.ListLiked(userID)
	if err != nil {
		h.page.Error(c, err)
		return
	}
	h.page.HTML(c, http.StatusOK, "liked_posts.html", gin.H{"Posts": posts})
}

// Detail 帖子详情，包含评论、点赞数及当前用户与作者的好友关系
// GET /community/posts/:id
func (h *PostHandler) Detail(c *gin.Context) {
	postID, ok := pathID(c, "id")
	if !ok {
		h.page.NotFound(c)
		return
	}
	userID, _ := currentUserID(c)
	data, err := h.postSvc.GetPostDetail(userID, postID)
	if err != nil {
		h.page.Error(c, err)
		return
	}
	h.page.HTML(c, http.StatusOK, "post_detail.html", gin.H{
		"Post":       data.Post,
		"Comments":   data.Comments,
		"LikeCount":  data.LikeCount,
		"Liked":      data.Liked,
		"Bookmarked": data.Bookmarked,
		"Friendship": data.Friendship,
		"IsAuthor":   data.Post.AuthorID == userID,
	})
}
