// Package comment 提供帖子评论的发表与删除
package comment

import (
	"strings"

	"go.uber.org/zap"

	"community_server/internal/dao/mysql/repository"
	"community_server/internal/model"
	"community_server/pkg/errorx"
)

type commentService struct {
	repos *repository.Repositories
}

// NewCommentService 构造函数
func NewCommentService(repos *repository.Repositories) *commentService {
	return &commentService{repos: repos}
}

// CreateComment 发表评论，不影响积分
func (s *commentService) CreateComment(userID, postID uint, content string) (*model.Comment, error) {
	if _, err := s.repos.Post.FindByID(postID); err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "존재하지 않는 게시글입니다.")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "댓글 내용을 입력해 주세요.")
	}

	comment := &model.Comment{PostID: postID, UserID: userID, Content: content}
	if err := s.repos.Comment.Create(comment); err != nil {
		zap.L().Error("保存评论失败", zap.Uint("post_id", postID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return comment, nil
}

// DeleteComment 删除评论，非作者请求时不做任何操作
// 不校验评论是否属于 postID 对应的帖子
func (s *commentService) DeleteComment(requesterID, postID, commentID uint) (bool, error) {
	comment, err := s.repos.Comment.FindByID(commentID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return false, errorx.New(errorx.CodeNotFound, "존재하지 않는 댓글입니다.")
		}
		zap.L().Error(err.Error())
		return false, errorx.ErrServerBusy
	}
	if comment.UserID != requesterID {
		zap.L().Info("非作者删除评论，已忽略",
			zap.Uint("comment_id", commentID),
			zap.Uint("post_id", postID),
			zap.Uint("requester_id", requesterID),
		)
		return false, nil
	}
	if err := s.repos.Comment.Delete(commentID); err != nil {
		zap.L().Error("删除评论失败", zap.Uint("comment_id", commentID), zap.Error(err))
		return false, errorx.ErrServerBusy
	}
	return true, nil
}
