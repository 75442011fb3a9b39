// Package post 提供社区帖子的发布、编辑、删除以及点赞/收藏
package post

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"community_server/internal/dao/mysql/repository"
	"community_server/internal/dto/respond"
	"community_server/internal/infrastructure/mq"
	"community_server/internal/model"
	"community_server/pkg/constants"
	"community_server/pkg/enum/activity/activity_type_enum"
	"community_server/pkg/enum/post_reaction/reaction_kind_enum"
	"community_server/pkg/errorx"
)

// ErrPostNotFound 帖子不存在
var ErrPostNotFound = errorx.New(errorx.CodeNotFound, "존재하지 않는 게시글입니다.")

// friendshipReader 查询查看者与作者之间的关系
type friendshipReader interface {
	FriendshipStatus(viewerID, otherID uint) (respond.FriendshipStatus, error)
}

type postService struct {
	repos     *repository.Repositories
	friends   friendshipReader
	publisher mq.Publisher
}

// NewPostService 构造函数
func NewPostService(repos *repository.Repositories, friends friendshipReader, publisher mq.Publisher) *postService {
	return &postService{repos: repos, friends: friends, publisher: publisher}
}

// validate 标题与正文去除空白后均不能为空，标题不超过 POST_TITLE_MAX_LENGTH 个字符
func validate(title, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", "", errorx.New(errorx.CodeInvalidParam, "제목과 내용을 모두 입력해 주세요.")
	}
	if utf8.RuneCountInString(title) > constants.POST_TITLE_MAX_LENGTH {
		return "", "", errorx.Newf(errorx.CodeInvalidParam, "제목은 %d자를 넘을 수 없습니다.", constants.POST_TITLE_MAX_LENGTH)
	}
	return title, content, nil
}

func (s *postService) findPost(postID uint) (*model.CommunityPost, error) {
	post, err := s.repos.Post.FindByID(postID)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return post, nil
}

// ListPosts 全部帖子
func (s *postService) ListPosts() ([]model.CommunityPost, error) {
	posts, err := s.repos.Post.FindAll()
	if err != nil {
		zap.L().Error("查询帖子列表失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return posts, nil
}

// CreatePost 发帖，保存帖子与增加积分在同一事务内
func (s *postService) CreatePost(authorID uint, title, content string) (*model.CommunityPost, error) {
	title, content, err := validate(title, content)
	if err != nil {
		return nil, err
	}

	post := &model.CommunityPost{AuthorID: authorID, Title: title, Content: content}
	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Post.Create(post); err != nil {
			return err
		}
		return txRepos.User.AddParticipationScore(authorID, constants.POST_CREATE_SCORE)
	})
	if err != nil {
		zap.L().Error("发帖失败", zap.Uint("author_id", authorID), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	mq.Emit(s.publisher, mq.ActivityEvent{
		Type:     activity_type_enum.POST_CREATED,
		UserID:   authorID,
		TargetID: post.ID,
	})
	return post, nil
}

// GetPostForEdit 获取待编辑帖子
func (s *postService) GetPostForEdit(editorID, postID uint) (*model.CommunityPost, error) {
	post, err := s.findPost(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != editorID {
		return nil, errorx.ErrForbidden
	}
	return post, nil
}

// UpdatePost 更新标题与正文，仅作者可操作
func (s *postService) UpdatePost(editorID, postID uint, title, content string) error {
	if _, err := s.GetPostForEdit(editorID, postID); err != nil {
		return err
	}
	title, content, err := validate(title, content)
	if err != nil {
		return err
	}
	if err := s.repos.Post.UpdateContent(postID, title, content); err != nil {
		zap.L().Error("更新帖子失败", zap.Uint("post_id", postID), zap.Error(err))
		return errorx.ErrServerBusy
	}
	return nil
}

// DeletePost 删除帖子及其评论与反应
// 非作者请求时不做任何操作
func (s *postService) DeletePost(requesterID, postID uint) (bool, error) {
	post, err := s.findPost(postID)
	if err != nil {
		return false, err
	}
	if post.AuthorID != requesterID {
		zap.L().Info("非作者删除帖子，已忽略", zap.Uint("post_id", postID), zap.Uint("requester_id", requesterID))
		return false, nil
	}

	err = s.repos.Transaction(func(txRepos *repository.Repositories) error {
		if err := txRepos.Comment.DeleteByPost(postID); err != nil {
			return err
		}
		if err := txRepos.Reaction.DeleteByPost(postID); err != nil {
			return err
		}
		return txRepos.Post.Delete(postID)
	})
	if err != nil {
		zap.L().Error("删除帖子失败", zap.Uint("post_id", postID), zap.Error(err))
		return false, errorx.ErrServerBusy
	}
	return true, nil
}

// ToggleLike 切换点赞
// 新增点赞时作者积分 +1（包括给自己点赞），取消点赞时扣回，连续切换两次积分恢复原值
func (s *postService) ToggleLike(userID, postID uint) (bool, error) {
	post, err := s.findPost(postID)
	if err != nil {
		return false, err
	}
	liked, err := s.toggle(post, userID, reaction_kind_enum.LIKE)
	if err != nil {
		return false, err
	}
	if liked {
		mq.Emit(s.publisher, mq.ActivityEvent{
			Type:     activity_type_enum.POST_LIKED,
			UserID:   userID,
			TargetID: postID,
		})
	}
	return liked, nil
}

// ToggleBookmark 切换收藏，不影响积分
func (s *postService) ToggleBookmark(userID, postID uint) (bool, error) {
	post, err := s.findPost(postID)
	if err != nil {
		return false, err
	}
	return s.toggle(post, userID, reaction_kind_enum.BOOKMARK)
}

// toggle 在事务内检查并切换反应，返回切换后的状态
func (s *postService) toggle(post *model.CommunityPost, userID uint, kind int8) (bool, error) {
	var added bool
	err := s.repos.Transaction(func(txRepos *repository.Repositories) error {
		exists, err := txRepos.Reaction.Exists(post.ID, userID, kind)
		if err != nil {
			return err
		}
		if exists {
			removed, err := txRepos.Reaction.Delete(post.ID, userID, kind)
			if err != nil {
				return err
			}
			// 只有真正删掉一行才扣分，避免并发取消重复扣减
			if removed == 1 && kind == reaction_kind_enum.LIKE {
				return txRepos.User.AddParticipationScore(post.AuthorID, -constants.POST_LIKED_SCORE)
			}
			return nil
		}
		inserted, err := txRepos.Reaction.Create(post.ID, userID, kind)
		if err != nil {
			return err
		}
		added = true
		// 并发请求已抢先插入时 inserted 为 0，不重复加分
		if inserted == 1 && kind == reaction_kind_enum.LIKE {
			return txRepos.User.AddParticipationScore(post.AuthorID, constants.POST_LIKED_SCORE)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("切换帖子反应失败",
			zap.Uint("post_id", post.ID),
			zap.Uint("user_id", userID),
			zap.Int8("kind", kind),
			zap.Error(err),
		)
		return false, errorx.ErrServerBusy
	}
	return added, nil
}

// ListLiked 用户点赞过的帖子
func (s *postService) ListLiked(userID uint) ([]model.CommunityPost, error) {
	return s.listByReaction(userID, reaction_kind_enum.LIKE)
}

// ListBookmarked 用户收藏的帖子
func (s *postService) ListBookmarked(userID uint) ([]model.CommunityPost, error) {
	return s.listByReaction(userID, reaction_kind_enum.BOOKMARK)
}

func (s *postService) listByReaction(userID uint, kind int8) ([]model.CommunityPost, error) {
	posts, err := s.repos.Post.FindByReaction(userID, kind)
	if err != nil {
		zap.L().Error("查询反应帖子失败", zap.Uint("user_id", userID), zap.Int8("kind", kind), zap.Error(err))
		return nil, errorx.ErrServerBusy
	}
	return posts, nil
}

// GetPostDetail 帖子详情，不修改任何数据
func (s *postService) GetPostDetail(viewerID, postID uint) (*respond.PostDetailRespond, error) {
	post, err := s.findPost(postID)
	if err != nil {
		return nil, err
	}

	detail := &respond.PostDetailRespond{Post: post}
	if detail.Comments, err = s.repos.Comment.FindByPostID(postID); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if detail.LikeCount, err = s.repos.Reaction.CountByPost(postID, reaction_kind_enum.LIKE); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if detail.Liked, err = s.repos.Reaction.Exists(postID, viewerID, reaction_kind_enum.LIKE); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if detail.Bookmarked, err = s.repos.Reaction.Exists(postID, viewerID, reaction_kind_enum.BOOKMARK); err != nil {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if detail.Friendship, err = s.friends.FriendshipStatus(viewerID, post.AuthorID); err != nil {
		return nil, err
	}
	return detail, nil
}
