// Package repository 提供数据访问层的具体实现
// 本文件实现帖子、点赞/收藏、评论相关的数据库操作
package repository

import (
	"community_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// postRepository PostRepository 接口的实现
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建 PostRepository 实例
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// FindByID 按主键查找帖子（含作者）
func (r *postRepository) FindByID(id uint) (*model.CommunityPost, error) {
	var post model.CommunityPost
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询帖子 id=%d", id)
	}
	return &post, nil
}

// FindAll 查找全部帖子，最新在前
func (r *postRepository) FindAll() ([]model.CommunityPost, error) {
	var posts []model.CommunityPost
	if err := r.db.Preload("Author").
		Order("date_posted DESC, id DESC").
		Find(&posts).Error; err != nil {
		return nil, wrapDBError(err, "查询帖子列表")
	}
	return posts, nil
}

// FindByReaction 查找用户点赞或收藏过的帖子
// kind: 0=点赞, 1=收藏
func (r *postRepository) FindByReaction(userID uint, kind int8) ([]model.CommunityPost, error) {
	var posts []model.CommunityPost
	if err := r.db.Preload("Author").
		Joins("JOIN post_reaction ON post_reaction.post_id = community_post.id").
		Where("post_reaction.user_id = ? AND post_reaction.kind = ?", userID, kind).
		Order("community_post.date_posted DESC, community_post.id DESC").
		Find(&posts).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户反应帖子 user_id=%d kind=%d", userID, kind)
	}
	return posts, nil
}

// Create 创建帖子
func (r *postRepository) Create(post *model.CommunityPost) error {
	if err := r.db.Omit(clause.Associations).Create(post).Error; err != nil {
		return wrapDBError(err, "创建帖子")
	}
	return nil
}

// UpdateContent 更新标题与正文
func (r *postRepository) UpdateContent(id uint, title, content string) error {
	err := r.db.Model(&model.CommunityPost{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "content": content}).Error
	if err != nil {
		return wrapDBErrorf(err, "更新帖子 id=%d", id)
	}
	return nil
}

// Delete 删除帖子
func (r *postRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.CommunityPost{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除帖子 id=%d", id)
	}
	return nil
}

// reactionRepository ReactionRepository 接口的实现
type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository 创建 ReactionRepository 实例
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// Exists 判断用户是否已点赞/收藏
func (r *reactionRepository) Exists(postID, userID uint, kind int8) (bool, error) {
	var count int64
	if err := r.db.Model(&model.PostReaction{}).
		Where("post_id = ? AND user_id = ? AND kind = ?", postID, userID, kind).
		Count(&count).Error; err != nil {
		return false, wrapDBErrorf(err, "查询反应 post=%d user=%d kind=%d", postID, userID, kind)
	}
	return count > 0, nil
}

// Create 添加点赞/收藏，唯一索引冲突时不插入，返回实际插入行数
func (r *reactionRepository) Create(postID, userID uint, kind int8) (int64, error) {
	row := model.PostReaction{PostID: postID, UserID: userID, Kind: kind}
	result := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row)
	if result.Error != nil {
		return 0, wrapDBErrorf(result.Error, "添加反应 post=%d user=%d kind=%d", postID, userID, kind)
	}
	return result.RowsAffected, nil
}

// Delete 取消点赞/收藏，返回实际删除行数
func (r *reactionRepository) Delete(postID, userID uint, kind int8) (int64, error) {
	result := r.db.Where("post_id = ? AND user_id = ? AND kind = ?", postID, userID, kind).
		Delete(&model.PostReaction{})
	if result.Error != nil {
		return 0, wrapDBErrorf(result.Error, "删除反应 post=%d user=%d kind=%d", postID, userID, kind)
	}
	return result.RowsAffected, nil
}

// CountByPost 统计反应数量
func (r *reactionRepository) CountByPost(postID uint, kind int8) (int64, error) {
	var count int64
	if err := r.db.Model(&model.PostReaction{}).
		Where("post_id = ? AND kind = ?", postID, kind).
		Count(&count).Error; err != nil {
		return 0, wrapDBErrorf(err, "统计反应 post=%d kind=%d", postID, kind)
	}
	return count, nil
}

// DeleteByPost 删除帖子的全部反应
func (r *reactionRepository) DeleteByPost(postID uint) error {
	if err := r.db.Where("post_id = ?", postID).Delete(&model.PostReaction{}).Error; err != nil {
		return wrapDBErrorf(err, "删除帖子反应 post=%d", postID)
	}
	return nil
}

// commentRepository CommentRepository 接口的实现
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建 CommentRepository 实例
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// FindByID 按主键查找评论
func (r *commentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询评论 id=%d", id)
	}
	return &comment, nil
}

// FindByPostID 查找帖子评论，最早在前
func (r *commentRepository) FindByPostID(postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询评论 post_id=%d", postID)
	}
	return comments, nil
}

// Create 创建评论
func (r *commentRepository) Create(comment *model.Comment) error {
	if err := r.db.Omit(clause.Associations).Create(comment).Error; err != nil {
		return wrapDBError(err, "创建评论")
	}
	return nil
}

// Delete 删除评论
func (r *commentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Comment{}, id).Error; err != nil {
		return wrapDBErrorf(err, "删除评论 id=%d", id)
	}
	return nil
}

// DeleteByPost 删除帖子的全部评论
func (r *commentRepository) DeleteByPost(postID uint) error {
	if err := r.db.Where("post_id = ?", postID).Delete(&model.Comment{}).Error; err != nil {
		return wrapDBErrorf(err, "删除帖子评论 post_id=%d", postID)
	}
	return nil
}
