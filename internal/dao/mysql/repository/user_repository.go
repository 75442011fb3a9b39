package repository

import (
	"community_server/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户 Repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByID 按主键查找用户
func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 id=%d", id)
	}
	return &user, nil
}

// FindByUsername 按用户名查找用户
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 username=%s", username)
	}
	return &user, nil
}

// Create 创建用户
func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// AddParticipationScore 增加参与积分，delta 可为负，结果不低于 0
// 使用 UpdateColumn 跳过 Hook，避免重复加密密码
func (r *userRepository) AddParticipationScore(id uint, delta int) error {
	expr := gorm.Expr("CASE WHEN participation_score + ? < 0 THEN 0 ELSE participation_score + ? END", delta, delta)
	err := r.db.Model(&model.User{}).Where("id = ?", id).
		UpdateColumn("participation_score", expr).Error
	if err != nil {
		return wrapDBErrorf(err, "更新参与积分 id=%d", id)
	}
	return nil
}
