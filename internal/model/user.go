// Package model 定义数据库实体模型
// 本文件定义用户模型，包含登录凭证与参与积分
package model

import (
	"golang.org/x/crypto/bcrypt" // 密码哈希库
	"gorm.io/gorm"
)

// User 用户模型
// 对应数据库 user_info 表
type User struct {
	gorm.Model

	// Username 登录名，全局唯一，同时用于生成聊天室名称
	Username string `gorm:"column:username;uniqueIndex;type:varchar(150);not null;comment:用户名"`

	// Nickname 显示名称，为空时页面显示 Username
	Nickname string `gorm:"column:nickname;type:varchar(50);comment:昵称"`

	Email string `gorm:"column:email;type:varchar(100);comment:邮箱"`

	// Password bcrypt 哈希后的密码
	Password string `gorm:"column:password;type:varchar(100);not null;comment:密码"`

	// ParticipationScore 参与积分
	// 发帖 +2，帖子被点赞 +1
	ParticipationScore int `gorm:"column:participation_score;not null;default:0;comment:参与积分"`

	// RawPassword 明文密码（不存入数据库），在 BeforeSave 中加密
	RawPassword string `gorm:"-" json:"-"`
}

// TableName 指定表名
func (User) TableName() string {
	return "user_info"
}

// BeforeSave GORM Hook：在创建和更新前将 RawPassword 加密后写入 Password
func (u *User) BeforeSave(tx *gorm.DB) (err error) {
	if u.RawPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.RawPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		u.Password = string(hash)
		u.RawPassword = ""
	}
	return nil
}

// CheckPassword 校验密码是否正确
func (u *User) CheckPassword(plaintext string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plaintext))
	return err == nil
}

// DisplayName 页面展示用名称
func (u *User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}
