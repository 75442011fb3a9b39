// Package dbtest 为测试提供基于内存 SQLite 的 Repository 实例
package dbtest

import (
	"fmt"
	"sync/atomic"
	"testing"

	"community_server/internal/dao/mysql/repository"
	"community_server/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var seq atomic.Int64

// Open 打开一个独立的内存数据库并完成迁移
// 每次调用使用不同的 DSN，测试之间互不影响
func Open(t testing.TB) (*repository.Repositories, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:community_test_%d?mode=memory&cache=shared", seq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// 内存库只在单连接内可见
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(model.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repository.NewRepositories(db), db
}

// CreateUser 创建测试用户
func CreateUser(t testing.TB, repos *repository.Repositories, username string) *model.User {
	t.Helper()
	user := &model.User{Username: username, RawPassword: "password123"}
	if err := repos.User.Create(user); err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return user
}
