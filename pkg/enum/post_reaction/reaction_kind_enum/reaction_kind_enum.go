// Package reaction_kind_enum 定义帖子反应类型
package reaction_kind_enum

const (
	LIKE     = int8(0) // 点赞
	BOOKMARK = int8(1) // 收藏
)
