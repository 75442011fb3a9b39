// Package flash_level_enum 定义闪存消息级别，与页面样式类名一致
package flash_level_enum

const (
	SUCCESS = "success"
	WARNING = "warning"
	ERROR   = "error"
)
