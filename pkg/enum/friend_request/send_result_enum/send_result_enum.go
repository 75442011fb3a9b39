// Package send_result_enum 定义发送好友申请的结果
package send_result_enum

const (
	SENT      = int8(0) // 已创建新申请
	DUPLICATE = int8(1) // 已存在相同方向的申请，未写入
)
