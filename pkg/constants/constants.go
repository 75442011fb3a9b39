package constants

import "time"

const (
	CHAT_ROOM_PREFIX      = "chat_"          // 聊天室名称前缀
	MESSAGE_MAX_LENGTH    = 2000             // 单条聊天消息最大长度（字符）
	POST_TITLE_MAX_LENGTH = 200              // 帖子标题最大长度（字符）
	POST_CREATE_SCORE     = 2                // 发帖获得的参与积分
	POST_LIKED_SCORE      = 1                // 帖子被点赞时作者获得的参与积分
	FLASH_TTL             = 10 * time.Minute // 闪存消息在 Redis 中的保留时间
	EVENT_PUBLISH_TIMEOUT = 3 * time.Second  // 活动事件投递超时
	ACCESS_TOKEN_COOKIE   = "access_token"   // 浏览器端保存 Access Token 的 Cookie 名
	CONTEXT_USER_ID       = "user_id"        // gin.Context 中保存当前用户ID的键
	USER_TOKEN_KEY_PREFIX = "user_token:"    // Redis 中保存 Refresh Token ID 的键前缀
	FLASH_KEY_PREFIX      = "flash:"         // Redis 中保存闪存消息列表的键前缀
	LOGIN_PATH            = "/login"         // 登录页路径，未登录的页面请求跳转至此
	LOGIN_NEXT_PARAM      = "next"           // 登录后返回地址的查询参数名
)
