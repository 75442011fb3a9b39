package respond

import "community_server/internal/model"

// PostDetailRespond 帖子详情页数据
type PostDetailRespond struct {
	Post       *model.CommunityPost
	Comments   []model.Comment // 最早在前
	LikeCount  int64
	Liked      bool // 当前用户是否已点赞
	Bookmarked bool // 当前用户是否已收藏
	Friendship FriendshipStatus
}
