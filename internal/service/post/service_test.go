package post

import (
	"strings"
	"testing"

	"community_server/internal/dao/mysql/dbtest"
	"community_server/internal/dao/mysql/repository"
	"community_server/internal/infrastructure/mq/mqtest"
	"community_server/internal/model"
	"community_server/internal/service/friend"
	"community_server/pkg/enum/activity/activity_type_enum"
	"community_server/pkg/errorx"
)

func newService(t *testing.T) (*postService, *repository.Repositories, *mqtest.Recorder) {
	t.Helper()
	repos, _ := dbtest.Open(t)
	rec := &mqtest.Recorder{}
	return NewPostService(repos, friend.NewFriendService(repos, nil), rec), repos, rec
}

func score(t *testing.T, repos *repository.Repositories, id uint) int {
	t.Helper()
	u, err := repos.User.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	return u.ParticipationScore
}

func TestCreatePostAddsTwoPoints(t *testing.T) {
	svc, repos, rec := newService(t)
	alice := dbtest.CreateUser(t, repos, "alice")

	post, err := svc.CreatePost(alice.ID, "  Hello  ", "World")
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if post.Title != "Hello" {
		t.Fatalf("title should be trimmed, got %q", post.Title)
	}
	if got := score(t, repos, alice.ID); got != 2 {
		t.Fatalf("score = %d, want 2", got)
	}
	if types := rec.Types(); len(types) != 1 || types[0] != activity_type_enum.POST_CREATED {
		t.Fatalf("events = %v", types)
	}
}

func TestCreatePostValidation(t *testing.T) {
	svc, repos, _ := newService(t)
	alice := dbtest.CreateUser(t, repos, "alice")

	cases := map[string][2]string{
		"blank title":   {"   ", "body"},
		"blank content": {"title", "\n\t"},
		"long title":    {strings.Repeat("a", 201), "body"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.CreatePost(alice.ID, in[0], in[1]); errorx.GetCode(err) != errorx.CodeInvalidParam {
				t.Fatalf("err = %v", err)
			}
		})
	}
	if got := score(t, repos, alice.ID); got != 0 {
		t.Fatalf("invalid posts must not change score, got %d", got)
	}
	if posts, _ := svc.ListPosts(); len(posts) != 0 {
		t.Fatalf("posts = %d, want 0", len(posts))
	}
}

func TestToggleLikeScoring(t *testing.T) {
	svc, repos, rec := newService(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	bob := dbtest.CreateUser(t, repos, "bob")
	post := &model.CommunityPost{AuthorID: alice.ID, Title: "t", Content: "c"}
	if err := repos.Post.Create(post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	liked, err := svc.ToggleLike(bob.ID, post.ID)
	if err != nil || !liked {
		t.Fatalf("first toggle = %v, %v", liked, err)
	}
	if got := score(t, repos, alice.ID); got != 1 {
		t.Fatalf("score after like = %d, want 1", got)
	}
	liked, err = svc.ToggleLike(bob.ID, post.ID)
	if err != nil || liked {
		t.Fatalf("second toggle = %v, %v", liked, err)
	}
	if got := score(t, repos, alice.ID); got != 0 {
		t.Fatalf("score after unlike = %d, want 0", got)
	}
	if n, _ := repos.Reaction.CountByPost(post.ID, 0); n != 0 {
		t.Fatalf("like count = %d, want 0", n)
	}

	// 给自己点赞同样计分
	if _, err := svc.ToggleLike(alice.ID, post.ID); err != nil {
		t.Fatalf("self like: %v", err)
	}
	if got := score(t, repos, alice.ID); got != 1 {
		t.Fatalf("score after self like = %d, want 1", got)
	}
	if types := rec.Types(); len(types) != 2 {
		t.Fatalf("expected two like events, got %v", types)
	}

	if _, err := svc.ToggleLike(bob.ID, 9999); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("missing post err = %v", err)
	}
}

func TestLikeTwiceRestoresAuthorScore(t *testing.T) {
	svc, repos, _ := newService(t)
	author := dbtest.CreateUser(t, repos, "author")
	alice := dbtest.CreateUser(t, repos, "alice")
	post := &model.CommunityPost{AuthorID: author.ID, Title: "t", Content: "c"}
	if err := repos.Post.Create(post); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.ToggleLike(alice.ID, post.ID); err != nil {
		t.Fatalf("like: %v", err)
	}
	if got := score(t, repos, author.ID); got != 1 {
		t.Fatalf("score after like = %d, want 1", got)
	}
	if _, err := svc.ToggleLike(alice.ID, post.ID); err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if got := score(t, repos, author.ID); got != 0 {
		t.Fatalf("score after toggling twice = %d, want 0", got)
	}

	// 积分被其他途径清零后取消点赞也不会变成负数
	if _, err := svc.ToggleLike(alice.ID, post.ID); err != nil {
		t.Fatalf("like again: %v", err)
	}
	if err := repos.User.AddParticipationScore(author.ID, -5); err != nil {
		t.Fatalf("AddParticipationScore: %v", err)
	}
	if _, err := svc.ToggleLike(alice.ID, post.ID); err != nil {
		t.Fatalf("unlike again: %v", err)
	}
	if got := score(t, repos, author.ID); got != 0 {
		t.Fatalf("score must not go negative, got %d", got)
	}
}

func TestToggleBookmarkAndLists(t *testing.T) {
	svc, repos, _ := newService(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	bob := dbtest.CreateUser(t, repos, "bob")
	p1, _ := svc.CreatePost(alice.ID, "first", "c")
	p2, _ := svc.CreatePost(alice.ID, "second", "c")

	for _, id := range []uint{p1.ID, p2.ID} {
		if ok, err := svc.ToggleBookmark(bob.ID, id); err != nil || !ok {
			t.Fatalf("ToggleBookmark(%d) = %v, %v", id, ok, err)
		}
	}
	if _, err := svc.ToggleLike(bob.ID, p1.ID); err != nil {
		t.Fatalf("ToggleLike: %v", err)
	}

	bookmarked, _ := svc.ListBookmarked(bob.ID)
	if len(bookmarked) != 2 || bookmarked[0].ID != p2.ID {
		t.Fatalf("bookmarked = %+v", bookmarked)
	}
	liked, _ := svc.ListLiked(bob.ID)
	if len(liked) != 1 || liked[0].ID != p1.ID {
		t.Fatalf("liked = %+v", liked)
	}
	// 收藏不影响积分：2 篇帖子 +4，1 次点赞 +1
	if got := score(t, repos, alice.ID); got != 5 {
		t.Fatalf("score = %d, want 5", got)
	}

	if ok, _ := svc.ToggleBookmark(bob.ID, p1.ID); ok {
		t.Fatal("second bookmark toggle should remove it")
	}
	bookmarked, _ = svc.ListBookmarked(bob.ID)
	if len(bookmarked) != 1 {
		t.Fatalf("bookmarked after removal = %d", len(bookmarked))
	}
}

func TestUpdatePostAuthorship(t *testing.T) {
	svc, repos, _ := newService(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	carol := dbtest.CreateUser(t, repos, "carol")
	post, _ := svc.CreatePost(alice.ID, "title", "body")

	if _, err := svc.GetPostForEdit(carol.ID, post.ID); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("GetPostForEdit by non-author err = %v", err)
	}
	if err := svc.UpdatePost(carol.ID, post.ID, "hacked", "x"); errorx.GetCode(err) != errorx.CodeForbidden {
		t.Fatalf("UpdatePost by non-author err = %v", err)
	}
	if err := svc.UpdatePost(alice.ID, post.ID, "", "x"); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("invalid update err = %v", err)
	}
	if err := svc.UpdatePost(alice.ID, post.ID, "new title", "new body"); err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	got, _ := svc.GetPostForEdit(alice.ID, post.ID)
	if got.Title != "new title" || got.Content != "new body" {
		t.Fatalf("post = %+v", got)
	}
	if err := svc.UpdatePost(alice.ID, 9999, "t", "c"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("missing post err = %v", err)
	}
}

func TestDeletePostOnlyByAuthor(t *testing.T) {
	svc, repos, _ := newService(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	carol := dbtest.CreateUser(t, repos, "carol")
	post, _ := svc.CreatePost(alice.ID, "title", "body")
	_, _ = svc.ToggleLike(carol.ID, post.ID)
	_ = repos.Comment.Create(&model.Comment{PostID: post.ID, UserID: carol.ID, Content: "nice"})

	deleted, err := svc.DeletePost(carol.ID, post.ID)
	if err != nil || deleted {
		t.Fatalf("non-author delete = %v, %v", deleted, err)
	}
	if _, err := repos.Post.FindByID(post.ID); err != nil {
		t.Fatalf("post should survive non-author delete: %v", err)
	}

	deleted, err = svc.DeletePost(alice.ID, post.ID)
	if err != nil || !deleted {
		t.Fatalf("author delete = %v, %v", deleted, err)
	}
	if _, err := svc.GetPostDetail(alice.ID, post.ID); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("detail after delete err = %v", err)
	}
	if n, _ := repos.Reaction.CountByPost(post.ID, 0); n != 0 {
		t.Fatalf("reactions left = %d", n)
	}
	if _, err := svc.DeletePost(alice.ID, post.ID); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestGetPostDetail(t *testing.T) {
	svc, repos, _ := newService(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	bob := dbtest.CreateUser(t, repos, "bob")
	post, _ := svc.CreatePost(alice.ID, "title", "body")
	_ = repos.Comment.Create(&model.Comment{PostID: post.ID, UserID: bob.ID, Content: "first"})
	_ = repos.Comment.Create(&model.Comment{PostID: post.ID, UserID: alice.ID, Content: "second"})
	_, _ = svc.ToggleLike(bob.ID, post.ID)
	_ = repos.FriendRequest.Create(&model.FriendRequest{FromUserID: bob.ID, ToUserID: alice.ID})

	detail, err := svc.GetPostDetail(bob.ID, post.ID)
	if err != nil {
		t.Fatalf("GetPostDetail: %v", err)
	}
	if detail.Post.Author.Username != "alice" || detail.LikeCount != 1 || !detail.Liked || detail.Bookmarked {
		t.Fatalf("detail = %+v", detail)
	}
	if len(detail.Comments) != 2 || detail.Comments[0].Content != "first" || detail.Comments[0].User.Username != "bob" {
		t.Fatalf("comments = %+v", detail.Comments)
	}
	if !detail.Friendship.RequestSent || detail.Friendship.RequestReceived || detail.Friendship.Friends {
		t.Fatalf("friendship = %+v", detail.Friendship)
	}

	// 作者向第三人发出申请后，第三人视角为收到申请
	carol := dbtest.CreateUser(t, repos, "carol")
	if err := repos.FriendRequest.Create(&model.FriendRequest{FromUserID: alice.ID, ToUserID: carol.ID}); err != nil {
		t.Fatalf("Create request: %v", err)
	}
	carolView, err := svc.GetPostDetail(carol.ID, post.ID)
	if err != nil {
		t.Fatalf("GetPostDetail carol: %v", err)
	}
	if !carolView.Friendship.RequestReceived || carolView.Friendship.RequestSent || carolView.Friendship.Friends || carolView.Liked {
		t.Fatalf("carol view = %+v", carolView)
	}
}
