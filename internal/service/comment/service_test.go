package comment

import (
	"testing"

	"community_server/internal/dao/mysql/dbtest"
	"community_server/internal/model"
	"community_server/pkg/errorx"
)

func TestCreateAndDeleteComment(t *testing.T) {
	repos, _ := dbtest.Open(t)
	svc := NewCommentService(repos)
	alice := dbtest.CreateUser(t, repos, "alice")
	bob := dbtest.CreateUser(t, repos, "bob")
	post := &model.CommunityPost{AuthorID: alice.ID, Title: "t", Content: "c"}
	_ = repos.Post.Create(post)

	c, err := svc.CreateComment(bob.ID, post.ID, "  nice post ")
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if c.Content != "nice post" {
		t.Fatalf("content = %q", c.Content)
	}
	if _, err := svc.CreateComment(bob.ID, post.ID, "   "); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("blank comment err = %v", err)
	}
	if _, err := svc.CreateComment(bob.ID, 999, "hi"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("missing post err = %v", err)
	}

	// 帖子作者也不能删除他人的评论
	deleted, err := svc.DeleteComment(alice.ID, post.ID, c.ID)
	if err != nil || deleted {
		t.Fatalf("non-author delete = %v, %v", deleted, err)
	}
	if comments, _ := repos.Comment.FindByPostID(post.ID); len(comments) != 1 {
		t.Fatalf("comment should survive, got %d", len(comments))
	}

	deleted, err = svc.DeleteComment(bob.ID, post.ID, c.ID)
	if err != nil || !deleted {
		t.Fatalf("author delete = %v, %v", deleted, err)
	}
	if _, err := svc.DeleteComment(bob.ID, post.ID, c.ID); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("second delete err = %v", err)
	}

	u, _ := repos.User.FindByID(bob.ID)
	if u.ParticipationScore != 0 {
		t.Fatalf("comments must not change score, got %d", u.ParticipationScore)
	}
}
