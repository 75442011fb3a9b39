package repository_test

import (
	"testing"
	"time"

	"community_server/internal/dao/mysql/dbtest"
	"community_server/internal/dao/mysql/repository"
	"community_server/internal/model"
	"community_server/pkg/enum/post_reaction/reaction_kind_enum"
	"community_server/pkg/errorx"
)

func TestUserRepositoryScoreAndLookup(t *testing.T) {
	repos, _ := dbtest.Open(t)
	alice := dbtest.CreateUser(t, repos, "alice")

	if alice.Password == "" || alice.Password == "password123" {
		t.Fatalf("password should be hashed, got %q", alice.Password)
	}
	if err := repos.User.AddParticipationScore(alice.ID, 2); err != nil {
		t.Fatalf("AddParticipationScore: %v", err)
	}
	got, err := repos.User.FindByUsername("alice")
	if err != nil {
		t.Fatalf("FindByUsername: %v", err)
	}
	if got.ParticipationScore != 2 {
		t.Fatalf("score = %d, want 2", got.ParticipationScore)
	}
	if !got.CheckPassword("password123") {
		t.Fatal("CheckPassword should accept the original password")
	}
	if err := repos.User.AddParticipationScore(alice.ID, -3); err != nil {
		t.Fatalf("AddParticipationScore negative: %v", err)
	}
	if floored, _ := repos.User.FindByID(alice.ID); floored.ParticipationScore != 0 {
		t.Fatalf("score should floor at 0, got %d", floored.ParticipationScore)
	}

	_, err = repos.User.FindByUsername("nobody")
	if !errorx.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestFriendRepositoryAddIsIdempotent(t *testing.T) {
	repos, _ := dbtest.Open(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	bob := dbtest.CreateUser(t, repos, "bob")

	for i := 0; i < 2; i++ {
		if err := repos.Friend.Add(alice.ID, bob.ID); err != nil {
			t.Fatalf("Add #%d: %v", i, err)
		}
	}
	friends, err := repos.Friend.FindFriends(alice.ID)
	if err != nil {
		t.Fatalf("FindFriends: %v", err)
	}
	if len(friends) != 1 || friends[0].ID != bob.ID {
		t.Fatalf("friends = %+v", friends)
	}
	ok, _ := repos.Friend.Exists(bob.ID, alice.ID)
	if ok {
		t.Fatal("reverse relation should not exist until added")
	}
}

func TestFriendRequestCreateFindDelete(t *testing.T) {
	repos, _ := dbtest.Open(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	bob := dbtest.CreateUser(t, repos, "bob")

	req := &model.FriendRequest{FromUserID: alice.ID, ToUserID: bob.ID}
	if err := repos.FriendRequest.Create(req); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ok, _ := repos.FriendRequest.Exists(alice.ID, bob.ID); !ok {
		t.Fatal("request should exist")
	}
	found, err := repos.FriendRequest.FindByID(req.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.FromUser.Username != "alice" || found.ToUser.Username != "bob" {
		t.Fatalf("associations not loaded: %+v", found)
	}
	received, _ := repos.FriendRequest.FindReceived(bob.ID)
	if len(received) != 1 {
		t.Fatalf("received = %d, want 1", len(received))
	}

	n, err := repos.FriendRequest.Delete(req.ID)
	if err != nil || n != 1 {
		t.Fatalf("Delete = %d, %v", n, err)
	}
	n, _ = repos.FriendRequest.Delete(req.ID)
	if n != 0 {
		t.Fatalf("second delete affected %d rows", n)
	}
	if _, err := repos.FriendRequest.FindByID(req.ID); !errorx.IsNotFound(err) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestChatRoomFirstOrCreateAndParticipants(t *testing.T) {
	repos, _ := dbtest.Open(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	bob := dbtest.CreateUser(t, repos, "bob")

	first, err := repos.ChatRoom.FirstOrCreateByName("chat_alice_bob")
	if err != nil {
		t.Fatalf("FirstOrCreateByName: %v", err)
	}
	second, _ := repos.ChatRoom.FirstOrCreateByName("chat_alice_bob")
	if first.ID != second.ID {
		t.Fatalf("room ids differ: %d vs %d", first.ID, second.ID)
	}

	for _, id := range []uint{bob.ID, alice.ID, alice.ID} {
		if err := repos.ChatRoom.AddParticipant(first.ID, id); err != nil {
			t.Fatalf("AddParticipant: %v", err)
		}
	}
	users, err := repos.ChatRoom.FindParticipants(first.ID)
	if err != nil {
		t.Fatalf("FindParticipants: %v", err)
	}
	if len(users) != 2 || users[0].Username != "alice" || users[1].Username != "bob" {
		t.Fatalf("participants = %+v", users)
	}
}

func TestMessagesOrderedByTimestamp(t *testing.T) {
	repos, _ := dbtest.Open(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	room, _ := repos.ChatRoom.FirstOrCreateByName("chat_alice_alice")

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	inputs := []struct {
		uuid int64
		ts   time.Time
		body string
	}{
		{1, base.Add(time.Minute), "second"},
		{2, base, "first"},
		{3, base.Add(time.Minute), "third"},
	}
	for _, in := range inputs {
		msg := &model.Message{Uuid: in.uuid, ChatRoomID: room.ID, SenderID: alice.ID, Content: in.body, Timestamp: in.ts}
		if err := repos.Message.Create(msg); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	msgs, err := repos.Message.FindByRoomID(room.ID)
	if err != nil {
		t.Fatalf("FindByRoomID: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, m := range msgs {
		if m.Content != want[i] {
			t.Fatalf("msgs[%d] = %q, want %q", i, m.Content, want[i])
		}
		if m.Sender.Username != "alice" {
			t.Fatalf("sender not preloaded")
		}
	}
}

func TestPostReactionsAndCascade(t *testing.T) {
	repos, _ := dbtest.Open(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	bob := dbtest.CreateUser(t, repos, "bob")

	older := &model.CommunityPost{AuthorID: alice.ID, Title: "old", Content: "c", DatePosted: time.Now().Add(-time.Hour)}
	newer := &model.CommunityPost{AuthorID: alice.ID, Title: "new", Content: "c", DatePosted: time.Now()}
	for _, p := range []*model.CommunityPost{older, newer} {
		if err := repos.Post.Create(p); err != nil {
			t.Fatalf("Create post: %v", err)
		}
	}

	all, _ := repos.Post.FindAll()
	if len(all) != 2 || all[0].Title != "new" || all[0].Author.Username != "alice" {
		t.Fatalf("FindAll order/author wrong: %+v", all)
	}

	like := reaction_kind_enum.LIKE
	for _, p := range []*model.CommunityPost{older, newer} {
		if n, err := repos.Reaction.Create(p.ID, bob.ID, like); err != nil || n != 1 {
			t.Fatalf("Create reaction: n=%d err=%v", n, err)
		}
	}
	liked, _ := repos.Post.FindByReaction(bob.ID, like)
	if len(liked) != 2 || liked[0].ID != newer.ID {
		t.Fatalf("liked = %+v", liked)
	}
	bookmarked, _ := repos.Post.FindByReaction(bob.ID, reaction_kind_enum.BOOKMARK)
	if len(bookmarked) != 0 {
		t.Fatalf("bookmarked should be empty, got %d", len(bookmarked))
	}

	if err := repos.Comment.Create(&model.Comment{PostID: newer.ID, UserID: bob.ID, Content: "hi"}); err != nil {
		t.Fatalf("Create comment: %v", err)
	}
	err := repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.Comment.DeleteByPost(newer.ID); err != nil {
			return err
		}
		if err := tx.Reaction.DeleteByPost(newer.ID); err != nil {
			return err
		}
		return tx.Post.Delete(newer.ID)
	})
	if err != nil {
		t.Fatalf("cascade delete: %v", err)
	}
	if n, _ := repos.Reaction.CountByPost(newer.ID, like); n != 0 {
		t.Fatalf("reactions left: %d", n)
	}
	if comments, _ := repos.Comment.FindByPostID(newer.ID); len(comments) != 0 {
		t.Fatalf("comments left: %d", len(comments))
	}
	if _, err := repos.Post.FindByID(newer.ID); !errorx.IsNotFound(err) {
		t.Fatalf("post should be gone, got %v", err)
	}
}

func TestReactionCreateIgnoresDuplicate(t *testing.T) {
	repos, _ := dbtest.Open(t)
	alice := dbtest.CreateUser(t, repos, "alice")
	bob := dbtest.CreateUser(t, repos, "bob")
	post := &model.CommunityPost{AuthorID: alice.ID, Title: "t", Content: "c", DatePosted: time.Now()}
	if err := repos.Post.Create(post); err != nil {
		t.Fatalf("Create post: %v", err)
	}

	like := reaction_kind_enum.LIKE
	if n, err := repos.Reaction.Create(post.ID, bob.ID, like); err != nil || n != 1 {
		t.Fatalf("first Create: n=%d err=%v", n, err)
	}
	// 并发重复点赞撞上唯一索引时不应报错，也不应插入
	if n, err := repos.Reaction.Create(post.ID, bob.ID, like); err != nil || n != 0 {
		t.Fatalf("duplicate Create: n=%d err=%v", n, err)
	}
	if n, _ := repos.Reaction.CountByPost(post.ID, like); n != 1 {
		t.Fatalf("like count = %d, want 1", n)
	}

	if n, err := repos.Reaction.Delete(post.ID, bob.ID, like); err != nil || n != 1 {
		t.Fatalf("Delete: n=%d err=%v", n, err)
	}
	if n, err := repos.Reaction.Delete(post.ID, bob.ID, like); err != nil || n != 0 {
		t.Fatalf("second Delete: n=%d err=%v", n, err)
	}
}

func TestFeedOrdering(t *testing.T) {
	repos, db := dbtest.Open(t)
	now := time.Now()
	db.Create(&model.Event{Title: "later", StartsAt: now.Add(48 * time.Hour)})
	db.Create(&model.Event{Title: "sooner", StartsAt: now.Add(time.Hour)})
	db.Create(&model.Notice{Title: "n1"})
	db.Create(&model.Notice{Title: "n2"})

	events, err := repos.Event.FindAll()
	if err != nil || len(events) != 2 || events[0].Title != "sooner" {
		t.Fatalf("events = %+v, err = %v", events, err)
	}
	notices, err := repos.Notice.FindAll()
	if err != nil || len(notices) != 2 || notices[0].Title != "n2" {
		t.Fatalf("notices = %+v, err = %v", notices, err)
	}
}
