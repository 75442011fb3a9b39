package handler_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"community_server/internal/dao/mysql/dbtest"
	"community_server/internal/model"
	"community_server/pkg/enum/activity/activity_type_enum"
)

func TestChatFlow(t *testing.T) {
	e := newEnv(t)
	alice := dbtest.CreateUser(t, e.repos, "alice")
	bob := dbtest.CreateUser(t, e.repos, "bob")
	for _, pair := range [][2]uint{{alice.ID, bob.ID}, {bob.ID, alice.ID}} {
		if err := e.repos.Friend.Add(pair[0], pair[1]); err != nil {
			t.Fatalf("add friend: %v", err)
		}
	}

	expectPage(t, e.do(t, http.MethodGet, "/community/chatrooms", alice.ID, nil), http.StatusOK, "/community/chat/start/bob")

	w := e.do(t, http.MethodGet, "/community/chat/start/bob", alice.ID, nil)
	if w.Code != http.StatusFound || !strings.HasPrefix(w.Header().Get("Location"), "/community/chatrooms/") {
		t.Fatalf("start: %d %s", w.Code, w.Header().Get("Location"))
	}
	roomURL := w.Header().Get("Location")

	// 双方打开的是同一个聊天室
	expectRedirect(t, e.do(t, http.MethodGet, "/community/chat/start/alice", bob.ID, nil), roomURL)
	expectPage(t, e.do(t, http.MethodGet, roomURL, alice.ID, nil), http.StatusOK, "chat_alice_bob")

	expectRedirect(t, e.do(t, http.MethodPost, roomURL, bob.ID, url.Values{"content": {"안녕, 앨리스"}}), roomURL)
	expectPage(t, e.do(t, http.MethodGet, roomURL, alice.ID, nil), http.StatusOK, "안녕, 앨리스")

	var count int64
	e.db.Model(&model.Message{}).Count(&count)
	if count != 1 {
		t.Fatalf("messages = %d, want 1", count)
	}
	if types := e.events.Types(); len(types) != 1 || types[0] != activity_type_enum.CHAT_MESSAGE {
		t.Fatalf("events = %v", types)
	}

	// 无效消息重新渲染聊天室
	expectPage(t, e.do(t, http.MethodPost, roomURL, bob.ID, url.Values{"content": {""}}), http.StatusOK, `class="error"`)
	expectPage(t, e.do(t, http.MethodPost, roomURL, bob.ID, url.Values{"content": {"  \n "}}), http.StatusOK, "메시지를 입력해 주세요.")
	expectPage(t, e.do(t, http.MethodPost, roomURL, bob.ID, url.Values{"content": {strings.Repeat("가", 2001)}}), http.StatusOK, `class="error"`)
	e.db.Model(&model.Message{}).Count(&count)
	if count != 1 {
		t.Fatalf("invalid messages must not be saved, count = %d", count)
	}
}

func TestChatNotFound(t *testing.T) {
	e := newEnv(t)
	alice := dbtest.CreateUser(t, e.repos, "alice")

	expectPage(t, e.do(t, http.MethodGet, "/community/chatrooms/999", alice.ID, nil), http.StatusNotFound, "존재하지 않는 채팅방입니다.")
	expectPage(t, e.do(t, http.MethodPost, "/community/chatrooms/999", alice.ID, url.Values{"content": {"hi"}}), http.StatusNotFound)
	expectPage(t, e.do(t, http.MethodGet, "/community/chat/start/nobody", alice.ID, nil), http.StatusNotFound)
}
