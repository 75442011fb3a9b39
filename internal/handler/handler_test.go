package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"community_server/internal/dao/mysql/dbtest"
	"community_server/internal/dao/mysql/repository"
	"community_server/internal/dao/redis/cachetest"
	"community_server/internal/handler"
	"community_server/internal/infrastructure/mq/mqtest"
	"community_server/internal/model"
	"community_server/internal/router"
	"community_server/internal/service"
	"community_server/internal/web"
	"community_server/pkg/constants"
	"community_server/pkg/errorx"
	"community_server/pkg/util/jwt"
	"community_server/pkg/util/snowflake"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
	jwt.Init("handler-test-secret", 5, 1)
	snowflake.Init(1)
	if err := handler.InitTrans("en"); err != nil {
		panic(err)
	}
}

type testEnv struct {
	engine *gin.Engine
	repos  *repository.Repositories
	db     *gorm.DB
	events *mqtest.Recorder
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	repos, db := dbtest.Open(t)
	rec := &mqtest.Recorder{}
	handlers := handler.NewHandlers(service.NewServices(repos, cachetest.New(), rec))

	engine := gin.New()
	tmpl, err := web.Templates()
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	engine.SetHTMLTemplate(tmpl)
	router.NewRouter(handlers, nil).RegisterRoutes(engine)
	return &testEnv{engine: engine, repos: repos, db: db, events: rec}
}

type reqOption func(*http.Request)

func withReferer(ref string) reqOption {
	return func(r *http.Request) { r.Header.Set("Referer", ref) }
}

func withAccept(accept string) reqOption {
	return func(r *http.Request) { r.Header.Set("Accept", accept) }
}

// do 发送请求；userID 非 0 时携带该用户的 Access Token Cookie，form 非空时以表单提交
func (e *testEnv) do(t *testing.T, method, path string, userID uint, form url.Values, opts ...reqOption) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if userID != 0 {
		token, err := jwt.GenerateAccessToken(strconv.FormatUint(uint64(userID), 10))
		if err != nil {
			t.Fatalf("GenerateAccessToken: %v", err)
		}
		req.AddCookie(&http.Cookie{Name: constants.ACCESS_TOKEN_COOKIE, Value: token})
	}
	for _, opt := range opts {
		opt(req)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) postJSON(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302; body: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("Location = %q, want %q", got, location)
	}
}

func expectPage(t *testing.T, w *httptest.ResponseRecorder, status int, contains ...string) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, status, w.Body.String())
	}
	for _, s := range contains {
		if !strings.Contains(w.Body.String(), s) {
			t.Fatalf("body does not contain %q:\n%s", s, w.Body.String())
		}
	}
}

type envelope struct {
	Code int             `json:"code"`
	Msg  json.RawMessage `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return env
}

func TestRegisterLoginRefresh(t *testing.T) {
	e := newEnv(t)

	w := e.postJSON(t, "/register", `{"username":"alice","password":"secret123","email":"alice@example.com"}`)
	if env := decodeEnvelope(t, w); env.Code != errorx.CodeSuccess {
		t.Fatalf("register: %s", w.Body.String())
	}

	w = e.postJSON(t, "/register", `{"username":"alice","password":"secret123"}`)
	if env := decodeEnvelope(t, w); env.Code != errorx.CodeUserExist {
		t.Fatalf("duplicate register code = %d, want %d", env.Code, errorx.CodeUserExist)
	}

	w = e.postJSON(t, "/login", `{"username":"alice","password":"wrong-password"}`)
	if env := decodeEnvelope(t, w); env.Code != errorx.CodeInvalidPassword {
		t.Fatalf("wrong password code = %d", env.Code)
	}

	w = e.postJSON(t, "/login", `{"username":"alice","password":"secret123"}`)
	env := decodeEnvelope(t, w)
	if env.Code != errorx.CodeSuccess {
		t.Fatalf("login: %s", w.Body.String())
	}
	var login struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("decode login data: %v", err)
	}
	if login.AccessToken == "" || login.RefreshToken == "" {
		t.Fatalf("tokens missing: %s", w.Body.String())
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.ACCESS_TOKEN_COOKIE {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value != login.AccessToken || !cookie.HttpOnly {
		t.Fatalf("access token cookie not set correctly: %+v", cookie)
	}

	w = e.postJSON(t, "/auth/refresh", `{"refresh_token":"`+login.RefreshToken+`"}`)
	if env := decodeEnvelope(t, w); env.Code != errorx.CodeSuccess {
		t.Fatalf("refresh: %s", w.Body.String())
	}

	w = e.postJSON(t, "/auth/refresh", `{"refresh_token":"`+login.AccessToken+`"}`)
	if env := decodeEnvelope(t, w); env.Code != errorx.CodeUnauthorized {
		t.Fatalf("refresh with access token code = %d", env.Code)
	}
}

func TestRegisterValidationMessages(t *testing.T) {
	e := newEnv(t)

	w := e.postJSON(t, "/register", `{"username":"ab","password":"secret123"}`)
	env := decodeEnvelope(t, w)
	if env.Code != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want %d", env.Code, errorx.CodeInvalidParam)
	}
	var msgs map[string]string
	if err := json.Unmarshal(env.Msg, &msgs); err != nil {
		t.Fatalf("msg should be a field map: %s", env.Msg)
	}
	if _, ok := msgs["username"]; !ok {
		t.Fatalf("missing username message: %v", msgs)
	}

	w = e.postJSON(t, "/register", `{not json`)
	if env := decodeEnvelope(t, w); env.Code != errorx.CodeInvalidParam {
		t.Fatalf("malformed body code = %d", env.Code)
	}
}

func TestPublicPages(t *testing.T) {
	e := newEnv(t)
	if err := e.db.Create(&model.Event{Title: "봄 축제", Location: "광장"}).Error; err != nil {
		t.Fatalf("seed event: %v", err)
	}
	if err := e.db.Create(&model.Notice{Title: "점검 안내", Content: "서버 점검"}).Error; err != nil {
		t.Fatalf("seed notice: %v", err)
	}

	expectPage(t, e.do(t, http.MethodGet, "/community/events", 0, nil), http.StatusOK, "봄 축제")
	expectPage(t, e.do(t, http.MethodGet, "/community/notices", 0, nil), http.StatusOK, "점검 안내")
	expectPage(t, e.do(t, http.MethodGet, "/community/posts", 0, nil), http.StatusOK, "게시판")
	expectRedirect(t, e.do(t, http.MethodGet, "/", 0, nil), "/community/posts")
}

func TestProtectedPagesRequireLogin(t *testing.T) {
	e := newEnv(t)
	for _, path := range []string{
		"/community/chatrooms",
		"/community/posts/new",
		"/community/posts/liked",
		"/community/friends/alice",
	} {
		if w := e.do(t, http.MethodGet, path, 0, nil); w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", path, w.Code)
		}
	}
}

func TestBrowserLoginFlow(t *testing.T) {
	e := newEnv(t)
	dbtest.CreateUser(t, e.repos, "alice")

	// 未登录的浏览器访问受保护页面，跳到登录页并带上返回地址
	w := e.do(t, http.MethodGet, "/community/chatrooms", 0, nil, withAccept("text/html"))
	expectRedirect(t, w, "/login?next=%2Fcommunity%2Fchatrooms")

	expectPage(t, e.do(t, http.MethodGet, w.Header().Get("Location"), 0, nil), http.StatusOK,
		`name="next" value="/community/chatrooms"`)

	form := url.Values{"username": {"alice"}, "password": {"wrong-password"}, "next": {"/community/chatrooms"}}
	expectPage(t, e.do(t, http.MethodPost, "/login", 0, form), http.StatusUnauthorized, `value="alice"`)

	form.Set("password", "password123")
	w = e.do(t, http.MethodPost, "/login", 0, form)
	expectRedirect(t, w, "/community/chatrooms")
	var token string
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.ACCESS_TOKEN_COOKIE {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("login form should set the access token cookie")
	}

	// 外站返回地址被忽略
	form.Set("next", "https://evil.example.org/")
	expectRedirect(t, e.do(t, http.MethodPost, "/login", 0, form), "/community/posts")
}
