package board

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() *Handler {
	return NewHandler(NewBoard(), NewSessions("test-secret"), "hunter2")
}

func request(e *echo.Echo, method, target, body string, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, h *Handler, id Identity) *http.Cookie {
	t.Helper()
	token, err := h.sessions.Issue(id)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return &http.Cookie{Name: tokenCookie, Value: token}
}

func TestSetName(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, rec := request(e, http.MethodPost, "/board/name", `{"name":"Thomas Shelby"}`)
	if err := h.SetName(c); err != nil {
		t.Fatalf("SetName: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	cookies := rec.Result().Cookies()
	var token string
	for _, ck := range cookies {
		if ck.Name == tokenCookie {
			token = ck.Value
		}
	}
	if token == "" {
		t.Fatal("no token cookie set")
	}
	if id := h.sessions.Verify(token); id.Role != RoleGuest || id.Name != "Thomas Shelby" {
		t.Errorf("token identity %+v", id)
	}
}

func TestSetNameReservesAdmin(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, _ := request(e, http.MethodPost, "/board/name", `{"name":"Admin"}`)
	err := h.SetName(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAdminLogin(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, _ := request(e, http.MethodPost, "/board/admin/login", `{"password":"wrong"}`)
	err := h.AdminLogin(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %v", err)
	}

	c, rec := request(e, http.MethodPost, "/board/admin/login", `{"password":"hunter2"}`)
	if err := h.AdminLogin(c); err != nil {
		t.Fatalf("AdminLogin: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestPostMessageRequiresName(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	c, _ := request(e, http.MethodPost, "/board/messages", `{"subject":"hi","content":"x"}`)
	err := h.PostMessage(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for anonymous post, got %v", err)
	}
}

func TestPostAndReplyFlow(t *testing.T) {
	e := echo.New()
	h := newTestHandler()

	guest := sessionCookie(t, h, Identity{Role: RoleGuest, Name: "Thomas Shelby"})
	admin := sessionCookie(t, h, Identity{Role: RoleAdmin, Name: AdminName})

	c, rec := request(e, http.MethodPost, "/board/messages",
		`{"subject":"Billing question","content":"why so much"}`, guest)
	if err := h.PostMessage(c); err != nil {
		t.Fatalf("PostMessage: %v", err)
	}
	var posted Message
	if err := json.Unmarshal(rec.Body.Bytes(), &posted); err != nil {
		t.Fatalf("decode posted: %v", err)
	}
	if posted.Receiver != AdminName {
		t.Errorf("posted receiver = %q", posted.Receiver)
	}

	// The guest cannot use the reply endpoint.
	c, _ = request(e, http.MethodPost, "/board/messages/1/reply", `{"content":"nope"}`, guest)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.ReplyMessage(c); err == nil {
		t.Fatal("expected guest reply to fail")
	}

	c, rec = request(e, http.MethodPost, "/board/messages/1/reply",
		`{"content":"itemized bill attached"}`, admin)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := h.ReplyMessage(c); err != nil {
		t.Fatalf("ReplyMessage: %v", err)
	}
	var reply Message
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if reply.Receiver != "Thomas Shelby" || reply.Subject != "Reply to Billing question" {
		t.Errorf("unexpected reply %+v", reply)
	}

	// The guest now sees both sides of the conversation.
	c, rec = request(e, http.MethodGet, "/board", "", guest)
	if err := h.ListMessages(c); err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	var page struct {
		Messages []Message `json:"messages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("decode page: %v", err)
	}
	if len(page.Messages) != 2 {
		t.Errorf("guest sees %d messages, want 2", len(page.Messages))
	}
}

func TestExitClearsSession(t *testing.T) {
	e := echo.New()
	h := newTestHandler()
	guest := sessionCookie(t, h, Identity{Role: RoleGuest, Name: "Thomas Shelby"})

	c, rec := request(e, http.MethodPost, "/board/exit", "", guest)
	if err := h.Exit(c); err != nil {
		t.Fatalf("Exit: %v", err)
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == tokenCookie && ck.MaxAge != -1 {
			t.Errorf("token cookie not cleared: %+v", ck)
		}
	}
}
