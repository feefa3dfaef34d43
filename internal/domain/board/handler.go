package board

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	tokenCookie = "token"
	typeCookie  = "account_type"
	nameCookie  = "guest_name"
)

type Handler struct {
	board         *Board
	sessions      *Sessions
	adminPassword string
}

func NewHandler(board *Board, sessions *Sessions, adminPassword string) *Handler {
	return &Handler{board: board, sessions: sessions, adminPassword: adminPassword}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/board", h.ListMessages)
	api.POST("/board/name", h.SetName)
	api.POST("/board/admin/login", h.AdminLogin)
	api.POST("/board/messages", h.PostMessage)
	api.POST("/board/messages/:id/reply", h.ReplyMessage)
	api.POST("/board/exit", h.Exit)
}

// identity resolves who the request is acting as from the token cookie.
// The account_type and guest_name cookies are display hints only; the
// signed token is authoritative.
func (h *Handler) identity(c echo.Context) Identity {
	cookie, err := c.Cookie(tokenCookie)
	if err != nil {
		return anonymous
	}
	return h.sessions.Verify(cookie.Value)
}

func (h *Handler) setSession(c echo.Context, id Identity) error {
	token, err := h.sessions.Issue(id)
	if err != nil {
		return err
	}
	expiry := time.Now().Add(24 * time.Hour)
	c.SetCookie(&http.Cookie{Name: tokenCookie, Value: token, Path: "/", Expires: expiry, HttpOnly: true})
	c.SetCookie(&http.Cookie{Name: typeCookie, Value: string(id.Role), Path: "/", Expires: expiry})
	c.SetCookie(&http.Cookie{Name: nameCookie, Value: id.Name, Path: "/", Expires: expiry})
	return nil
}

func clearSession(c echo.Context) {
	for _, name := range []string{tokenCookie, typeCookie, nameCookie} {
		c.SetCookie(&http.Cookie{Name: name, Value: "", Path: "/", MaxAge: -1})
	}
}

func (h *Handler) ListMessages(c echo.Context) error {
	id := h.identity(c)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"account_type": id.Role,
		"name":         id.Name,
		"messages":     h.board.MessagesFor(id),
	})
}

type setNameRequest struct {
	Name string `json:"name" form:"name"`
}

// SetName promotes an anonymous visitor to a named guest. An empty name
// drops the visitor back to anonymous.
func (h *Handler) SetName(c echo.Context) error {
	var req setNameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Name == "" {
		clearSession(c)
		return c.NoContent(http.StatusNoContent)
	}
	if req.Name == AdminName {
		return echo.NewHTTPError(http.StatusBadRequest, "name is reserved")
	}
	if err := h.setSession(c, Identity{Role: RoleGuest, Name: req.Name}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

type adminLoginRequest struct {
	Password string `json:"password" form:"password"`
}

func (h *Handler) AdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
		return echo.NewHTTPError(http.StatusUnauthorized, "wrong password")
	}
	if err := h.setSession(c, Identity{Role: RoleAdmin, Name: AdminName}); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

type postMessageRequest struct {
	Subject string `json:"subject" form:"subject"`
	Content string `json:"content" form:"content"`
}

func (h *Handler) PostMessage(c echo.Context) error {
	id := h.identity(c)
	if id.Role != RoleGuest {
		return echo.NewHTTPError(http.StatusForbidden, "set a name before posting")
	}
	var req postMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Subject == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "subject is required")
	}
	m := h.board.Post(id.Name, req.Subject, req.Content)
	return c.JSON(http.StatusCreated, m)
}

type replyRequest struct {
	Content string `json:"content" form:"content"`
}

func (h *Handler) ReplyMessage(c echo.Context) error {
	id := h.identity(c)
	if id.Role != RoleAdmin {
		return echo.NewHTTPError(http.StatusForbidden, "admin only")
	}
	msgID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var req replyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.board.Reply(msgID, req.Content)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "message not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

// Exit drops the session and returns the visitor to anonymous.
func (h *Handler) Exit(c echo.Context) error {
	clearSession(c)
	return c.NoContent(http.StatusNoContent)
}
