package handler

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"

	"miniblog/internal/api/middleware"
)

const flashCookieName = "flash"

// Flash is a one-shot user-facing status message, cleared on the next render.
type Flash struct {
	Category string `json:"category"` // "success" or "error"
	Message  string `json:"message"`
}

func setFlash(c *gin.Context, category, message string) {
	b, err := json.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return
	}
	c.SetCookie(flashCookieName, base64.RawURLEncoding.EncodeToString(b), 60, "/", "", false, true)
}

func popFlash(c *gin.Context) *Flash {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return nil
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)

	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	return &f
}

// render wraps c.HTML, attaching the current user and any pending flash
// message so every page gets them.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["User"] = middleware.CurrentUser(c)
	if f := popFlash(c); f != nil {
		data["Flash"] = f
	}
	c.HTML(status, name, data)
}
