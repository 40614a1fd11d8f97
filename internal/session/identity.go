package session

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CookieName is the browser cookie carrying the anonymous visitor identifier.
const CookieName = "quiz_user_id"

// Manager hands out anonymous visitor identities backed by a browser cookie.
// Identities are created lazily: nothing is written until a handler actually
// needs one, so plain page views never set a cookie.
type Manager struct {
	maxAge int
}

func NewManager(maxAge int) *Manager {
	return &Manager{maxAge: maxAge}
}

// Identity returns the visitor id from the request cookie, if any.
func (m *Manager) Identity(ctx *gin.Context) (string, bool) {
	id, err := ctx.Cookie(CookieName)
	if err != nil || id == "" {
		return "", false
	}
	return id, true
}

// GetOrCreate returns the existing visitor id or mints a fresh random UUID,
// sets it on the response, and returns it. Collisions are treated as
// impossible for 128-bit random values.
func (m *Manager) GetOrCreate(ctx *gin.Context) string {
	if id, ok := m.Identity(ctx); ok {
		return id
	}
	id := uuid.NewString()
	ctx.SetCookie(CookieName, id, m.maxAge, "/", "", false, true)
	log.Debug().Str("user_id", id).Msg("Issued new anonymous identity")
	return id
}
