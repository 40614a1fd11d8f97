package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return ctx, w
}

func TestIdentityAbsent(t *testing.T) {
	m := NewManager(3600)
	ctx, _ := newTestContext(t)

	_, ok := m.Identity(ctx)
	assert.False(t, ok)
}

func TestIdentityPresent(t *testing.T) {
	m := NewManager(3600)
	ctx, _ := newTestContext(t)
	ctx.Request.AddCookie(&http.Cookie{Name: CookieName, Value: "abc-123"})

	id, ok := m.Identity(ctx)
	assert.True(t, ok)
	assert.Equal(t, "abc-123", id)
}

func TestGetOrCreateMintsCanonicalUUID(t *testing.T) {
	m := NewManager(3600)
	ctx, w := newTestContext(t)

	id := m.GetOrCreate(ctx)

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, parsed.String(), id)

	// Cookie is written to the response.
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.Equal(t, 3600, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
}

func TestGetOrCreateReturnsExistingUnchanged(t *testing.T) {
	m := NewManager(3600)
	ctx, w := newTestContext(t)
	ctx.Request.AddCookie(&http.Cookie{Name: CookieName, Value: "existing-id"})

	id := m.GetOrCreate(ctx)
	assert.Equal(t, "existing-id", id)
	// No fresh cookie for a visitor who already has one.
	assert.Empty(t, w.Result().Cookies())
}

func TestGetOrCreateIDsAreUnique(t *testing.T) {
	m := NewManager(3600)

	ctxA, _ := newTestContext(t)
	ctxB, _ := newTestContext(t)
	assert.NotEqual(t, m.GetOrCreate(ctxA), m.GetOrCreate(ctxB))
}
