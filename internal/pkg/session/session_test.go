package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSetThenGet(t *testing.T) {
	store := NewStore("secret", 24*time.Hour, false)
	providerID := uuid.New()

	c, rec := newTestContext(t)
	require.NoError(t, store.Set(c, providerID))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, int((24 * time.Hour).Seconds()), cookie.MaxAge)

	c2, _ := newTestContext(t, cookie)
	got, ok := store.Get(c2)
	assert.True(t, ok)
	assert.Equal(t, providerID, got)
}

func TestGet_NoCookie(t *testing.T) {
	store := NewStore("secret", 24*time.Hour, false)

	c, _ := newTestContext(t)
	_, ok := store.Get(c)
	assert.False(t, ok)
}

func TestGet_GarbageCookieReadsAsNoSession(t *testing.T) {
	store := NewStore("secret", 24*time.Hour, false)

	c, _ := newTestContext(t, &http.Cookie{Name: CookieName, Value: "not.a-token"})
	_, ok := store.Get(c)
	assert.False(t, ok)
}

func TestGet_WrongSecretReadsAsNoSession(t *testing.T) {
	minter := NewStore("secret-a", 24*time.Hour, false)
	reader := NewStore("secret-b", 24*time.Hour, false)

	c, rec := newTestContext(t)
	require.NoError(t, minter.Set(c, uuid.New()))

	c2, _ := newTestContext(t, rec.Result().Cookies()[0])
	_, ok := reader.Get(c2)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	store := NewStore("secret", 24*time.Hour, false)

	c, rec := newTestContext(t)
	store.Clear(c)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)
}

func TestMiddleware(t *testing.T) {
	store := NewStore("secret", 24*time.Hour, false)
	providerID := uuid.New()

	handler := store.Middleware()(func(c echo.Context) error {
		id, ok := ProviderID(c)
		require.True(t, ok)
		assert.Equal(t, providerID, id)
		return c.NoContent(http.StatusOK)
	})

	// No cookie: 401
	c, rec := newTestContext(t)
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid cookie: handler runs
	mintCtx, mintRec := newTestContext(t)
	require.NoError(t, store.Set(mintCtx, providerID))

	c2, rec2 := newTestContext(t, mintRec.Result().Cookies()[0])
	require.NoError(t, handler(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)
}
