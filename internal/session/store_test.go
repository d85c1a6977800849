package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"mall/internal/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(e *echo.Echo, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCartStore_FirstVisitIsEmptyWithSessionID(t *testing.T) {
	e := echo.New()
	store := session.NewCartStore("test-secret")

	c, _ := newContext(e, nil)
	cart := store.Load(c)

	assert.True(t, cart.IsEmpty())
	assert.NotEmpty(t, cart.SID)
}

func TestCartStore_SaveThenLoadRoundTrip(t *testing.T) {
	e := echo.New()
	store := session.NewCartStore("test-secret")

	c1, rec1 := newContext(e, nil)
	cart := store.Load(c1).Add(1, 2).Add(3, 1)
	require.NoError(t, store.Save(c1, cart))

	// cookieを持った次のリクエストで同じカートが返る
	c2, _ := newContext(e, rec1.Result().Cookies())
	loaded := store.Load(c2)

	assert.Equal(t, cart.SID, loaded.SID)
	assert.Equal(t, int64(2), loaded.Quantity(1))
	assert.Equal(t, int64(1), loaded.Quantity(3))
}

func TestCartStore_TamperedCookieStartsFresh(t *testing.T) {
	e := echo.New()
	store := session.NewCartStore("test-secret")

	c, _ := newContext(e, []*http.Cookie{{Name: "mall_session", Value: "garbage"}})
	cart := store.Load(c)

	assert.True(t, cart.IsEmpty())
}
