package session

import (
	"encoding/gob"
	"net/http"

	"mall/internal/domain/model"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	cookieName = "mall_session"
	cartKey    = "cart"
)

func init() {
	// cookieセッションはgobでシリアライズされる
	gob.Register(model.Cart{})
}

// CartStore はcookieセッション上のカートを読み書きする。
// 書き戻しは常に明示的：ハンドラが新しいCart値をSaveする。
type CartStore struct {
	store *sessions.CookieStore
}

func NewCartStore(secret string) *CartStore {
	s := sessions.NewCookieStore([]byte(secret))
	s.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &CartStore{store: s}
}

// Load はセッションからカートを取り出す。初回訪問は空カートを返し、
// ログ突合用のセッションIDをこのとき採番する。
func (s *CartStore) Load(c echo.Context) model.Cart {
	// 復号に失敗してもgorillaは新規セッションを返すので継続できる
	sess, _ := s.store.Get(c.Request(), cookieName)
	if cart, ok := sess.Values[cartKey].(model.Cart); ok && cart.Items != nil {
		return cart
	}
	return model.NewCart(uuid.NewString())
}

// Save はカート値をセッションへ書き戻す。
func (s *CartStore) Save(c echo.Context, cart model.Cart) error {
	sess, _ := s.store.Get(c.Request(), cookieName)
	sess.Values[cartKey] = cart
	return sess.Save(c.Request(), c.Response())
}
