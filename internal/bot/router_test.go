package bot

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/bot/handlers"
)

func newTestRouter() *Router {
	return NewRouter(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCommandToken(t *testing.T) {
	assert.Equal(t, "/gen", commandToken("/gen a red fox"))
	assert.Equal(t, "/gen", commandToken("/gen@raoart_bot a red fox"))
	assert.Equal(t, "/gen", commandToken("/gen\nmultiline prompt"))
	assert.Equal(t, "/start", commandToken("/start"))
}

func TestRouter_FindCallbackHandler(t *testing.T) {
	r := newTestRouter()

	var hit string
	r.RegisterCallback("menu:help", func(telebot.Context) error {
		hit = "exact"
		return nil
	})
	r.RegisterCallback("setstyle:", func(telebot.Context) error {
		hit = "prefix"
		return nil
	})

	h := r.findCallbackHandler("menu:help")
	require.NotNil(t, h)
	require.NoError(t, h(nil))
	assert.Equal(t, "exact", hit)

	h = r.findCallbackHandler("setstyle:12")
	require.NotNil(t, h)
	require.NoError(t, h(nil))
	assert.Equal(t, "prefix", hit)

	assert.Nil(t, r.findCallbackHandler("menu:helpers"))
	assert.Nil(t, r.findCallbackHandler("unknown:thing"))
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	r := newTestRouter()

	order := make([]string, 0, 3)
	mw := func(name string) handlers.Middleware {
		return func(next handlers.Handler) handlers.Handler {
			return func(c telebot.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	r.Use(mw("outer"))
	r.Use(mw("inner"))

	wrapped := r.applyMiddlewares(func(telebot.Context) error {
		order = append(order, "handler")
		return nil
	})
	require.NotNil(t, wrapped)
	require.NoError(t, wrapped(nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
