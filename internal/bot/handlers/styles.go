package handlers

import (
	"context"
	"strconv"
	"strings"

	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/bot/keyboard"
)

// NewStyleHandler handles /style: show the first style page.
func NewStyleHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		if ok, err := d.ensureAccess(c); !ok {
			return err
		}

		list := d.Styles.List(context.Background())
		return c.Send(d.Texts.Get("style.prompt"), d.Keyboard.StyleMenu(list, 0), htmlOpts)
	}
}

// NewMenuStyleCallback swaps the panel for the style picker.
func NewMenuStyleCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		decision := d.Gate.JoinCheck(context.Background(), c.Sender().ID)
		if !decision.Allowed {
			if err := c.Respond(); err != nil {
				return err
			}
			return d.sendGate(c, decision)
		}

		list := d.Styles.List(context.Background())
		if err := c.Edit(d.Texts.Get("style.prompt"), d.Keyboard.StyleMenu(list, 0), htmlOpts); err != nil {
			return err
		}
		return c.Respond()
	}
}

// NewStylePageCallback flips the style picker to another page, editing only
// the keyboard.
func NewStylePageCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		_, payload, err := keyboard.DecodeCallback(callbackData(c))
		if err != nil {
			return c.Respond()
		}

		page, err := strconv.Atoi(payload)
		if err != nil {
			return c.Respond()
		}

		list := d.Styles.List(context.Background())
		if err := c.Edit(d.Keyboard.StyleMenu(list, page)); err != nil {
			return err
		}
		return c.Respond()
	}
}

// NewSetStyleCallback applies the chosen style and returns to the panel.
func NewSetStyleCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		_, payload, err := keyboard.DecodeCallback(callbackData(c))
		if err != nil {
			return c.Respond()
		}

		idx, err := strconv.Atoi(payload)
		if err != nil {
			return c.Respond()
		}

		list := d.Styles.List(context.Background())
		if idx >= 0 && idx < len(list) {
			if err := d.Users.SetStyle(c.Sender().ID, list[idx]); err != nil {
				return err
			}
		}

		if err := d.sendPanel(c, true); err != nil {
			return err
		}
		return c.Respond(&telebot.CallbackResponse{Text: "Style updated"})
	}
}

// NewRandStyleCallback picks a random style and returns to the panel.
func NewRandStyleCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if _, err := d.setRandomStyle(c.Sender().ID); err != nil {
			return err
		}

		if err := d.sendPanel(c, true); err != nil {
			return err
		}
		return c.Respond(&telebot.CallbackResponse{Text: "Random style set"})
	}
}

// NewModelHandler handles /model: show the model picker.
func NewModelHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		if ok, err := d.ensureAccess(c); !ok {
			return err
		}

		models := d.Settings.Snapshot().Models
		return c.Send(d.Texts.Get("model.prompt"), d.Keyboard.ModelMenu(models), htmlOpts)
	}
}

// NewMenuModelCallback swaps the panel for the model picker.
func NewMenuModelCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		decision := d.Gate.JoinCheck(context.Background(), c.Sender().ID)
		if !decision.Allowed {
			if err := c.Respond(); err != nil {
				return err
			}
			return d.sendGate(c, decision)
		}

		models := d.Settings.Snapshot().Models
		if err := c.Edit(d.Texts.Get("model.prompt"), d.Keyboard.ModelMenu(models), htmlOpts); err != nil {
			return err
		}
		return c.Respond()
	}
}

// NewSetModelCallback applies the chosen model and returns to the panel.
// Only models from the configured list are accepted.
func NewSetModelCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		_, model, err := keyboard.DecodeCallback(callbackData(c))
		if err != nil || model == "" {
			return c.Respond()
		}

		settings := d.Settings.Snapshot()
		if !settings.HasModel(model) {
			return c.Respond(&telebot.CallbackResponse{Text: "Unknown model"})
		}

		if err := d.Users.SetModel(c.Sender().ID, model); err != nil {
			return err
		}

		if err := d.sendPanel(c, true); err != nil {
			return err
		}
		return c.Respond(&telebot.CallbackResponse{Text: "Model updated"})
	}
}

// callbackData extracts the raw callback payload, stripping the "\f" marker
// telebot prepends to unique-routed callbacks.
func callbackData(c telebot.Context) string {
	if cb := c.Callback(); cb != nil {
		return strings.TrimPrefix(cb.Data, "\f")
	}
	return ""
}
