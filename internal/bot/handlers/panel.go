package handlers

import (
	"context"
	"strings"

	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/access"
	"github.com/raolabs/raobot/internal/texts"
)

// sendPanel renders the main control panel, either as a fresh message or by
// editing the one the callback came from.
func (d *Deps) sendPanel(c telebot.Context, edit bool) error {
	uid := c.Sender().ID

	profile, err := d.Users.GetOrCreate(uid)
	if err != nil {
		return err
	}

	text := d.Texts.Panel(d.Settings.Snapshot(), *profile)
	markup := d.Keyboard.MainMenu(d.isOwner(uid), profile.Enhance)

	if edit {
		return c.Edit(text, markup, htmlOpts)
	}
	return c.Send(text, markup, htmlOpts)
}

// sendGate sends the join-required message with the join keyboard.
func (d *Deps) sendGate(c telebot.Context, decision access.Decision) error {
	text := d.Texts.JoinRequired(decision.Targets, decision.Unknown)
	markup := d.Keyboard.GateMenu(d.Settings.Snapshot().JoinTargets)
	return c.Send(text, markup, htmlOpts)
}

// ensureAccess runs the join gate and sends the gate message on denial. It
// reports whether the caller may proceed.
func (d *Deps) ensureAccess(c telebot.Context) (bool, error) {
	decision := d.Gate.JoinCheck(context.Background(), c.Sender().ID)
	if decision.Allowed {
		return true, nil
	}
	return false, d.sendGate(c, decision)
}

// NewStartHandler opens the control panel, or the join gate when the sender
// has not joined the required chats.
func NewStartHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		uid := c.Sender().ID

		if d.Bans.IsBanned(uid) && !d.isOwner(uid) {
			return c.Send(d.Texts.Get("join.banned"), htmlOpts)
		}

		if ok, err := d.ensureAccess(c); !ok {
			return err
		}

		return d.sendPanel(c, false)
	}
}

// NewHelpHandler shows the help and owner-contact card.
func NewHelpHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		return c.Send(d.Texts.Help(d.Owner), d.Keyboard.BackMenu(), htmlOpts)
	}
}

// NewEnhanceHandler toggles the prompt enhancer and re-renders the panel.
func NewEnhanceHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		if _, err := d.Users.ToggleEnhance(c.Sender().ID); err != nil {
			return err
		}
		return d.sendPanel(c, false)
	}
}

// NewHistoryHandler lists the user's recent prompts, newest first.
func NewHistoryHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		return c.Send(d.historyText(c.Sender().ID), htmlOpts)
	}
}

func (d *Deps) historyText(uid int64) string {
	profile, err := d.Users.GetOrCreate(uid)
	if err != nil || len(profile.History) == 0 {
		return d.Texts.Get("history.empty")
	}

	var b strings.Builder
	b.WriteString(d.Texts.Get("history.header"))
	for i := len(profile.History) - 1; i >= 0; i-- {
		b.WriteString("• ")
		b.WriteString(profile.History[i])
		b.WriteString("\n")
	}
	return b.String()
}

// NewCurrentHandler shows the user's active style, model, and toggles.
func NewCurrentHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		text, err := d.currentText(c.Sender().ID)
		if err != nil {
			return err
		}
		return c.Send(text, htmlOpts)
	}
}

func (d *Deps) currentText(uid int64) (string, error) {
	profile, err := d.Users.GetOrCreate(uid)
	if err != nil {
		return "", err
	}

	voice := profile.TTSVoice
	if voice == "" {
		voice = "default"
	}

	settings := d.Settings.Snapshot()
	return d.Texts.Getf("current.body",
		profile.Style,
		profile.Model,
		texts.OnOff(profile.Enhance),
		voice,
		profile.DailyUsed,
		texts.DailyLimitLabel(settings.DailyLimit),
	), nil
}

// Callback handlers for the panel menu.

// NewBackMainCallback re-renders the panel in place.
func NewBackMainCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if err := d.sendPanel(c, true); err != nil {
			return err
		}
		return c.Respond()
	}
}

// NewMenuHelpCallback swaps the current message for the help card.
func NewMenuHelpCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if err := c.Edit(d.Texts.Help(d.Owner), d.Keyboard.BackMenu(), htmlOpts); err != nil {
			return err
		}
		return c.Respond()
	}
}

// NewMenuHistoryCallback swaps the current message for the history list.
func NewMenuHistoryCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if err := c.Edit(d.historyText(c.Sender().ID), d.Keyboard.BackMenu(), htmlOpts); err != nil {
			return err
		}
		return c.Respond()
	}
}

// NewMenuCurrentCallback swaps the current message for the current-settings card.
func NewMenuCurrentCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		text, err := d.currentText(c.Sender().ID)
		if err != nil {
			return err
		}
		if err := c.Edit(text, d.Keyboard.BackMenu(), htmlOpts); err != nil {
			return err
		}
		return c.Respond()
	}
}

// NewToggleEnhanceCallback flips the enhancer and refreshes the panel.
func NewToggleEnhanceCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if _, err := d.Users.ToggleEnhance(c.Sender().ID); err != nil {
			return err
		}
		if err := d.sendPanel(c, true); err != nil {
			return err
		}
		return c.Respond(&telebot.CallbackResponse{Text: "Updated"})
	}
}

// NewNoopCallback acknowledges decorative buttons.
func NewNoopCallback() CallbackHandler {
	return func(c telebot.Context) error {
		return c.Respond()
	}
}
