package handlers

import (
	"context"
	"time"

	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/usercache"
)

// NewPingHandler handles /ping.
func NewPingHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		uptime := time.Since(d.StartedAt).Round(time.Second)
		return c.Send(d.Texts.Getf("ping.body", uptime), htmlOpts)
	}
}

// NewIDHandler handles /id: echo the chat and user ids.
func NewIDHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		return c.Send(d.Texts.Getf("id.body", c.Chat().ID, c.Sender().ID), htmlOpts)
	}
}

// NewUIDHandler handles /uid @username: answer from the username cache only.
func NewUIDHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		raw := commandArgs(c)
		if raw == "" {
			return c.Send(d.Texts.Get("uid.usage"), htmlOpts)
		}

		handle := usercache.NormalizeHandle(raw)
		entry, ok := d.Names.Resolve(handle)
		if !ok {
			return c.Send(d.Texts.Getf("uid.not_found", handle), htmlOpts)
		}

		return c.Send(d.Texts.Getf("uid.found", handle, entry.ID, entry.Name), htmlOpts)
	}
}

// NewWordGameHandler handles /wordgame: start a round.
func NewWordGameHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		round := d.Game.Start(c.Sender().ID)
		return c.Send(d.Texts.Getf("game.start", round.Word), d.Keyboard.GameMenu(), htmlOpts)
	}
}

// NewGameStartCallback starts a fresh round from the inline button.
func NewGameStartCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if err := c.Respond(); err != nil {
			return err
		}

		round := d.Game.Start(c.Sender().ID)
		return c.Send(d.Texts.Getf("game.start", round.Word), d.Keyboard.GameMenu(), htmlOpts)
	}
}

// NewGameShowCallback reveals the meaning of the active round.
func NewGameShowCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if err := c.Respond(); err != nil {
			return err
		}

		round, ok := d.Game.Reveal(c.Sender().ID)
		if !ok {
			return c.Send(d.Texts.Get("game.no_round"), htmlOpts)
		}
		return c.Send(d.Texts.Getf("game.meaning", round.Meaning), htmlOpts)
	}
}

// NewGateRecheckCallback re-runs the join check from the gate keyboard.
func NewGateRecheckCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		decision := d.Gate.JoinCheck(context.Background(), c.Sender().ID)
		if decision.Allowed {
			if err := c.Respond(&telebot.CallbackResponse{Text: "✅ Verified!"}); err != nil {
				return err
			}
			return c.Edit(d.Texts.Get("join.recheck_ok"), htmlOpts)
		}

		if err := c.Respond(&telebot.CallbackResponse{Text: "❌ Not joined yet"}); err != nil {
			return err
		}

		text := d.Texts.JoinRequired(decision.Targets, decision.Unknown)
		return c.Edit(text, d.Keyboard.GateMenu(d.Settings.Snapshot().JoinTargets), htmlOpts)
	}
}
