package handlers

import (
	"bytes"
	"context"
	"math/rand"

	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/texts"
)

// NewGenHandler handles /gen. Groups require an inline prompt; in private
// chat a bare /gen gets a usage hint.
func NewGenHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		prompt := commandArgs(c)

		if prompt == "" {
			key := "gen.usage"
			if c.Chat() != nil && c.Chat().Type != telebot.ChatPrivate {
				key = "gen.usage_group"
			}
			return c.Send(d.Texts.Get(key), htmlOpts)
		}

		return d.doGenerate(c, prompt)
	}
}

// NewRandomHandler handles /random: pick a random style, then generate.
func NewRandomHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		prompt := commandArgs(c)
		if prompt == "" {
			return c.Send(d.Texts.Get("random.usage"), htmlOpts)
		}

		if _, err := d.setRandomStyle(c.Sender().ID); err != nil {
			return err
		}

		return d.doGenerate(c, prompt)
	}
}

// NewRandomStyleHandler handles /randomstyle: pick a style and show the panel.
func NewRandomStyleHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		if ok, err := d.ensureAccess(c); !ok {
			return err
		}

		if _, err := d.setRandomStyle(c.Sender().ID); err != nil {
			return err
		}

		return d.sendPanel(c, false)
	}
}

// NewGenAskCallback nudges the user toward the /gen syntax.
func NewGenAskCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(d.Texts.Get("gen.ask"), htmlOpts)
	}
}

func (d *Deps) setRandomStyle(uid int64) (string, error) {
	list := d.Styles.List(context.Background())
	if len(list) == 0 {
		return "", nil
	}
	style := list[rand.Intn(len(list))]
	if err := d.Users.SetStyle(uid, style); err != nil {
		return "", err
	}
	return style, nil
}

// doGenerate runs the full generation flow: access chain, prompt shaping,
// status message, image fetch, photo delivery. History records only after a
// successful fetch.
func (d *Deps) doGenerate(c telebot.Context, prompt string) error {
	ctx := context.Background()
	uid := c.Sender().ID

	decision := d.Gate.CheckBasic(ctx, uid)
	if !decision.Allowed {
		if len(decision.Targets) > 0 || len(decision.Unknown) > 0 {
			return d.sendGate(c, decision)
		}
		return c.Send(decision.Message, htmlOpts)
	}

	settings := d.Settings.Snapshot()
	prompt = trimPrompt(prompt, settings.MaxPromptLen)
	if prompt == "" {
		return c.Send(d.Texts.Get("gen.missing"), htmlOpts)
	}

	decision, err := d.Gate.ChargeQuota(ctx, uid)
	if err != nil {
		return err
	}
	if !decision.Allowed {
		return c.Send(decision.Message, htmlOpts)
	}

	profile, err := d.Users.GetOrCreate(uid)
	if err != nil {
		return err
	}

	finalPrompt := prompt
	if profile.Enhance {
		finalPrompt = enhancePrompt(prompt)
	}

	status, err := c.Bot().Send(c.Chat(),
		d.Texts.Getf("gen.status", profile.Style, profile.Model), htmlOpts)
	if err != nil {
		return err
	}
	defer func() {
		// Best effort: a stuck status message is cosmetic.
		_ = c.Bot().Delete(status)
	}()

	img, err := d.Images.Generate(ctx, finalPrompt, profile.Model, profile.Style)
	if err != nil {
		return c.Send(d.Texts.Getf("gen.error", err), htmlOpts)
	}

	if err := d.Users.RecordPrompt(uid, prompt); err != nil {
		d.Log.Error("history record failed", "user_id", uid, "error", err)
	}

	caption := d.Texts.Getf("gen.caption",
		d.BotName,
		profile.Style,
		profile.Model,
		texts.OnOff(profile.Enhance),
		prompt,
	)

	photo := &telebot.Photo{
		File:    telebot.FromReader(bytes.NewReader(img)),
		Caption: caption,
	}

	return c.Send(photo, htmlOpts)
}
