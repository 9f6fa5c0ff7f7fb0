package handlers

import (
	"bytes"
	"context"
	"strings"

	telebot "gopkg.in/telebot.v3"
)

// voicesShown caps the /voices listing.
const voicesShown = 80

// NewTTSHandler handles /tts: synthesize the given text with the user's voice.
func NewTTSHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		return d.doTTS(c, commandArgs(c))
	}
}

// NewTTSAskCallback nudges the user toward the /tts syntax.
func NewTTSAskCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(d.Texts.Get("tts.ask"), htmlOpts)
	}
}

func (d *Deps) doTTS(c telebot.Context, text string) error {
	ctx := context.Background()

	if ok, err := d.ensureAccess(c); !ok {
		return err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return c.Send(d.Texts.Get("tts.missing"), htmlOpts)
	}

	voice := d.resolveVoice(ctx, c.Sender().ID)

	status, err := c.Bot().Send(c.Chat(), d.Texts.Getf("tts.status", voice), htmlOpts)
	if err != nil {
		return err
	}

	audio, err := d.TTS.Synthesize(ctx, text, voice)
	if err != nil {
		_, editErr := c.Bot().Edit(status, d.Texts.Getf("tts.error", err), htmlOpts)
		return editErr
	}

	clip := &telebot.Audio{
		File:    telebot.FromReader(bytes.NewReader(audio)),
		Title:   "TTS",
		Caption: d.Texts.Getf("tts.caption", voice),
	}

	if err := c.Send(clip, htmlOpts); err != nil {
		return err
	}

	_ = c.Bot().Delete(status)
	return nil
}

// resolveVoice picks the voice in preference order: user setting, global
// default, first API voice, the literal "default".
func (d *Deps) resolveVoice(ctx context.Context, uid int64) string {
	profile, err := d.Users.GetOrCreate(uid)
	if err == nil && strings.TrimSpace(profile.TTSVoice) != "" {
		return strings.TrimSpace(profile.TTSVoice)
	}

	if v := strings.TrimSpace(d.Settings.Snapshot().TTSDefaultVoice); v != "" {
		return v
	}

	if voices, err := d.TTS.Voices(ctx); err == nil && len(voices) > 0 {
		return voices[0]
	}

	return "default"
}

// NewVoicesHandler handles /voices: list what the TTS API offers.
func NewVoicesHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		if ok, err := d.ensureAccess(c); !ok {
			return err
		}

		voices, err := d.TTS.Voices(context.Background())
		if err != nil {
			return c.Send(d.Texts.Getf("voices.error", err), htmlOpts)
		}
		if len(voices) == 0 {
			return c.Send(d.Texts.Get("voices.empty"), htmlOpts)
		}

		if len(voices) > voicesShown {
			voices = voices[:voicesShown]
		}

		var b strings.Builder
		b.WriteString(d.Texts.Get("voices.header"))
		for _, v := range voices {
			b.WriteString("• <code>")
			b.WriteString(v)
			b.WriteString("</code>\n")
		}

		return c.Send(b.String(), htmlOpts)
	}
}

// NewVoiceHandler handles /voice NAME: set the user's TTS voice.
func NewVoiceHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		if ok, err := d.ensureAccess(c); !ok {
			return err
		}

		name := commandArgs(c)
		if name == "" {
			return c.Send(d.Texts.Get("voice.usage"), htmlOpts)
		}

		if err := d.Users.SetVoice(c.Sender().ID, name); err != nil {
			return err
		}

		return c.Send(d.Texts.Getf("voice.updated", name), htmlOpts)
	}
}
