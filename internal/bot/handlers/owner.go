package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	telebot "gopkg.in/telebot.v3"

	"github.com/raolabs/raobot/internal/bot/keyboard"
	"github.com/raolabs/raobot/internal/domain"
	"github.com/raolabs/raobot/internal/flow"
	"github.com/raolabs/raobot/internal/texts"
	"github.com/raolabs/raobot/internal/usercache"
	"github.com/raolabs/raobot/pkg/metrics"
)

// sendOwnerPanel renders the owner console.
func (d *Deps) sendOwnerPanel(c telebot.Context, edit bool) error {
	text := d.Texts.Get("owner.panel")
	markup := d.Keyboard.OwnerMenu(d.Settings.Snapshot())

	if edit {
		return c.Edit(text, markup, htmlOpts)
	}
	return c.Send(text, markup, htmlOpts)
}

// NewOwnerCallback dispatches every owner:* button. Non-owners get a refusal
// regardless of which button they somehow pressed.
func NewOwnerCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if err := c.Respond(); err != nil {
			return err
		}

		uid := c.Sender().ID
		if !d.isOwner(uid) {
			return c.Send(d.Texts.Get("owner.denied"), htmlOpts)
		}

		ctx := context.Background()
		data := callbackData(c)

		switch data {
		case keyboard.CallbackOwnerPanel:
			return d.sendOwnerPanel(c, true)

		case keyboard.CallbackOwnerToggleBot:
			return d.toggleSetting(c, func(s *domain.Settings) { s.BotEnabled = !s.BotEnabled })

		case keyboard.CallbackOwnerToggleGate:
			return d.toggleSetting(c, func(s *domain.Settings) { s.JoinGateEnabled = !s.JoinGateEnabled })

		case keyboard.CallbackOwnerToggleStrict:
			return d.toggleSetting(c, func(s *domain.Settings) { s.JoinGateStrict = !s.JoinGateStrict })

		case keyboard.CallbackOwnerSetCooldown:
			return d.beginStep(ctx, c, uid, flow.StepCooldown, "owner.ask_cooldown")

		case keyboard.CallbackOwnerSetDaily:
			return d.beginStep(ctx, c, uid, flow.StepDaily, "owner.ask_daily")

		case keyboard.CallbackOwnerAddJoin:
			return d.beginStep(ctx, c, uid, flow.StepAddJoin, "owner.ask_add_join")

		case keyboard.CallbackOwnerRemoveJoin:
			return d.beginStep(ctx, c, uid, flow.StepRemoveJoin, "owner.ask_remove_join")

		case keyboard.CallbackOwnerModels:
			return d.beginStep(ctx, c, uid, flow.StepModels, "owner.ask_models")

		case keyboard.CallbackOwnerUIText:
			return d.beginStep(ctx, c, uid, flow.StepUIText, "owner.ask_ui_text")

		case keyboard.CallbackOwnerBroadcast:
			return d.beginStep(ctx, c, uid, flow.StepBroadcast, "owner.ask_broadcast")

		case keyboard.CallbackOwnerBanUnban:
			return d.beginStep(ctx, c, uid, flow.StepBanUnban, "owner.ask_ban_unban")

		case keyboard.CallbackOwnerResetUser:
			return d.beginStep(ctx, c, uid, flow.StepResetUser, "owner.ask_reset_user")

		case keyboard.CallbackOwnerListJoin:
			return d.sendJoinList(c)

		case keyboard.CallbackOwnerRefreshStyles:
			list, err := d.Styles.Refresh(ctx)
			if err != nil {
				return err
			}
			return c.Send(d.Texts.Getf("owner.styles_refreshed", len(list)), htmlOpts)

		case keyboard.CallbackOwnerStats:
			return d.sendStats(c)

		case keyboard.CallbackOwnerResetAll:
			if err := d.Users.ResetAll(); err != nil {
				return err
			}
			return c.Send(d.Texts.Get("owner.reset_all_done"), htmlOpts)
		}

		return nil
	}
}

func (d *Deps) toggleSetting(c telebot.Context, mutate func(*domain.Settings)) error {
	if err := d.Settings.Update(mutate); err != nil {
		return err
	}
	return d.sendOwnerPanel(c, true)
}

func (d *Deps) beginStep(ctx context.Context, c telebot.Context, uid int64, step flow.Step, promptKey string) error {
	if err := d.Flow.Begin(ctx, uid, step); err != nil {
		return err
	}
	return c.Send(d.Texts.Get(promptKey), htmlOpts)
}

func (d *Deps) sendJoinList(c telebot.Context) error {
	targets := d.Settings.Snapshot().JoinTargets
	if len(targets) == 0 {
		return c.Send(d.Texts.Get("owner.join_empty"), htmlOpts)
	}

	var b strings.Builder
	for i, t := range targets {
		fmt.Fprintf(&b, "%d) <code>%s</code>\n   🔗 %s\n", i+1, t.Chat, t.Invite)
	}

	return c.Send(d.Texts.Getf("owner.join_list", b.String()), htmlOpts)
}

func (d *Deps) sendStats(c telebot.Context) error {
	settings := d.Settings.Snapshot()
	return c.Send(d.Texts.Getf("owner.stats",
		d.Users.Count(),
		d.Bans.Count(),
		onOffWord(settings.BotEnabled),
		onOffWord(settings.JoinGateEnabled),
	), htmlOpts)
}

func onOffWord(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// NewOwnerTextHandler consumes the owner's pending staged input. It is the
// router's default text handler; non-owner text falls through untouched.
func NewOwnerTextHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		uid := c.Sender().ID
		if !d.isOwner(uid) {
			return nil
		}

		step, ok, err := d.Flow.Take(context.Background(), uid)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		return d.handleOwnerStep(c, step, strings.TrimSpace(c.Text()))
	}
}

// handleOwnerStep parses the owner's reply for the consumed step. The slot is
// already cleared; a parse failure reports the format error without retrying.
func (d *Deps) handleOwnerStep(c telebot.Context, step flow.Step, text string) error {
	outcome := "ok"
	defer func() {
		metrics.RecordOwnerFlow(string(step), outcome)
	}()

	switch step {
	case flow.StepCooldown:
		n, err := strconv.Atoi(text)
		if err != nil {
			outcome = "invalid"
			return c.Send(d.Texts.Get("owner.bad_number"), htmlOpts)
		}
		if n < 0 {
			n = 0
		}
		if err := d.Settings.Update(func(s *domain.Settings) { s.CooldownSeconds = n }); err != nil {
			return err
		}
		return c.Send(d.Texts.Getf("owner.cooldown_set", n), htmlOpts)

	case flow.StepDaily:
		n, err := strconv.Atoi(text)
		if err != nil {
			outcome = "invalid"
			return c.Send(d.Texts.Get("owner.bad_number"), htmlOpts)
		}
		if n < 0 {
			n = 0
		}
		if err := d.Settings.Update(func(s *domain.Settings) { s.DailyLimit = n }); err != nil {
			return err
		}
		return c.Send(d.Texts.Getf("owner.daily_set", texts.DailyLimitLabel(n)), htmlOpts)

	case flow.StepAddJoin:
		return d.handleAddJoin(c, text, &outcome)

	case flow.StepRemoveJoin:
		return d.handleRemoveJoin(c, text, &outcome)

	case flow.StepModels:
		parts := splitModels(text)
		if len(parts) == 0 {
			outcome = "invalid"
			return c.Send(d.Texts.Get("owner.models_empty"), htmlOpts)
		}
		if err := d.Settings.Update(func(s *domain.Settings) { s.Models = parts }); err != nil {
			return err
		}
		return c.Send(d.Texts.Getf("owner.models_set", strings.Join(parts, ", ")), htmlOpts)

	case flow.StepUIText:
		if strings.Count(text, "|") < 2 {
			outcome = "invalid"
			return c.Send(d.Texts.Get("owner.ui_text_bad"), htmlOpts)
		}
		parts := strings.SplitN(text, "|", 3)
		if err := d.Settings.Update(func(s *domain.Settings) {
			s.UITitle = strings.TrimSpace(parts[0])
			s.UISubtitle = strings.TrimSpace(parts[1])
			s.Footer = strings.TrimSpace(parts[2])
		}); err != nil {
			return err
		}
		return c.Send(d.Texts.Get("owner.ui_text_set"), htmlOpts)

	case flow.StepBroadcast:
		return d.handleBroadcast(c, text)

	case flow.StepBanUnban:
		return d.handleBanUnban(c, text, &outcome)

	case flow.StepResetUser:
		return d.handleResetUser(c, text, &outcome)
	}

	outcome = "unknown_step"
	return nil
}

func (d *Deps) handleAddJoin(c telebot.Context, text string, outcome *string) error {
	target, ok := parseJoinLine(text)
	if !ok {
		*outcome = "invalid"
		return c.Send(d.Texts.Get("owner.join_bad_format"), htmlOpts)
	}

	duplicate := false
	for _, t := range d.Settings.Snapshot().JoinTargets {
		if t.Chat == target.Chat {
			duplicate = true
			break
		}
	}
	if duplicate {
		*outcome = "duplicate"
		return c.Send(d.Texts.Get("owner.join_duplicate"), htmlOpts)
	}

	if err := d.Settings.Update(func(s *domain.Settings) {
		s.JoinTargets = append(s.JoinTargets, target)
	}); err != nil {
		return err
	}

	return c.Send(d.Texts.Getf("owner.join_added", target.Chat), htmlOpts)
}

func (d *Deps) handleRemoveJoin(c telebot.Context, text string, outcome *string) error {
	removed := false
	if err := d.Settings.Update(func(s *domain.Settings) {
		kept := s.JoinTargets[:0]
		for _, t := range s.JoinTargets {
			if t.Chat == text {
				removed = true
				continue
			}
			kept = append(kept, t)
		}
		s.JoinTargets = kept
	}); err != nil {
		return err
	}

	if !removed {
		*outcome = "not_found"
		return c.Send(d.Texts.Get("owner.join_not_found"), htmlOpts)
	}

	return c.Send(d.Texts.Getf("owner.join_removed", text), htmlOpts)
}

func (d *Deps) handleBroadcast(c telebot.Context, text string) error {
	body := d.Texts.Getf("owner.broadcast_body", text)

	sent := 0
	for _, id := range d.Users.IDs() {
		if _, err := c.Bot().Send(&telebot.User{ID: id}, body, htmlOpts); err != nil {
			metrics.RecordBroadcast("failed")
			continue
		}
		metrics.RecordBroadcast("sent")
		sent++
	}

	return c.Send(d.Texts.Getf("owner.broadcast_done", sent), htmlOpts)
}

func (d *Deps) handleBanUnban(c telebot.Context, text string, outcome *string) error {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		*outcome = "invalid"
		return c.Send(d.Texts.Get("owner.ask_ban_unban"), htmlOpts)
	}

	id, ok := d.resolveUserRef(parts[1])
	if !ok {
		*outcome = "invalid"
		return c.Send(d.Texts.Get("owner.ban_bad_id"), htmlOpts)
	}

	switch strings.ToLower(parts[0]) {
	case "ban":
		if err := d.Bans.Ban(id); err != nil {
			return err
		}
		return c.Send(d.Texts.Getf("owner.banned", id), htmlOpts)
	case "unban":
		if err := d.Bans.Unban(id); err != nil {
			return err
		}
		return c.Send(d.Texts.Getf("owner.unbanned", id), htmlOpts)
	default:
		*outcome = "invalid"
		return c.Send(d.Texts.Get("owner.ask_ban_unban"), htmlOpts)
	}
}

func (d *Deps) handleResetUser(c telebot.Context, text string, outcome *string) error {
	id, ok := d.resolveUserRef(text)
	if !ok {
		*outcome = "invalid"
		return c.Send(d.Texts.Get("owner.ban_bad_id"), htmlOpts)
	}

	existed, err := d.Users.Reset(id)
	if err != nil {
		return err
	}
	if !existed {
		*outcome = "not_found"
		return c.Send(d.Texts.Getf("owner.user_reset_missing", id), htmlOpts)
	}

	return c.Send(d.Texts.Getf("owner.user_reset", id), htmlOpts)
}

// resolveUserRef accepts a numeric id or a cached "@username".
func (d *Deps) resolveUserRef(token string) (int64, bool) {
	token = strings.TrimSpace(token)
	if strings.HasPrefix(token, "@") {
		entry, ok := d.Names.Resolve(usercache.NormalizeHandle(token))
		if !ok {
			return 0, false
		}
		return entry.ID, true
	}

	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseJoinLine parses "<chat> | <invite>" where chat starts with "@" or
// "-100" and the invite is a t.me link.
func parseJoinLine(text string) (domain.JoinTarget, bool) {
	if !strings.Contains(text, "|") {
		return domain.JoinTarget{}, false
	}

	parts := strings.SplitN(text, "|", 2)
	chat := strings.TrimSpace(parts[0])
	invite := strings.TrimSpace(parts[1])

	if chat == "" || invite == "" {
		return domain.JoinTarget{}, false
	}
	if !strings.HasPrefix(chat, "@") && !strings.HasPrefix(chat, "-100") {
		return domain.JoinTarget{}, false
	}
	if !strings.HasPrefix(invite, "https://t.me/") && !strings.HasPrefix(invite, "http://t.me/") {
		return domain.JoinTarget{}, false
	}

	return domain.JoinTarget{Chat: chat, Invite: invite}, true
}

func splitModels(text string) []string {
	parts := make([]string, 0, 4)
	for _, p := range strings.Split(text, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
