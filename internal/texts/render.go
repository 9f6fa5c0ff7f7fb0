package texts

import (
	"fmt"
	"strings"

	"github.com/raolabs/raobot/internal/domain"
)

// OwnerInfo feeds the /help card.
type OwnerInfo struct {
	Name     string
	Username string
	Link     string
	Bio      string
}

// OnOff renders a boolean the way the panel shows toggles.
func OnOff(v bool) string {
	if v {
		return "ON ✅"
	}
	return "OFF ❌"
}

// Panel renders the main control panel for a user.
func (s *Store) Panel(settings domain.Settings, p domain.UserProfile) string {
	return s.Getf("panel.body",
		settings.UITitle,
		settings.UISubtitle,
		p.Style,
		p.Model,
		OnOff(p.Enhance),
		settings.Footer,
	)
}

// Help renders the help and owner-contact card.
func (s *Store) Help(owner OwnerInfo) string {
	return s.Getf("help.body", owner.Name, owner.Username, owner.Link, owner.Link, owner.Bio)
}

// JoinRequired renders the join-gate message. Missing lists chats the user
// has not joined; unknown lists chats whose membership could not be checked.
func (s *Store) JoinRequired(missing, unknown []domain.JoinTarget) string {
	var b strings.Builder
	b.WriteString(s.Get("join.header"))

	if len(missing) > 0 {
		b.WriteString(s.Get("join.missing_title"))
		for _, t := range missing {
			fmt.Fprintf(&b, "• <code>%s</code>\n", t.Chat)
		}
		b.WriteString("\n")
	}

	if len(unknown) > 0 {
		b.WriteString(s.Get("join.unknown_title"))
		for _, t := range unknown {
			fmt.Fprintf(&b, "• <code>%s</code>\n", t.Chat)
		}
		b.WriteString("\n")
		b.WriteString(s.Get("join.unknown_hint"))
	}

	b.WriteString(s.Get("join.footer"))

	return b.String()
}

// DailyLimitLabel renders a daily limit, where zero means unlimited.
func DailyLimitLabel(limit int) string {
	if limit <= 0 {
		return "∞"
	}
	return fmt.Sprintf("%d", limit)
}

// HumanDuration renders seconds as "Ns" or "Nm Ns".
func HumanDuration(seconds int) string {
	if seconds <= 0 {
		return "0s"
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
