package bot

import (
	"context"
	"strconv"
	"strings"

	telebot "gopkg.in/telebot.v3"
)

// chatMemberAPI is the slice of telebot.Bot the membership checker needs.
type chatMemberAPI interface {
	ChatMemberOf(chat, user telebot.Recipient) (*telebot.ChatMember, error)
}

// MembershipChecker answers join-gate queries through the Telegram API.
type MembershipChecker struct {
	api chatMemberAPI
}

// NewMembershipChecker wraps a telebot instance.
func NewMembershipChecker(api chatMemberAPI) *MembershipChecker {
	return &MembershipChecker{api: api}
}

// IsMember reports whether the user belongs to the chat. Chat is either a
// "@username" or a numeric id ("-100..."). Only active membership statuses
// count; restricted, left, and kicked do not.
func (m *MembershipChecker) IsMember(ctx context.Context, chat string, userID int64) (bool, error) {
	member, err := m.api.ChatMemberOf(chatRecipient(chat), &telebot.User{ID: userID})
	if err != nil {
		return false, err
	}

	switch member.Role {
	case telebot.Creator, telebot.Administrator, telebot.Member:
		return true, nil
	default:
		return false, nil
	}
}

// chatHandle lets "@username" chats act as a telebot Recipient.
type chatHandle string

func (h chatHandle) Recipient() string { return string(h) }

func chatRecipient(chat string) telebot.Recipient {
	chat = strings.TrimSpace(chat)
	if id, err := strconv.ParseInt(chat, 10, 64); err == nil {
		return telebot.ChatID(id)
	}
	return chatHandle(chat)
}
