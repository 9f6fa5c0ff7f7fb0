package bot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"
)

type stubMemberAPI struct {
	role telebot.MemberStatus
	err  error

	gotChat telebot.Recipient
}

func (s *stubMemberAPI) ChatMemberOf(chat, _ telebot.Recipient) (*telebot.ChatMember, error) {
	s.gotChat = chat
	if s.err != nil {
		return nil, s.err
	}
	return &telebot.ChatMember{Role: s.role}, nil
}

func TestMembershipChecker_IsMember(t *testing.T) {
	cases := []struct {
		role   telebot.MemberStatus
		member bool
	}{
		{telebot.Creator, true},
		{telebot.Administrator, true},
		{telebot.Member, true},
		{telebot.Restricted, false},
		{telebot.Left, false},
		{telebot.Kicked, false},
	}

	for _, tc := range cases {
		api := &stubMemberAPI{role: tc.role}
		checker := NewMembershipChecker(api)

		ok, err := checker.IsMember(context.Background(), "@raoart", 42)
		require.NoError(t, err)
		assert.Equal(t, tc.member, ok, "role %s", tc.role)
	}
}

func TestMembershipChecker_IsMember_Error(t *testing.T) {
	api := &stubMemberAPI{err: errors.New("chat not found")}
	checker := NewMembershipChecker(api)

	ok, err := checker.IsMember(context.Background(), "@missing", 42)
	require.Error(t, err)
	assert.False(t, ok)
}

func TestChatRecipient(t *testing.T) {
	assert.Equal(t, telebot.ChatID(-1001234567890), chatRecipient("-1001234567890"))
	assert.Equal(t, "@raoart", chatRecipient("@raoart").Recipient())
	assert.Equal(t, "@raoart", chatRecipient("  @raoart  ").Recipient())
}
