// Package access decides whether a user may run a command. Checks are
// ordered: ban list, global switch, join gate, daily quota, cooldown.
package access

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/raolabs/raobot/internal/domain"
	"github.com/raolabs/raobot/internal/storage"
	"github.com/raolabs/raobot/internal/texts"
	"github.com/raolabs/raobot/internal/user"
	"github.com/raolabs/raobot/pkg/metrics"
)

// Reason classifies a denial.
type Reason string

const (
	// ReasonAllowed marks a passing decision.
	ReasonAllowed Reason = "allowed"
	// ReasonBanned denies users on the ban list.
	ReasonBanned Reason = "banned"
	// ReasonDisabled denies everything while the bot is switched off.
	ReasonDisabled Reason = "disabled"
	// ReasonJoinRequired denies users missing a required channel membership.
	ReasonJoinRequired Reason = "join_required"
	// ReasonDailyLimit denies once the daily quota is spent.
	ReasonDailyLimit Reason = "daily_limit"
	// ReasonCooldown denies while the inter-generation cooldown runs.
	ReasonCooldown Reason = "cooldown"
)

// Decision is the outcome of an access check.
type Decision struct {
	Allowed bool
	Reason  Reason
	// Message is the user-facing denial text. Empty when allowed.
	Message string
	// Targets lists the join-gate chats when Reason is ReasonJoinRequired.
	Targets []domain.JoinTarget
	// Unknown lists targets whose membership could not be verified.
	Unknown []domain.JoinTarget
}

// MembershipChecker reports whether a user is a member of a chat.
type MembershipChecker interface {
	IsMember(ctx context.Context, chat string, userID int64) (bool, error)
}

// Gatekeeper runs the access chain. Quota and cooldown checks charge the
// user as they pass; a later denial does not refund an earlier charge.
type Gatekeeper struct {
	settings   *storage.SettingsRepository
	bans       *storage.BanRepository
	users      *user.Service
	membership MembershipChecker
	log        *slog.Logger
	ownerID    int64
}

// NewGatekeeper constructs a Gatekeeper.
func NewGatekeeper(
	settings *storage.SettingsRepository,
	bans *storage.BanRepository,
	users *user.Service,
	membership MembershipChecker,
	ownerID int64,
	log *slog.Logger,
) *Gatekeeper {
	if log == nil {
		log = slog.Default()
	}

	return &Gatekeeper{
		settings:   settings,
		bans:       bans,
		users:      users,
		membership: membership,
		log:        log,
		ownerID:    ownerID,
	}
}

// CheckBasic runs the side-effect-free part of the chain: ban list, global
// switch, join gate. The owner is exempt only from the global switch and the
// join gate; the ban list applies to everyone.
func (g *Gatekeeper) CheckBasic(ctx context.Context, id int64) Decision {
	if g.bans.IsBanned(id) {
		return g.deny(id, ReasonBanned, "🚫 You are banned.")
	}

	settings := g.settings.Snapshot()

	if !settings.BotEnabled && id != g.ownerID {
		return g.deny(id, ReasonDisabled, settings.MaintenanceText)
	}

	if d := g.checkJoinGate(ctx, id, settings); !d.Allowed {
		return d
	}

	return allowed()
}

// JoinCheck runs only the join gate. Used by /start and the gate recheck
// callback, which report gate state without touching the ban list or the
// global switch.
func (g *Gatekeeper) JoinCheck(ctx context.Context, id int64) Decision {
	return g.checkJoinGate(ctx, id, g.settings.Snapshot())
}

// Authorize runs the full chain for quota-charged commands. Passing the
// daily check spends one unit even if the cooldown check then denies.
func (g *Gatekeeper) Authorize(ctx context.Context, id int64) (Decision, error) {
	if d := g.CheckBasic(ctx, id); !d.Allowed {
		return d, nil
	}

	return g.ChargeQuota(ctx, id)
}

// ChargeQuota runs only the side-effecting checks: daily quota, then
// cooldown. They apply to the owner as well. Callers that already ran
// CheckBasic use this directly so input validation can sit between the gate
// and the charge.
func (g *Gatekeeper) ChargeQuota(_ context.Context, id int64) (Decision, error) {
	ok, used, limit, err := g.users.ConsumeDaily(id)
	if err != nil {
		return Decision{}, err
	}
	if !ok {
		msg := fmt.Sprintf("📛 Daily limit reached: %d/%d. Come back tomorrow.", used, limit)
		return g.deny(id, ReasonDailyLimit, msg), nil
	}

	ok, wait, err := g.users.ReserveCooldown(id)
	if err != nil {
		return Decision{}, err
	}
	if !ok {
		msg := fmt.Sprintf("⏳ Slow down. Try again in %s.", texts.HumanDuration(wait))
		return g.deny(id, ReasonCooldown, msg), nil
	}

	return allowed(), nil
}

// checkJoinGate verifies membership in every configured target. Check
// failures land in the unknown class; strict mode treats unknown as missing.
func (g *Gatekeeper) checkJoinGate(ctx context.Context, id int64, settings domain.Settings) Decision {
	if id == g.ownerID || !settings.JoinGateEnabled || len(settings.JoinTargets) == 0 || g.membership == nil {
		return allowed()
	}

	var missing, unknown []domain.JoinTarget
	for _, target := range settings.JoinTargets {
		member, err := g.membership.IsMember(ctx, target.Chat, id)
		if err != nil {
			g.log.Warn("membership check failed",
				slog.Int64("user_id", id),
				slog.String("chat", target.Chat),
				slog.Any("error", err),
			)

			unknown = append(unknown, target)
			continue
		}

		if !member {
			missing = append(missing, target)
		}
	}

	if len(missing) > 0 || (len(unknown) > 0 && settings.JoinGateStrict) {
		d := g.deny(id, ReasonJoinRequired, "🔒 Join the required channels first, then tap Recheck.")
		d.Targets = missing
		d.Unknown = unknown
		return d
	}

	return allowed()
}

func (g *Gatekeeper) deny(id int64, reason Reason, message string) Decision {
	metrics.RecordDenial(string(reason))
	g.log.Debug("access denied",
		slog.Int64("user_id", id),
		slog.String("reason", string(reason)),
	)

	return Decision{Allowed: false, Reason: reason, Message: message}
}

func allowed() Decision {
	return Decision{Allowed: true, Reason: ReasonAllowed}
}
