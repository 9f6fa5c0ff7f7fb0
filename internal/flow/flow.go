// Package flow tracks the owner console's pending staged input. At most one
// step can be armed per user; the next text message consumes it.
package flow

import "time"

// Step identifies which owner console action is waiting for text input.
type Step string

const (
	// StepCooldown awaits a new per-user cooldown in seconds.
	StepCooldown Step = "cooldown"
	// StepDaily awaits a new daily generation limit.
	StepDaily Step = "daily"
	// StepAddJoin awaits a channel reference plus invite link to gate on.
	StepAddJoin Step = "add_join"
	// StepRemoveJoin awaits the index of a join target to remove.
	StepRemoveJoin Step = "remove_join"
	// StepModels awaits a comma-separated list of enabled image models.
	StepModels Step = "models"
	// StepUIText awaits the pipe-separated panel text override.
	StepUIText Step = "ui_text"
	// StepBroadcast awaits the message to fan out to all known users.
	StepBroadcast Step = "broadcast"
	// StepBanUnban awaits a user id to toggle on the ban list.
	StepBanUnban Step = "ban_unban"
	// StepResetUser awaits a user id whose profile should be reset.
	StepResetUser Step = "reset_user"
)

// PendingInput records the armed step for a user.
type PendingInput struct {
	UserID    int64     `json:"user_id"`
	Step      Step      `json:"step"`
	UpdatedAt time.Time `json:"updated_at"`
}
