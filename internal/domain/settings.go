// Package domain defines the persisted data model shared across services.
package domain

// JoinTarget is a chat the join gate requires membership in.
type JoinTarget struct {
	Chat   string `json:"chat"`
	Invite string `json:"invite"`
}

// Settings is the process-wide, owner-mutable configuration document.
type Settings struct {
	BotEnabled      bool         `json:"bot_enabled"`
	CooldownSeconds int          `json:"cooldown_seconds"`
	DailyLimit      int          `json:"daily_limit"` // 0 = unlimited

	DefaultStyle   string   `json:"default_style"`
	DefaultModel   string   `json:"default_model"`
	Models         []string `json:"models"`
	EnhanceDefault bool     `json:"enhance_default"`

	JoinGateEnabled bool         `json:"join_gate_enabled"`
	JoinGateStrict  bool         `json:"join_gate_strict"`
	JoinTargets     []JoinTarget `json:"join_targets"`

	UITitle         string `json:"ui_title"`
	UISubtitle      string `json:"ui_subtitle"`
	Footer          string `json:"footer"`
	MaintenanceText string `json:"maintenance_text"`

	TTSDefaultVoice string `json:"tts_default_voice"`

	MaxPromptLen int `json:"max_prompt_len"`
}

// DefaultSettings returns the settings applied when no document exists on disk.
// Loaded documents are unmarshalled over these values so missing keys keep
// their defaults.
func DefaultSettings() Settings {
	return Settings{
		BotEnabled:      true,
		CooldownSeconds: 8,
		DailyLimit:      40,

		DefaultStyle:   "Pointillism",
		DefaultModel:   "flux",
		Models:         []string{"flux", "sdxl"},
		EnhanceDefault: true,

		JoinGateEnabled: true,
		JoinGateStrict:  true,
		JoinTargets:     []JoinTarget{},

		UITitle:         "Rao Image Generator",
		UISubtitle:      "Elite AI Image Lab • Ultra HD • Pro UI",
		Footer:          "Rao Lab • /gen /style /model • Root Protected",
		MaintenanceText: "🚧 Bot is temporarily OFF. Please try later.",

		TTSDefaultVoice: "",

		MaxPromptLen: 380,
	}
}

// HasModel reports whether name is in the allowed model list.
func (s Settings) HasModel(name string) bool {
	for _, m := range s.Models {
		if m == name {
			return true
		}
	}
	return false
}
