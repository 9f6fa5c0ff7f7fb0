package domain

// HistoryLimit bounds the per-user prompt history.
const HistoryLimit = 12

// UserProfile holds per-user preferences and usage counters. Profiles are
// created lazily on first contact with defaults snapshotted from the current
// Settings; they are never re-synced when Settings change later.
type UserProfile struct {
	Style     string   `json:"style"`
	Model     string   `json:"model"`
	Enhance   bool     `json:"enhance"`
	History   []string `json:"history"`
	LastGenTS int64    `json:"last_gen_ts"`
	DailyDate string   `json:"daily_date"`
	DailyUsed int      `json:"daily_used"`
	GameScore int      `json:"game_score"`
	TTSVoice  string   `json:"tts_voice"`
	CreatedTS int64    `json:"created_ts"`
}

// NewUserProfile builds a fresh profile from the provided settings snapshot.
func NewUserProfile(s Settings, now int64) *UserProfile {
	return &UserProfile{
		Style:     s.DefaultStyle,
		Model:     s.DefaultModel,
		Enhance:   s.EnhanceDefault,
		History:   []string{},
		CreatedTS: now,
	}
}

// AppendHistory pushes prompt to the end of the history, dropping the oldest
// entries to stay within HistoryLimit.
func (p *UserProfile) AppendHistory(prompt string) {
	p.History = append(p.History, prompt)
	if n := len(p.History); n > HistoryLimit {
		p.History = p.History[n-HistoryLimit:]
	}
}
