package keyboard

// Callback data fired by the inline menus. Handlers match on these exact
// strings, so they are frozen here rather than inlined at each button.
const (
	CallbackNoop          = "noop"
	CallbackBackMain      = "back:main"
	CallbackMenuHelp      = "menu:help"
	CallbackMenuHistory   = "menu:history"
	CallbackMenuCurrent   = "menu:current"
	CallbackMenuStyle     = "menu:style"
	CallbackMenuModel     = "menu:model"
	CallbackToggleEnhance = "toggle:enhance"
	CallbackGenAsk        = "gen:ask"
	CallbackTTSAsk        = "tts:ask"
	CallbackSearchAsk     = "search:ask"
	CallbackGateRecheck   = "gate:recheck"
	CallbackGameStart     = "game:start"
	CallbackGameShow      = "game:show"
	CallbackRandStyle     = "rand:style"
)

// Actions are callback prefixes that carry a payload after the separator,
// e.g. "setstyle:3".
const (
	ActionSetStyle  = "setstyle"
	ActionStylePage = "stylepage"
	ActionSetModel  = "setmodel"
)

// Owner console callbacks. OwnerPrefix groups them for routing.
const (
	OwnerPrefix = "owner"

	CallbackOwnerPanel         = "owner:panel"
	CallbackOwnerToggleBot     = "owner:toggle_bot"
	CallbackOwnerSetCooldown   = "owner:set_cooldown"
	CallbackOwnerSetDaily      = "owner:set_daily"
	CallbackOwnerToggleGate    = "owner:toggle_gate"
	CallbackOwnerToggleStrict  = "owner:toggle_strict"
	CallbackOwnerAddJoin       = "owner:add_join"
	CallbackOwnerRemoveJoin    = "owner:remove_join"
	CallbackOwnerListJoin      = "owner:list_join"
	CallbackOwnerModels        = "owner:models"
	CallbackOwnerUIText        = "owner:ui_text"
	CallbackOwnerRefreshStyles = "owner:refresh_styles"
	CallbackOwnerStats         = "owner:stats"
	CallbackOwnerBroadcast     = "owner:broadcast"
	CallbackOwnerBanUnban      = "owner:ban_unban"
	CallbackOwnerResetUser     = "owner:reset_user"
	CallbackOwnerResetAll      = "owner:reset_all"
)
