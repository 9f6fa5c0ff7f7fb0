package texts

// defaults is the built-in message catalog. Messages are HTML-formatted for
// Telegram. Keys follow command.purpose naming.
var defaults = map[string]string{
	"panel.body": "🟦 <b>%s</b>\n" +
		"⚡ <i>%s</i>\n\n" +
		"🎨 Style : <b>%s</b>\n" +
		"🧠 Model : <b>%s</b>\n" +
		"✨ Enhance : <b>%s</b>\n\n" +
		"⚡ <b>CONTROL PANEL</b>\n" +
		"Choose Style + Model, then hit ☠️ <b>Generate</b>.\n\n" +
		"⚡ <b>COMMANDS</b>\n" +
		"/gen — Generate (private)\n" +
		"/gen PROMPT — Generate (group)\n" +
		"/style — Select style\n" +
		"/model — Select model\n" +
		"/randomstyle — Random style\n" +
		"/random PROMPT — Random style + gen\n" +
		"/enhance — Toggle enhancer\n" +
		"/tts TEXT — Text to Speech\n" +
		"/voices — List voices\n" +
		"/voice NAME — Set your voice\n" +
		"/search QUERY — Search AI\n" +
		"/history — Last prompts\n" +
		"/current — Current settings\n" +
		"/ping — Bot status\n" +
		"/help — Help & owner\n" +
		"/id — Your chat_id\n" +
		"/uid @username — user id (only if cached)\n" +
		"/wordgame — Funny word game\n\n" +
		"☠️ %s",

	"help.body": "ℹ️ <b>Help & Support</b>\n" +
		"━━━━━━━━━━━━━━━━━━━━━━\n" +
		"👑 <b>Owner:</b> %s\n" +
		"🔗 <b>Username:</b> %s\n" +
		"🌐 <b>Link:</b> <a href=\"%s\">%s</a>\n" +
		"📝 <b>Bio:</b> %s\n" +
		"━━━━━━━━━━━━━━━━━━━━━━\n" +
		"✅ <b>Image:</b> /gen prompt\n" +
		"🎙 <b>TTS:</b> /tts text\n" +
		"🔎 <b>Search:</b> /search query\n",

	"join.header": "🔒 <b>Join Required</b>\n\n" +
		"Join the chats below first, then you can use the bot ✅\n\n",
	"join.missing_title": "❌ <b>Missing Join:</b>\n",
	"join.unknown_title": "⚠️ <b>Verify not possible:</b>\n",
	"join.unknown_hint":  "👉 Make the bot admin/member to verify private chats.\n\n",
	"join.footer": "✅ After joining, tap <b>I Joined (Recheck)</b>.\n" +
		"✅ Once verified, send <b>/start</b> again.",
	"join.banned":       "🚫 You are banned.",
	"join.recheck_ok":   "✅ Verified! Send /start to open the panel.",
	"join.recheck_fail": "❌ Still missing. Join all required chats first.",

	"gen.usage":       "✍️ Send prompt like: <code>/gen a realistic tiger in neon city</code>",
	"gen.usage_group": "❌ In groups use: <code>/gen your prompt</code>",
	"gen.ask":         "✍️ Send: <code>/gen your prompt</code>",
	"gen.missing":     "❌ Prompt missing.\nExample: <code>/gen a realistic lion in jungle</code>",
	"gen.status":      "⚡️ Generating…\n🎨 <b>%s</b> | 🧠 <b>%s</b>",
	"gen.caption": "🟦 <b>%s</b>\n" +
		"━━━━━━━━━━━━━━━━━━━━━━\n" +
		"🎨 Style: <b>%s</b>\n" +
		"🧠 Model: <b>%s</b>\n" +
		"✨ Enhance: <b>%s</b>\n" +
		"━━━━━━━━━━━━━━━━━━━━━━\n" +
		"📝 <b>Prompt:</b> %s",
	"gen.error": "❌ Image API busy or slow.\n⏳ Try again in 1-2 minutes.\n\nDebug: <code>%s</code>",

	"tts.ask":      "🎙 Send: <code>/tts your text</code>",
	"tts.missing":  "❌ Text missing.\nExample: <code>/tts hello there</code>",
	"tts.status":   "🎙 Generating audio…\n<b>Voice:</b> <code>%s</code>",
	"tts.caption":  "🎙 <b>%s</b>",
	"tts.error":    "❌ TTS error: <code>%s</code>",
	"random.usage": "Usage: <code>/random your prompt</code>",

	"search.ask":     "🔎 Send: <code>/search your question</code>",
	"search.missing": "❌ Query missing.\nExample: <code>/search latest news</code>",
	"search.status":  "🔎 Searching…",
	"search.result":  "🔎 <b>Search AI</b>\n━━━━━━━━━━━━━━━━━━━━━━\n<b>Q:</b> %s\n\n%s",
	"search.error":   "❌ Search error: <code>%s</code>",

	"style.prompt":    "🎨 <b>Select Style</b>",
	"style.updated":   "🎨 Style set: <b>%s</b>",
	"style.random":    "🎲 Random style: <b>%s</b>",
	"model.prompt":    "🧠 <b>Select Model</b>",
	"model.updated":   "🧠 Model set: <b>%s</b>",
	"model.unknown":   "❌ Unknown model. Allowed: %s",
	"enhance.toggled": "✨ Enhance: <b>%s</b>",
	"voice.updated":   "✅ Your voice set to: <code>%s</code>",
	"voice.usage":     "Usage: <code>/voice VoiceName</code>\nUse /voices to list.",
	"voices.header":   "🎙 <b>Available Voices</b>\n━━━━━━━━━━━━━━━━━━━━━━\n",
	"voices.empty":    "❌ No voices returned by API.",
	"voices.error":    "❌ Error: <code>%s</code>",
	"history.header":  "📜 <b>Your last prompts</b>\n━━━━━━━━━━━━━━━━━━━━━━\n",
	"history.empty":   "📜 No history yet.",
	"current.body":    "📌 <b>Current</b>\n━━━━━━━━━━━━━━━━━━━━━━\n🎨 <b>%s</b>\n🧠 <b>%s</b>\n✨ <b>%s</b>\n🎙 <code>%s</code>\n📊 Today: <b>%d/%s</b>",
	"ping.body":       "✅ Bot is online.\n⏱ Uptime: <b>%s</b>",
	"id.body":         "🆔 <b>chat_id</b>: <code>%d</code>\n👤 <b>user_id</b>: <code>%d</code>",
	"uid.usage":        "Usage: <code>/uid @username</code>\n(Works only if user interacted with bot.)",
	"uid.not_found":    "❌ Not found in cache: <code>@%s</code>\nAsk user to /start the bot once.",
	"uid.found":        "✅ <b>@%s</b>\n🆔 <code>%d</code>\n👤 %s",
	"unknown.command":  "🤔 Unknown command. See /help.",
	"generic.error":    "😵 Something went wrong. Try again.",
	"generic.degraded": "⌛ Service busy, please retry shortly.",

	"game.start":    "🎮 <b>Funny Word Game</b>\n━━━━━━━━━━━━━━━━━━━━━━\nGuess meaning of: <b>%s</b>",
	"game.meaning":  "😂 Meaning: <b>%s</b>",
	"game.no_round": "🎮 No active round. Tap <b>New Word</b> or send /wordgame.",

	"owner.panel": "🧬 <b>Owner Control Room (Root)</b>\n" +
		"━━━━━━━━━━━━━━━━━━━━━━\n" +
		"⚙️ Manage everything from here.\n" +
		"✅ Safe / stable / pro.\n",
	"owner.denied":             "⛔️ Root only.",
	"owner.ask_cooldown":       "⏱ Send the new cooldown in seconds (number).",
	"owner.ask_daily":          "📊 Send the new daily limit (number, 0 = unlimited).",
	"owner.ask_add_join": "➕ <b>Add Join Target</b>\n" +
		"Send like:\n" +
		"<code>@channel_username | https://t.me/channel_username</code>\n\n" +
		"OR private:\n" +
		"<code>-1001234567890 | https://t.me/+InviteLink</code>",
	"owner.ask_remove_join":    "➖ Send chat to remove (example: <code>@channel</code> OR <code>-100...</code>)",
	"owner.ask_models":         "🧠 Send models list comma-separated.\nExample: <code>flux, sdxl</code>",
	"owner.ask_ui_text":        "📝 Send UI text like:\n<code>Title | Subtitle | Footer</code>",
	"owner.ask_broadcast":      "📢 Send broadcast message text (it will go to all users).",
	"owner.ask_ban_unban":      "🚫 Send: <code>ban 123</code> or <code>unban 123</code>",
	"owner.ask_reset_user":     "♻️ Send user id to reset.\nExample: <code>7702984107</code>",
	"owner.bad_number":         "❌ Invalid number.",
	"owner.cooldown_set":       "✅ Cooldown set: <b>%ds</b>",
	"owner.daily_set":          "✅ Daily limit set: <b>%s</b>",
	"owner.join_added":         "✅ Added join target: <code>%s</code>",
	"owner.join_removed":       "✅ Removed: <code>%s</code>",
	"owner.join_duplicate":     "⚠️ Already added.",
	"owner.join_bad_format": "❌ Format wrong.\nUse:\n<code>@channel | https://t.me/channel</code>\n" +
		"OR\n<code>-100... | https://t.me/+InviteLink</code>",
	"owner.join_not_found": "❌ Not found.",
	"owner.join_empty":     "📋 No join targets set.",
	"owner.join_list":      "📋 <b>Join Targets</b>\n━━━━━━━━━━━━━━━━━━━━━━\n%s",
	"owner.models_set":         "✅ Models: <b>%s</b>",
	"owner.models_empty":       "❌ Model list cannot be empty.",
	"owner.ui_text_set":        "✅ Panel text updated.",
	"owner.ui_text_bad":        "❌ Need: <code>title | subtitle | footer</code> (two pipes).",
	"owner.banned":             "✅ Banned: <code>%d</code>",
	"owner.unbanned":           "✅ Unbanned: <code>%d</code>",
	"owner.ban_bad_id":         "❌ Invalid ID.",
	"owner.user_reset":         "✅ Reset done for: <code>%d</code>",
	"owner.user_reset_missing": "ℹ️ No profile for <code>%d</code>.",
	"owner.reset_all_done":     "🧨 Reset ALL users done.",
	"owner.bot_on":             "🟢 Bot enabled.",
	"owner.bot_off":            "🔴 Bot disabled.",
	"owner.gate_on":            "🟢 Join gate enabled.",
	"owner.gate_off":           "🔴 Join gate disabled.",
	"owner.strict_on":          "🟢 Strict verify enabled.",
	"owner.strict_off":         "🔴 Strict verify disabled.",
	"owner.styles_refreshed":   "✅ Style catalog reloaded: %d styles.",
	"owner.broadcast_body":     "📢 <b>Broadcast</b>\n━━━━━━━━━━━━━━━━━━━━━━\n%s",
	"owner.broadcast_done":     "✅ Broadcast sent to: <b>%d</b> users.",
	"owner.models_current":     "🧠 Current models: <code>%s</code>",
	"owner.stats": "📊 <b>Stats</b>\n━━━━━━━━━━━━━━━━━━━━━━\n" +
		"👥 Users: <b>%d</b>\n🚫 Banned: <b>%d</b>\n🤖 Bot: <b>%s</b>\n🔒 Gate: <b>%s</b>\n",
	"owner.cancelled": "✖️ Cancelled.",
}
