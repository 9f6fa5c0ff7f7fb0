package bot

import (
	telebot "gopkg.in/telebot.v3"
)

// Command constants for Telegram bot commands.
const (
	CommandStart       = "/start"
	CommandGen         = "/gen"
	CommandStyle       = "/style"
	CommandModel       = "/model"
	CommandRandomStyle = "/randomstyle"
	CommandRandom      = "/random"
	CommandEnhance     = "/enhance"
	CommandTTS         = "/tts"
	CommandVoices      = "/voices"
	CommandVoice       = "/voice"
	CommandSearch      = "/search"
	CommandHistory     = "/history"
	CommandCurrent     = "/current"
	CommandPing        = "/ping"
	CommandHelp        = "/help"
	CommandID          = "/id"
	CommandUID         = "/uid"
	CommandWordGame    = "/wordgame"
)

// BotCommands is the command menu registered with Telegram at startup.
func BotCommands() []telebot.Command {
	return []telebot.Command{
		{Text: "start", Description: "Open control panel"},
		{Text: "gen", Description: "Generate image (/gen prompt)"},
		{Text: "style", Description: "Select style"},
		{Text: "model", Description: "Select model"},
		{Text: "randomstyle", Description: "Random style"},
		{Text: "random", Description: "Random style + generate"},
		{Text: "enhance", Description: "Toggle enhancer"},
		{Text: "tts", Description: "Text to Speech"},
		{Text: "voices", Description: "List voices"},
		{Text: "voice", Description: "Set voice (/voice NAME)"},
		{Text: "search", Description: "Search AI"},
		{Text: "history", Description: "Your history"},
		{Text: "current", Description: "Your current settings"},
		{Text: "ping", Description: "Bot status"},
		{Text: "help", Description: "Owner contact"},
		{Text: "id", Description: "Your chat_id"},
		{Text: "uid", Description: "Get user id if cached"},
		{Text: "wordgame", Description: "Funny word game"},
	}
}
