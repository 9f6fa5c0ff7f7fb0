package handlers

import (
	telebot "gopkg.in/telebot.v3"
)

// Handler serves one command update.
type Handler func(c telebot.Context) error

// CallbackHandler serves one inline-button press.
type CallbackHandler func(c telebot.Context) error

// Middleware wraps a Handler with cross-cutting behavior.
type Middleware func(Handler) Handler

// HandlerFunc lets a plain function satisfy call sites expecting a named
// handler type.
type HandlerFunc func(c telebot.Context) error

// Handle invokes the function.
func (h HandlerFunc) Handle(c telebot.Context) error {
	return h(c)
}
