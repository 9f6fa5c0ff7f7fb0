package handlers

import (
	"context"
	"strings"

	telebot "gopkg.in/telebot.v3"
)

// NewSearchHandler handles /search: forward the query to the answer API.
func NewSearchHandler(d *Deps) Handler {
	return func(c telebot.Context) error {
		return d.doSearch(c, commandArgs(c))
	}
}

// NewSearchAskCallback nudges the user toward the /search syntax.
func NewSearchAskCallback(d *Deps) CallbackHandler {
	return func(c telebot.Context) error {
		if err := c.Respond(); err != nil {
			return err
		}
		return c.Send(d.Texts.Get("search.ask"), htmlOpts)
	}
}

func (d *Deps) doSearch(c telebot.Context, query string) error {
	if ok, err := d.ensureAccess(c); !ok {
		return err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return c.Send(d.Texts.Get("search.missing"), htmlOpts)
	}

	status, err := c.Bot().Send(c.Chat(), d.Texts.Get("search.status"), htmlOpts)
	if err != nil {
		return err
	}

	answer, err := d.Search.Ask(context.Background(), query)
	if err != nil {
		_, editErr := c.Bot().Edit(status, d.Texts.Getf("search.error", err), htmlOpts)
		return editErr
	}

	_, err = c.Bot().Edit(status, d.Texts.Getf("search.result", query, answer), htmlOpts)
	return err
}
