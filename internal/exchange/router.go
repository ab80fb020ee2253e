// Package exchange maps hook variants to the topics their messages are
// published on.
package exchange

import (
	"errors"
	"fmt"

	"github.com/barracksiot/event-dispatcher/internal/model"
)

var ErrMissingDestination = errors.New("missing destination")

type Config struct {
	Web             string
	GoogleAnalytics string
	BigQuery        string
}

type Router struct {
	web             string
	googleAnalytics string
	bigQuery        string
}

func New(cfg Config) (*Router, error) {
	const fn = "Router:New"
	for variant, dest := range map[string]string{
		model.TypeWeb:             cfg.Web,
		model.TypeGoogleAnalytics: cfg.GoogleAnalytics,
		model.TypeBigQuery:        cfg.BigQuery,
	} {
		if dest == "" {
			return nil, fmt.Errorf("%s:%w: %s", fn, ErrMissingDestination, variant)
		}
	}
	return &Router{
		web:             cfg.Web,
		googleAnalytics: cfg.GoogleAnalytics,
		bigQuery:        cfg.BigQuery,
	}, nil
}

func (r *Router) DestinationFor(hook model.Hook) (string, error) {
	switch hook.Variant.(type) {
	case model.WebCallback:
		return r.web, nil
	case model.AnalyticsSink:
		return r.googleAnalytics, nil
	case model.WarehouseSink:
		return r.bigQuery, nil
	default:
		return "", fmt.Errorf("%w: hook %q of user %q", model.ErrUnsupportedHookVariant, hook.Name, hook.UserID)
	}
}
