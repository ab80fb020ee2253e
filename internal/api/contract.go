package api

import (
	"errors"
	"fmt"

	"github.com/barracksiot/event-dispatcher/internal/model"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrEncodeHook     = errors.New("error encoding stored hook")
)

// HookEntity is the wire form of a hook. Type selects which of the variant
// fields is meaningful. The store id never crosses the API.
type HookEntity struct {
	Type               string                    `json:"type"`
	EventType          model.EventKind           `json:"eventType"`
	UserID             string                    `json:"userId,omitempty"`
	Name               string                    `json:"name"`
	URL                string                    `json:"url,omitempty"`
	GaTrackingID       string                    `json:"gaTrackingId,omitempty"`
	GoogleClientSecret *model.GoogleClientSecret `json:"googleClientSecret,omitempty"`
}

type PageMetadata struct {
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	Number        int   `json:"number"`
}

type HookPageResponse struct {
	Hooks []HookEntity `json:"hooks"`
	Page  PageMetadata `json:"page"`
}

// fromHook builds the response entity. Warehouse credentials are always
// redacted.
func fromHook(h model.Hook) (HookEntity, error) {
	e := HookEntity{
		EventType: h.EventKind,
		UserID:    h.UserID,
		Name:      h.Name,
	}
	switch v := h.Variant.(type) {
	case model.WebCallback:
		e.Type = model.TypeWeb
		e.URL = v.URL
	case model.AnalyticsSink:
		e.Type = model.TypeGoogleAnalytics
		e.GaTrackingID = v.TrackingID
	case model.WarehouseSink:
		e.Type = model.TypeBigQuery
		secret := v.Credential.Redacted()
		e.GoogleClientSecret = &secret
	default:
		return HookEntity{}, fmt.Errorf("%w: %w: hook %q", ErrEncodeHook, model.ErrUnsupportedHookVariant, h.Name)
	}
	return e, nil
}

func fromPage(p model.Page[model.Hook]) (HookPageResponse, error) {
	hooks := make([]HookEntity, 0, len(p.Content))
	for _, h := range p.Content {
		e, err := fromHook(h)
		if err != nil {
			return HookPageResponse{}, err
		}
		hooks = append(hooks, e)
	}
	return HookPageResponse{
		Hooks: hooks,
		Page: PageMetadata{
			Size:          p.Size,
			TotalElements: p.TotalElements,
			TotalPages:    p.TotalPages,
			Number:        p.Number,
		},
	}, nil
}

// toHook validates the entity and converts it for userID.
func (e HookEntity) toHook(userID string) (model.Hook, error) {
	if e.Name == "" {
		return model.Hook{}, fmt.Errorf("%w: name is required", ErrInvalidRequest)
	}
	if !e.EventType.Valid() {
		return model.Hook{}, fmt.Errorf("%w: unknown eventType %q", ErrInvalidRequest, e.EventType)
	}

	h := model.Hook{
		UserID:    userID,
		Name:      e.Name,
		EventKind: e.EventType,
	}
	switch e.Type {
	case model.TypeWeb:
		if e.URL == "" {
			return model.Hook{}, fmt.Errorf("%w: url is required", ErrInvalidRequest)
		}
		h.Variant = model.WebCallback{URL: e.URL}
	case model.TypeGoogleAnalytics:
		if e.GaTrackingID == "" {
			return model.Hook{}, fmt.Errorf("%w: gaTrackingId is required", ErrInvalidRequest)
		}
		h.Variant = model.AnalyticsSink{TrackingID: e.GaTrackingID}
	case model.TypeBigQuery:
		if e.GoogleClientSecret == nil || !e.GoogleClientSecret.Complete() {
			return model.Hook{}, fmt.Errorf("%w: complete googleClientSecret is required", ErrInvalidRequest)
		}
		// a redacted credential read back from the API carries no key
		if e.GoogleClientSecret.PrivateKey == model.HiddenValue || e.GoogleClientSecret.PrivateKeyID == model.HiddenValue {
			return model.Hook{}, fmt.Errorf("%w: googleClientSecret private key is redacted", ErrInvalidRequest)
		}
		h.Variant = model.WarehouseSink{Credential: *e.GoogleClientSecret}
	default:
		return model.Hook{}, fmt.Errorf("%w: %w: %q", ErrInvalidRequest, model.ErrUnsupportedHookVariant, e.Type)
	}
	return h, nil
}
