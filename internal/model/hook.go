package model

import (
	"encoding/json"
	"fmt"
)

type EventKind string

const (
	EventPing                EventKind = "PING"
	EventEnrollment          EventKind = "ENROLLMENT"
	EventDeviceDataChange    EventKind = "DEVICE_DATA_CHANGE"
	EventDevicePackageChange EventKind = "DEVICE_PACKAGE_CHANGE"
)

func (k EventKind) Valid() bool {
	switch k {
	case EventPing, EventEnrollment, EventDeviceDataChange, EventDevicePackageChange:
		return true
	}
	return false
}

// Variant type tags, used on the wire and in storage.
const (
	TypeWeb             = "web"
	TypeGoogleAnalytics = "google_analytics"
	TypeBigQuery        = "bigquery"
)

// Variant is the destination-specific payload of a Hook. The set of
// implementations is closed to this package.
type Variant interface {
	variant()
}

type WebCallback struct {
	URL string `json:"url"`
}

type AnalyticsSink struct {
	TrackingID string `json:"gaTrackingId"`
}

type WarehouseSink struct {
	Credential GoogleClientSecret `json:"googleClientSecret"`
}

func (WebCallback) variant()   {}
func (AnalyticsSink) variant() {}
func (WarehouseSink) variant() {}

type Hook struct {
	ID        string
	UserID    string
	Name      string
	EventKind EventKind
	Variant   Variant
}

// TypeOf returns the type tag of v.
func TypeOf(v Variant) (string, error) {
	switch v.(type) {
	case WebCallback:
		return TypeWeb, nil
	case AnalyticsSink:
		return TypeGoogleAnalytics, nil
	case WarehouseSink:
		return TypeBigQuery, nil
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedHookVariant, v)
	}
}

// EncodeVariant returns the type tag and JSON payload of v.
func EncodeVariant(v Variant) (string, []byte, error) {
	typ, err := TypeOf(v)
	if err != nil {
		return "", nil, err
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	return typ, payload, nil
}

// DecodeVariant is the inverse of EncodeVariant.
func DecodeVariant(typ string, payload []byte) (Variant, error) {
	switch typ {
	case TypeWeb:
		var v WebCallback
		if err := json.Unmarshal(payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TypeGoogleAnalytics:
		var v AnalyticsSink
		if err := json.Unmarshal(payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TypeBigQuery:
		var v WarehouseSink
		if err := json.Unmarshal(payload, &v); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedHookVariant, typ)
	}
}

// hookJSON is the flat representation shared by outbound envelopes. The
// variant fields sit next to the common ones, selected by Type.
type hookJSON struct {
	ID                 string              `json:"id,omitempty"`
	Type               string              `json:"type"`
	EventType          EventKind           `json:"eventType"`
	UserID             string              `json:"userId"`
	Name               string              `json:"name"`
	URL                string              `json:"url,omitempty"`
	GaTrackingID       string              `json:"gaTrackingId,omitempty"`
	GoogleClientSecret *GoogleClientSecret `json:"googleClientSecret,omitempty"`
}

// MarshalJSON writes the full hook, secrets included. Anything crossing a
// trust boundary must go through the API contract, which redacts.
func (h Hook) MarshalJSON() ([]byte, error) {
	out := hookJSON{
		ID:        h.ID,
		EventType: h.EventKind,
		UserID:    h.UserID,
		Name:      h.Name,
	}
	switch v := h.Variant.(type) {
	case WebCallback:
		out.Type = TypeWeb
		out.URL = v.URL
	case AnalyticsSink:
		out.Type = TypeGoogleAnalytics
		out.GaTrackingID = v.TrackingID
	case WarehouseSink:
		out.Type = TypeBigQuery
		secret := v.Credential
		out.GoogleClientSecret = &secret
	default:
		return nil, fmt.Errorf("%w: hook %q of user %q", ErrUnsupportedHookVariant, h.Name, h.UserID)
	}
	return json.Marshal(out)
}

func (h *Hook) UnmarshalJSON(data []byte) error {
	var in hookJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*h = Hook{
		ID:        in.ID,
		UserID:    in.UserID,
		Name:      in.Name,
		EventKind: in.EventType,
	}
	switch in.Type {
	case TypeWeb:
		h.Variant = WebCallback{URL: in.URL}
	case TypeGoogleAnalytics:
		h.Variant = AnalyticsSink{TrackingID: in.GaTrackingID}
	case TypeBigQuery:
		var secret GoogleClientSecret
		if in.GoogleClientSecret != nil {
			secret = *in.GoogleClientSecret
		}
		h.Variant = WarehouseSink{Credential: secret}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedHookVariant, in.Type)
	}
	return nil
}
