package model

import "encoding/json"

type Package struct {
	Reference string `json:"reference"`
	Version   string `json:"version,omitempty"`
}

// DeviceRequest is the state a device declared when it checked in.
type DeviceRequest struct {
	UserID           string          `json:"userId,omitempty"`
	UnitID           string          `json:"unitId"`
	CustomClientData json.RawMessage `json:"customClientData"`
	Packages         []Package       `json:"packages,omitempty"`
	IPAddress        string          `json:"ipAddress,omitempty"`
	UserAgent        string          `json:"userAgent,omitempty"`
}

// MarshalJSON always writes customClientData as an object.
func (r DeviceRequest) MarshalJSON() ([]byte, error) {
	type plain DeviceRequest
	if len(r.CustomClientData) == 0 || string(r.CustomClientData) == "null" {
		r.CustomClientData = json.RawMessage("{}")
	}
	return json.Marshal(plain(r))
}

type Version struct {
	Reference string          `json:"reference"`
	Version   string          `json:"version"`
	URL       string          `json:"url,omitempty"`
	MD5       string          `json:"md5,omitempty"`
	Size      int64           `json:"size,omitempty"`
	Filename  string          `json:"filename,omitempty"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// ResolvedVersions is the package state the server resolved for a device.
type ResolvedVersions struct {
	Available   []Version `json:"available"`
	Changed     []Version `json:"changed"`
	Unchanged   []Version `json:"unchanged"`
	Unavailable []Version `json:"unavailable"`
}

type DeviceEvent struct {
	UserID   string           `json:"userId,omitempty"`
	UnitID   string           `json:"unitId,omitempty"`
	Request  DeviceRequest    `json:"request"`
	Response ResolvedVersions `json:"response"`
}

// WithRequestIdentity returns a copy of e whose request carries the event's
// user and unit ids.
func (e DeviceEvent) WithRequestIdentity() DeviceEvent {
	e.Request.UserID = e.UserID
	e.Request.UnitID = e.UnitID
	return e
}

type DeviceChangeEvent struct {
	OldRequest  DeviceRequest `json:"oldRequest"`
	DeviceEvent DeviceEvent   `json:"deviceEvent"`
}

func (c DeviceChangeEvent) WithRequestIdentity() DeviceChangeEvent {
	c.DeviceEvent = c.DeviceEvent.WithRequestIdentity()
	return c
}

// DeviceEventHook is the message published for plain device events.
type DeviceEventHook struct {
	DeviceEvent DeviceEvent `json:"deviceEvent"`
	Hook        Hook        `json:"hook"`
}

// DeviceChangeEventHook is the message published for change events.
type DeviceChangeEventHook struct {
	DeviceChangeEvent DeviceChangeEvent `json:"deviceChangeEvent"`
	Hook              Hook              `json:"hook"`
}
