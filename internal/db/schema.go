package db

import (
	"github.com/barracksiot/event-dispatcher/internal/model"
)

type HookRow struct {
	ID        string `db:"id"`
	UserID    string `db:"user_id"`
	Name      string `db:"name"`
	EventType string `db:"event_type"`
	Type      string `db:"type"`
	Payload   string `db:"payload"`
}

func (r HookRow) toHook() (model.Hook, error) {
	variant, err := model.DecodeVariant(r.Type, []byte(r.Payload))
	if err != nil {
		return model.Hook{}, err
	}
	return model.Hook{
		ID:        r.ID,
		UserID:    r.UserID,
		Name:      r.Name,
		EventKind: model.EventKind(r.EventType),
		Variant:   variant,
	}, nil
}

func fromHook(hook model.Hook) (HookRow, error) {
	typ, payload, err := model.EncodeVariant(hook.Variant)
	if err != nil {
		return HookRow{}, err
	}
	return HookRow{
		ID:        hook.ID,
		UserID:    hook.UserID,
		Name:      hook.Name,
		EventType: string(hook.EventKind),
		Type:      typ,
		Payload:   string(payload),
	}, nil
}

const hookColumns = `id::text AS id, user_id, name, event_type, type, payload::text AS payload`
