package dispatch

import (
	"context"
	"fmt"

	"github.com/barracksiot/event-dispatcher/internal/model"
)

func (d *Dispatcher) SaveHook(ctx context.Context, hook model.Hook) (model.Hook, error) {
	return d.store.CreateHook(ctx, hook)
}

func (d *Dispatcher) GetHook(ctx context.Context, userID, name string) (model.Hook, error) {
	const fn = "Dispatcher:GetHook"
	hook, found, err := d.store.GetHookByUserIDAndName(ctx, userID, name)
	if err != nil {
		return model.Hook{}, err
	}
	if !found {
		return model.Hook{}, fmt.Errorf("%s:%w: user %q name %q", fn, model.ErrHookNotFound, userID, name)
	}
	return hook, nil
}

func (d *Dispatcher) ListHooks(ctx context.Context, userID string, page, size int) (model.Page[model.Hook], error) {
	return d.store.ListHooks(ctx, userID, page, size)
}

func (d *Dispatcher) DeleteHook(ctx context.Context, userID, name string) error {
	return d.store.DeleteHook(ctx, userID, name)
}

// UpdateHook replaces the hook userID owns under name. The stored identity
// is kept whatever the new hook carries.
func (d *Dispatcher) UpdateHook(ctx context.Context, userID, name string, hook model.Hook) (model.Hook, error) {
	existing, err := d.GetHook(ctx, userID, name)
	if err != nil {
		return model.Hook{}, err
	}
	hook.ID = existing.ID
	hook.UserID = existing.UserID
	return d.store.UpdateHook(ctx, name, hook)
}
