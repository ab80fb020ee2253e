package db

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/barracksiot/event-dispatcher/internal/model"
	"github.com/georgysavva/scany/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

var (
	ErrInsertFailed           = errors.New("insert operation failed")
	ErrUpdateFailed           = errors.New("update operation failed")
	ErrDeleteFailed           = errors.New("delete operation failed")
	ErrTransactionStartFailed = errors.New("transaction start failed")
	ErrSelectFailed           = errors.New("select operation failed")
	ErrInvalidHook            = errors.New("invalid hook")
	ErrInvalidPage            = errors.New("invalid page request")
)

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func (db *DB) CreateHook(ctx context.Context, hook model.Hook) (model.Hook, error) {
	const fn = "DB:CreateHook"
	hook.ID = uuid.NewString()
	row, err := fromHook(hook)
	if err != nil {
		return model.Hook{}, fmt.Errorf("%s:%w:%w", fn, ErrInvalidHook, err)
	}

	var created HookRow
	err = pgxscan.Get(ctx, db.pool, &created, `
			INSERT INTO hooks (
				id,
				user_id,
				name,
				event_type,
				type,
				payload
			) VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+hookColumns,
		row.ID, row.UserID, row.Name, row.EventType, row.Type, row.Payload)
	if err != nil {
		if isUniqueViolation(err) {
			return model.Hook{}, fmt.Errorf("%s:%w:%w", fn, model.ErrDuplicateName, err)
		}
		return model.Hook{}, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return created.toHook()
}

// GetHookByUserIDAndName reports false, without error, when no such hook
// exists.
func (db *DB) GetHookByUserIDAndName(ctx context.Context, userID, name string) (model.Hook, bool, error) {
	const fn = "DB:GetHookByUserIDAndName"
	var row HookRow
	err := pgxscan.Get(ctx, db.pool, &row, `
			SELECT `+hookColumns+`
			FROM hooks
			WHERE user_id = $1
			AND name = $2
		`, userID, name)
	if err != nil {
		if pgxscan.NotFound(err) {
			return model.Hook{}, false, nil
		}
		return model.Hook{}, false, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	hook, err := row.toHook()
	if err != nil {
		return model.Hook{}, false, fmt.Errorf("%s:%w", fn, err)
	}
	return hook, true, nil
}

func (db *DB) ListHooks(ctx context.Context, userID string, page, size int) (model.Page[model.Hook], error) {
	return db.listHooks(ctx, "DB:ListHooks", page, size, `user_id = $1`, userID)
}

func (db *DB) ListHooksByEventKind(ctx context.Context, userID string, page, size int, kind model.EventKind) (model.Page[model.Hook], error) {
	return db.listHooks(ctx, "DB:ListHooksByEventKind", page, size, `user_id = $1 AND event_type = $2`, userID, string(kind))
}

func (db *DB) listHooks(ctx context.Context, fn string, page, size int, where string, args ...any) (model.Page[model.Hook], error) {
	if page < 0 || size <= 0 || page > math.MaxInt32/size {
		return model.Page[model.Hook]{}, fmt.Errorf("%s:%w: page=%d size=%d", fn, ErrInvalidPage, page, size)
	}

	var total int64
	if err := db.pool.QueryRow(ctx, `SELECT count(*) FROM hooks WHERE `+where, args...).Scan(&total); err != nil {
		return model.Page[model.Hook]{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}

	limitArg := len(args) + 1
	var rows []HookRow
	err := pgxscan.Select(ctx, db.pool, &rows, fmt.Sprintf(`
			SELECT `+hookColumns+`
			FROM hooks
			WHERE %s
			ORDER BY created_at ASC, id ASC
			LIMIT $%d OFFSET $%d
		`, where, limitArg, limitArg+1), append(args, size, page*size)...)
	if err != nil {
		return model.Page[model.Hook]{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}

	hooks := make([]model.Hook, 0, len(rows))
	for _, row := range rows {
		hook, err := row.toHook()
		if err != nil {
			return model.Page[model.Hook]{}, fmt.Errorf("%s:%w", fn, err)
		}
		hooks = append(hooks, hook)
	}
	return model.NewPage(hooks, page, size, total), nil
}

// UpdateHook replaces the hook identified by hook.ID. A rename is refused
// when another hook of the same user already owns the new name.
func (db *DB) UpdateHook(ctx context.Context, name string, hook model.Hook) (updated model.Hook, err error) {
	const fn = "DB:UpdateHook"
	row, err := fromHook(hook)
	if err != nil {
		return model.Hook{}, fmt.Errorf("%s:%w:%w", fn, ErrInvalidHook, err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return model.Hook{}, fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	if name != hook.Name {
		var taken bool
		err = tx.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM hooks WHERE user_id = $1 AND name = $2 AND id <> $3
			)`, row.UserID, row.Name, row.ID).Scan(&taken)
		if err != nil {
			return model.Hook{}, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
		}
		if taken {
			err = fmt.Errorf("%s:%w: %q", fn, model.ErrUpdateConflict, hook.Name)
			return model.Hook{}, err
		}
	}

	var saved HookRow
	err = pgxscan.Get(ctx, tx, &saved, `
			UPDATE hooks SET
				user_id = $2,
				name = $3,
				event_type = $4,
				type = $5,
				payload = $6,
				updated_at = now()
			WHERE id = $1
			RETURNING `+hookColumns,
		row.ID, row.UserID, row.Name, row.EventType, row.Type, row.Payload)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return model.Hook{}, fmt.Errorf("%s:%w: id %q", fn, model.ErrHookNotFound, row.ID)
		case isUniqueViolation(err):
			return model.Hook{}, fmt.Errorf("%s:%w:%w", fn, model.ErrUpdateConflict, err)
		}
		return model.Hook{}, fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	updated, err = saved.toHook()
	return updated, err
}

func (db *DB) DeleteHook(ctx context.Context, userID, name string) error {
	const fn = "DB:DeleteHook"
	tag, err := db.pool.Exec(ctx, `DELETE FROM hooks WHERE user_id = $1 AND name = $2`, userID, name)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w: user %q name %q", fn, model.ErrHookNotFound, userID, name)
	}
	return nil
}
