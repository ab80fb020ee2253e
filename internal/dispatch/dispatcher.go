package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/barracksiot/event-dispatcher/internal/exchange"
	"github.com/barracksiot/event-dispatcher/internal/model"
)

var (
	ErrListHooks        = errors.New("error listing hooks")
	ErrPublishFailed    = errors.New("publish failed")
	ErrInvalidEventKind = errors.New("invalid event kind")
)

const DefaultPageSize = 100

const (
	statusSuccess = "success"
	statusError   = "error"
)

type repository interface {
	CreateHook(ctx context.Context, hook model.Hook) (model.Hook, error)
	GetHookByUserIDAndName(ctx context.Context, userID, name string) (model.Hook, bool, error)
	ListHooks(ctx context.Context, userID string, page, size int) (model.Page[model.Hook], error)
	ListHooksByEventKind(ctx context.Context, userID string, page, size int, kind model.EventKind) (model.Page[model.Hook], error)
	UpdateHook(ctx context.Context, name string, hook model.Hook) (model.Hook, error)
	DeleteHook(ctx context.Context, userID, name string) error
}

type publisher interface {
	Send(ctx context.Context, destination, routingKey string, envelope any) error
}

// Recorder counts outbound sends.
type Recorder interface {
	HookDispatched(destination, status string)
}

type nopRecorder struct{}

func (nopRecorder) HookDispatched(string, string) {}

type Config struct {
	Store                       repository
	Router                      *exchange.Router
	Publisher                   publisher
	Recorder                    Recorder
	PageSize                    int
	DeviceEventRoutingKey       string
	DeviceChangeEventRoutingKey string
}

// Dispatcher fans device events out to the hooks subscribed to them and
// fronts the hook registry.
type Dispatcher struct {
	store                       repository
	router                      *exchange.Router
	publisher                   publisher
	recorder                    Recorder
	pageSize                    int
	deviceEventRoutingKey       string
	deviceChangeEventRoutingKey string
}

func New(cfg Config) *Dispatcher {
	d := &Dispatcher{
		store:                       cfg.Store,
		router:                      cfg.Router,
		publisher:                   cfg.Publisher,
		recorder:                    cfg.Recorder,
		pageSize:                    cfg.PageSize,
		deviceEventRoutingKey:       cfg.DeviceEventRoutingKey,
		deviceChangeEventRoutingKey: cfg.DeviceChangeEventRoutingKey,
	}
	if d.recorder == nil {
		d.recorder = nopRecorder{}
	}
	if d.pageSize <= 0 {
		d.pageSize = DefaultPageSize
	}
	return d
}

// Delivery is the outcome of sending one envelope for one hook.
type Delivery struct {
	Hook        model.Hook
	Destination string
	Err         error
}

// Report summarizes one dispatch.
type Report struct {
	Pages  int
	Sent   int
	Failed int
}

func (r *Report) record(d Delivery) {
	if d.Err != nil {
		r.Failed++
		return
	}
	r.Sent++
}

func (d *Dispatcher) PostDeviceEvent(ctx context.Context, event model.DeviceEvent) (Report, error) {
	return d.dispatch(ctx, event.Request.UserID, model.EventPing, d.deviceEventRoutingKey,
		func(hook model.Hook) any {
			return model.DeviceEventHook{DeviceEvent: event, Hook: hook}
		})
}

func (d *Dispatcher) PostDeviceEnrollment(ctx context.Context, event model.DeviceEvent) (Report, error) {
	event = event.WithRequestIdentity()
	return d.dispatch(ctx, event.Request.UserID, model.EventEnrollment, d.deviceEventRoutingKey,
		func(hook model.Hook) any {
			return model.DeviceEventHook{DeviceEvent: event, Hook: hook}
		})
}

func (d *Dispatcher) PostDeviceChangeEvent(ctx context.Context, change model.DeviceChangeEvent, kind model.EventKind) (Report, error) {
	const fn = "Dispatcher:PostDeviceChangeEvent"
	if kind != model.EventDeviceDataChange && kind != model.EventDevicePackageChange {
		return Report{}, fmt.Errorf("%s:%w: %q", fn, ErrInvalidEventKind, kind)
	}
	change = change.WithRequestIdentity()
	return d.dispatch(ctx, change.DeviceEvent.Request.UserID, kind, d.deviceChangeEventRoutingKey,
		func(hook model.Hook) any {
			return model.DeviceChangeEventHook{DeviceChangeEvent: change, Hook: hook}
		})
}

// dispatch walks every page of hooks subscribed to kind. The number of pages
// is fixed by the first page read. Failed deliveries never stop the walk;
// routing failures are returned once every hook has been attempted.
func (d *Dispatcher) dispatch(ctx context.Context, userID string, kind model.EventKind, routingKey string, envelopeFor func(model.Hook) any) (Report, error) {
	const fn = "Dispatcher:dispatch"
	var (
		report   Report
		errs     []error
		lastPage = 0
	)

	for page := 0; page <= lastPage; page++ {
		hooks, err := d.store.ListHooksByEventKind(ctx, userID, page, d.pageSize, kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s:%w:%w", fn, ErrListHooks, err))
			return report, errors.Join(errs...)
		}
		report.Pages++
		if page == 0 {
			lastPage = hooks.TotalPages - 1
		}

		for _, hook := range hooks.Content {
			delivery := d.deliver(ctx, hook, routingKey, envelopeFor(hook))
			report.record(delivery)
			if delivery.Err == nil {
				continue
			}
			slog.ErrorContext(ctx, "Error delivering hook message",
				"user_id", hook.UserID,
				"hook", hook.Name,
				"event_type", kind,
				"destination", delivery.Destination,
				"error", delivery.Err,
			)
			if errors.Is(delivery.Err, model.ErrUnsupportedHookVariant) {
				errs = append(errs, delivery.Err)
			}
		}
	}

	slog.DebugContext(ctx, "Dispatched event",
		"user_id", userID,
		"event_type", kind,
		"pages", report.Pages,
		"sent", report.Sent,
		"failed", report.Failed,
	)
	return report, errors.Join(errs...)
}

func (d *Dispatcher) deliver(ctx context.Context, hook model.Hook, routingKey string, envelope any) Delivery {
	destination, err := d.router.DestinationFor(hook)
	if err != nil {
		d.recorder.HookDispatched("", statusError)
		return Delivery{Hook: hook, Err: err}
	}
	if err := d.publisher.Send(ctx, destination, routingKey, envelope); err != nil {
		d.recorder.HookDispatched(destination, statusError)
		return Delivery{Hook: hook, Destination: destination, Err: fmt.Errorf("%w: %w", ErrPublishFailed, err)}
	}
	d.recorder.HookDispatched(destination, statusSuccess)
	return Delivery{Hook: hook, Destination: destination}
}
