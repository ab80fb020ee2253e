// Package changes consumes device data and package change events.
package changes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/barracksiot/event-dispatcher/internal/dispatch"
	k "github.com/barracksiot/event-dispatcher/internal/kafka"
	"github.com/barracksiot/event-dispatcher/internal/metrics"
	"github.com/barracksiot/event-dispatcher/internal/model"
	"github.com/barracksiot/event-dispatcher/internal/worker"
)

var (
	ErrReadMessage      = errors.New("error reading message")
	ErrJSONParse        = errors.New("error parsing JSON")
	ErrDispatch         = errors.New("error dispatching change event")
	ErrUnsupportedEvent = errors.New("unsupported change event kind")
)

type dispatcher interface {
	PostDeviceChangeEvent(ctx context.Context, change model.DeviceChangeEvent, kind model.EventKind) (dispatch.Report, error)
}

type recorder interface {
	MessageProcessed(stage, status string)
}

type Config struct {
	Brokers         []string
	ConsumerGroupID string
	ConsumerTopic   string
	// Kind is either DEVICE_DATA_CHANGE or DEVICE_PACKAGE_CHANGE.
	Kind       model.EventKind
	Dispatcher dispatcher
	Recorder   recorder
}

type Consumer struct {
	worker     *worker.Worker
	reader     k.Reader
	kind       model.EventKind
	stage      string
	dispatcher dispatcher
	recorder   recorder
}

func New(cfg Config) (*Consumer, error) {
	const fn = "Consumer:New"
	var stage string
	switch cfg.Kind {
	case model.EventDeviceDataChange:
		stage = metrics.StageDeviceDataChange
	case model.EventDevicePackageChange:
		stage = metrics.StageDevicePackageChange
	default:
		return nil, fmt.Errorf("%s:%w: %q", fn, ErrUnsupportedEvent, cfg.Kind)
	}

	consumer := &Consumer{
		reader: k.NewReader(k.ReaderConfig{
			Brokers:         cfg.Brokers,
			ConsumerGroupID: cfg.ConsumerGroupID,
			Topic:           cfg.ConsumerTopic,
		}),
		kind:       cfg.Kind,
		stage:      stage,
		dispatcher: cfg.Dispatcher,
		recorder:   cfg.Recorder,
	}
	consumer.worker = worker.New(worker.Config{
		Name:      stage + "-worker",
		Processor: consumer,
	})
	return consumer, nil
}

func (c *Consumer) Run(ctx context.Context) {
	c.worker.Run(ctx)
}

func (c *Consumer) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing change consumer resources...", "event_type", c.kind)
	c.reader.Close()
}

// Auto-commit active
func (c *Consumer) ProcessMessage(ctx context.Context) error {
	const fn = "Consumer:ProcessMessage"
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}

	var change model.DeviceChangeEvent
	if err := json.Unmarshal(m.Value, &change); err != nil {
		c.recorder.MessageProcessed(c.stage, metrics.StatusError)
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}

	report, err := c.dispatcher.PostDeviceChangeEvent(ctx, change, c.kind)
	if err != nil {
		c.recorder.MessageProcessed(c.stage, metrics.StatusError)
		return fmt.Errorf("%s:%w:%w", fn, ErrDispatch, err)
	}

	c.recorder.MessageProcessed(c.stage, metrics.StatusSuccess)
	slog.InfoContext(ctx, "Dispatched device change event",
		"event_type", c.kind,
		"user_id", change.DeviceEvent.UserID,
		"unit_id", change.DeviceEvent.UnitID,
		"sent", report.Sent,
		"failed", report.Failed,
	)
	return nil
}
