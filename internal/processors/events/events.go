// Package events consumes device ping and enrollment events and hands them
// to the dispatcher.
package events

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
	ErrDispatch         = errors.New("error dispatching event")
	ErrUnsupportedEvent = errors.New("unsupported event kind")
)

type dispatcher interface {
	PostDeviceEvent(ctx context.Context, event model.DeviceEvent) (dispatch.Report, error)
	PostDeviceEnrollment(ctx context.Context, event model.DeviceEvent) (dispatch.Report, error)
}

type recorder interface {
	MessageProcessed(stage, status string)
}

type Config struct {
	Brokers         []string
	ConsumerGroupID string
	ConsumerTopic   string
	// Kind is either PING or ENROLLMENT.
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
	stage, err := stageFor(cfg.Kind)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", fn, err)
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

func stageFor(kind model.EventKind) (string, error) {
	switch kind {
	case model.EventPing:
		return metrics.StagePing, nil
	case model.EventEnrollment:
		return metrics.StageEnrollment, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedEvent, kind)
}

func (c *Consumer) Run(ctx context.Context) {
	c.worker.Run(ctx)
}

func (c *Consumer) Close(ctx context.Context) {
	slog.InfoContext(ctx, "Closing event consumer resources...", "event_type", c.kind)
	c.reader.Close()
}

// Auto-commit active
func (c *Consumer) ProcessMessage(ctx context.Context) error {
	const fn = "Consumer:ProcessMessage"
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrReadMessage, err)
	}

	var event model.DeviceEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		c.recorder.MessageProcessed(c.stage, metrics.StatusError)
		return fmt.Errorf("%s:%w:%w", fn, ErrJSONParse, err)
	}

	var report dispatch.Report
	if c.kind == model.EventEnrollment {
		report, err = c.dispatcher.PostDeviceEnrollment(ctx, event)
	} else {
		report, err = c.dispatcher.PostDeviceEvent(ctx, event)
	}
	if err != nil {
		c.recorder.MessageProcessed(c.stage, metrics.StatusError)
		return fmt.Errorf("%s:%w:%w", fn, ErrDispatch, err)
	}

	c.recorder.MessageProcessed(c.stage, metrics.StatusSuccess)
	slog.InfoContext(ctx, "Dispatched device event",
		"event_type", c.kind,
		"user_id", event.UserID,
		"unit_id", event.UnitID,
		"sent", report.Sent,
		"failed", report.Failed,
	)
	return nil
}
