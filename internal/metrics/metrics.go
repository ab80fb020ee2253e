// Package metrics exposes the dispatcher's Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Stages of message processing.
const (
	StagePublish             = "publish"
	StagePing                = "ping"
	StageEnrollment          = "enrollment"
	StageDeviceDataChange    = "device_data_change"
	StageDevicePackageChange = "device_package_change"
)

type Recorder struct {
	registry          *prometheus.Registry
	messagesProcessed *prometheus.CounterVec
	hooksDispatched   *prometheus.CounterVec
}

func New() *Recorder {
	registry := prometheus.NewRegistry()
	r := &Recorder{
		registry: registry,
		messagesProcessed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatcher_messages_processed_total",
				Help: "Total number of processed messages by stage and status",
			},
			[]string{"stage", "status"},
		),
		hooksDispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dispatcher_hooks_dispatched_total",
				Help: "Total number of hook messages sent by destination and status",
			},
			[]string{"destination", "status"},
		),
	}
	registry.MustRegister(
		r.messagesProcessed,
		r.hooksDispatched,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

func (r *Recorder) MessageProcessed(stage, status string) {
	r.messagesProcessed.WithLabelValues(stage, status).Inc()
}

// HookDispatched counts one outbound send. destination is empty when the
// hook could not be routed.
func (r *Recorder) HookDispatched(destination, status string) {
	if destination == "" {
		destination = "unrouted"
	}
	r.hooksDispatched.WithLabelValues(destination, status).Inc()
	r.MessageProcessed(StagePublish, status)
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
