// Package messaging publishes board change events.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nats-io/nats.go"
)

// Publisher sends an event payload on a subject.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// NatsPublisher publishes JSON events on a NATS connection.
type NatsPublisher struct {
	nc     *nats.Conn
	prefix string
}

// ConnectNats dials url with reconnect handling that reports through logger.
func ConnectNats(url string, logger *log.Logger) (*NatsPublisher, error) {
	opts := []nats.Option{
		nats.Name("board-service"),
		nats.Timeout(5 * time.Second),
		nats.ReconnectWait(time.Second),
		nats.MaxReconnects(10),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("nats disconnected", "err", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			logger.Error("nats error", "err", err)
		}),
		nats.DrainTimeout(10 * time.Second),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	logger.Info("connected to nats", "url", nc.ConnectedUrl())
	return &NatsPublisher{nc: nc, prefix: "kanban."}, nil
}

func (p *NatsPublisher) Publish(_ context.Context, subject string, payload any) error {
	if p.nc == nil || !p.nc.IsConnected() {
		return nats.ErrConnectionClosed
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", subject, err)
	}
	return p.nc.Publish(p.prefix+subject, data)
}

// Close drains pending messages and closes the connection.
func (p *NatsPublisher) Close() error {
	if p.nc == nil {
		return nil
	}
	return p.nc.Drain()
}

// NopPublisher drops every event. It is used when NATS is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, any) error { return nil }

// RecordingPublisher keeps published events in memory. It is safe for
// concurrent use.
type RecordingPublisher struct {
	mu     sync.Mutex
	Events []Event
}

type Event struct {
	Subject string
	Payload any
}

func (r *RecordingPublisher) Publish(_ context.Context, subject string, payload any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Events = append(r.Events, Event{Subject: subject, Payload: payload})
	return nil
}

// Subjects returns the subjects published so far, in order.
func (r *RecordingPublisher) Subjects() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	subjects := make([]string, 0, len(r.Events))
	for _, e := range r.Events {
		subjects = append(subjects, e.Subject)
	}
	return subjects
}
