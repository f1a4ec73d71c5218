package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/matt-g-everett/weatherapp/weather"
)

// RequestMessage asks the app to look up a city. Devices publish it to the
// request topic; the answer arrives on the weather topic.
type RequestMessage struct {
	City string `json:"city"`
}

// Looker runs a weather lookup.
type Looker interface {
	Lookup(ctx context.Context, city string) (weather.Display, error)
}

// Requests listens for lookup requests arriving over MQTT.
type Requests struct {
	client mqtt.Client
	topic  string
	looker Looker
	logger *slog.Logger

	ctx    context.Context
	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewRequests creates an instance of Requests. Lookups it starts use ctx.
func NewRequests(ctx context.Context, client mqtt.Client, topic string, looker Looker, logger *slog.Logger) *Requests {
	r := new(Requests)
	r.ctx = ctx
	r.client = client
	r.topic = topic
	r.looker = looker
	r.logger = logger
	return r
}

func (r *Requests) handleMessage(_ mqtt.Client, msg mqtt.Message) {
	var req RequestMessage
	if err := json.Unmarshal(msg.Payload(), &req); err != nil {
		r.logger.Warn("bad lookup request", "topic", msg.Topic(), "error", err)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		r.logger.Debug("dropping lookup request after close", "city", req.City)
		return
	}

	// Handlers must not block the paho router, and the lookup publishes.
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if _, err := r.looker.Lookup(r.ctx, req.City); err != nil {
			r.logger.Warn("requested lookup failed", "city", req.City, "reason", weather.Describe(err))
		}
	}()
}

// Subscribe registers for lookup requests. Call it from the connect handler
// so the subscription survives reconnects.
func (r *Requests) Subscribe() error {
	if token := r.client.Subscribe(r.topic, 1, r.handleMessage); token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", r.topic, token.Error())
	}
	r.logger.Info("listening for lookup requests", "topic", r.topic)
	return nil
}

// Wait blocks until lookups already started have finished.
func (r *Requests) Wait() {
	r.wg.Wait()
}

// Close stops accepting requests, unsubscribes and waits for running lookups.
func (r *Requests) Close(timeout time.Duration) {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	if r.client.IsConnected() {
		token := r.client.Unsubscribe(r.topic)
		if !token.WaitTimeout(timeout) {
			r.logger.Warn("unsubscribe timed out", "topic", r.topic)
		} else if err := token.Error(); err != nil {
			r.logger.Warn("unsubscribe failed", "topic", r.topic, "error", err)
		}
	}
	r.wg.Wait()
}
