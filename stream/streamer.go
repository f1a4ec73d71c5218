package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/jonboulle/clockwork"

	"github.com/matt-g-everett/weatherapp/weather"
)

// ErrPublishTimeout is returned when the broker does not acknowledge in time.
var ErrPublishTimeout = errors.New("mqtt publish timed out")

// Message is the retained payload describing the latest lookup.
type Message struct {
	weather.Display
	UpdatedAt time.Time `json:"updatedAt"`
}

// Streamer publishes weather lookups to an MQTT topic so ambient devices can
// follow the current conditions.
type Streamer struct {
	client  mqtt.Client
	topic   string
	timeout time.Duration
	clock   clockwork.Clock
	logger  *slog.Logger
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(client mqtt.Client, topic string, timeout time.Duration, clock clockwork.Clock, logger *slog.Logger) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.timeout = timeout
	s.clock = clock
	s.logger = logger
	return s
}

// Publish sends d as JSON, QoS 1 and retained, and waits for the broker.
func (s *Streamer) Publish(ctx context.Context, d weather.Display) error {
	b, err := json.Marshal(Message{Display: d, UpdatedAt: s.clock.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	token := s.client.Publish(s.topic, 1, true, b)
	timer := s.clock.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case <-token.Done():
	case <-timer.Chan():
		return fmt.Errorf("publish %s: %w", s.topic, ErrPublishTimeout)
	case <-ctx.Done():
		return fmt.Errorf("publish %s: %w", s.topic, ctx.Err())
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish %s: %w", s.topic, err)
	}

	s.logger.Debug("lookup published", "topic", s.topic, "city", d.City, "bytes", len(b))
	return nil
}
