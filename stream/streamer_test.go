package stream

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-g-everett/weatherapp/weather"
)

const testTopic = "home/weather/current"

var testNow = time.Date(2024, 3, 10, 14, 30, 0, 0, time.UTC)

func testDisplay() weather.Display {
	return weather.NewDisplay(&weather.Report{City: "Leeds", TempK: 285.15, ConditionID: 502, Description: "heavy rain"})
}

func TestStreamer_Publish(t *testing.T) {
	c := &fakeClient{}
	s := NewStreamer(c, testTopic, time.Second, clockwork.NewFakeClockAt(testNow), testLogger())

	require.NoError(t, s.Publish(context.Background(), testDisplay()))
	require.Len(t, c.published, 1)

	p := c.published[0]
	assert.Equal(t, testTopic, p.topic)
	assert.Equal(t, byte(1), p.qos)
	assert.True(t, p.retained)

	var got map[string]any
	require.NoError(t, json.Unmarshal(p.payload, &got))
	assert.Equal(t, "Leeds", got["city"])
	assert.Equal(t, "12°C", got["temperature"])
	assert.Equal(t, "2024-03-10T14:30:00Z", got["updatedAt"])
	bucket := got["bucket"].(map[string]any)
	assert.Equal(t, "rain", bucket["name"])
	assert.Equal(t, "assets/backgrounds/rainy.gif", bucket["background"])
}

func TestStreamer_PublishBrokerError(t *testing.T) {
	c := &fakeClient{publishTok: completedToken(errors.New("not connected"))}
	s := NewStreamer(c, testTopic, time.Second, clockwork.NewFakeClockAt(testNow), testLogger())

	err := s.Publish(context.Background(), testDisplay())
	assert.ErrorContains(t, err, "not connected")
}

func TestStreamer_PublishTimeout(t *testing.T) {
	c := &fakeClient{publishTok: &fakeToken{done: make(chan struct{})}}
	clock := clockwork.NewFakeClockAt(testNow)
	s := NewStreamer(c, testTopic, 5*time.Second, clock, testLogger())

	errc := make(chan error, 1)
	go func() {
		errc <- s.Publish(context.Background(), testDisplay())
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, clock.BlockUntilContext(ctx, 1))
	clock.Advance(5 * time.Second)

	assert.ErrorIs(t, <-errc, ErrPublishTimeout)
}

func TestStreamer_PublishCancelled(t *testing.T) {
	c := &fakeClient{publishTok: &fakeToken{done: make(chan struct{})}}
	s := NewStreamer(c, testTopic, time.Minute, clockwork.NewFakeClockAt(testNow), testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Publish(ctx, testDisplay()), context.Canceled)
}
