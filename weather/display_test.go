package weather

import (
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestCelsius(t *testing.T) {
	assert.Equal(t, "27°C", Celsius(300.00))
	assert.Equal(t, "0°C", Celsius(273.15))
	assert.Equal(t, "-10°C", Celsius(263.15))
}

func TestFahrenheit(t *testing.T) {
	assert.Equal(t, "32°F", Fahrenheit(273.15))
	assert.Equal(t, "212°F", Fahrenheit(373.15))
}

func TestNewDisplay(t *testing.T) {
	d := NewDisplay(&Report{
		City:        "London",
		TempK:       300,
		FeelsLikeK:  301.2,
		Humidity:    81,
		Pressure:    1012,
		WindSpeed:   4.1,
		ConditionID: 800,
		Description: "clear sky",
	})

	assert.Equal(t, "London", d.City)
	assert.Equal(t, "27°C", d.Temperature)
	assert.Equal(t, "80°F", d.Fahrenheit)
	assert.Equal(t, "28°C", d.FeelsLike)
	assert.Equal(t, "81%", d.Humidity)
	assert.Equal(t, "4.1 m/s", d.Wind)
	assert.Equal(t, "1012 hPa", d.Pressure)
	assert.Equal(t, "clear", d.Bucket.Name)
	assert.Contains(t, d.String(), "It's a beautiful day! Enjoy the sun. ☀️")
}

func TestDisplay_StringWithoutMessage(t *testing.T) {
	d := NewDisplay(&Report{City: "Nowhere", TempK: 280, ConditionID: 999})
	assert.True(t, strings.HasSuffix(d.String(), "Pressure: 0 hPa"))
}

func TestGreeting(t *testing.T) {
	day := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(day)

	want := map[int]string{
		0:  "Good Evening 🌙",
		4:  "Good Evening 🌙",
		5:  "Good Morning ☀️",
		11: "Good Morning ☀️",
		12: "Good Afternoon 🌤",
		17: "Good Afternoon 🌤",
		18: "Good Evening 🌙",
		23: "Good Evening 🌙",
	}
	for h := 0; h < 24; h++ {
		if w, ok := want[h]; ok {
			assert.Equal(t, w, Greeting(clock.Now()), "hour %d", h)
		}
		clock.Advance(time.Hour)
	}
}
