package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Ranges(t *testing.T) {
	tests := []struct {
		lo, hi int
		name   string
	}{
		{200, 232, "thunderstorm"},
		{300, 531, "rain"},
		{600, 622, "snow"},
		{700, 781, "atmosphere"},
		{800, 800, "clear"},
		{801, 804, "clouds"},
	}

	inRange := func(id int) string {
		for _, tt := range tests {
			if id >= tt.lo && id <= tt.hi {
				return tt.name
			}
		}
		return "fallback"
	}

	for id := 150; id <= 850; id++ {
		assert.Equal(t, inRange(id), Classify(id).Name, "id %d", id)
	}
}

func TestClassify_Assets(t *testing.T) {
	tests := map[int]Bucket{
		211: {"thunderstorm", "assets/backgrounds/rainy.gif", "assets/icons/thunder.png", "Stay safe! There's a thunderstorm outside.", "⛈️"},
		501: {"rain", "assets/backgrounds/rainy.gif", "assets/icons/rain.png", "Don't forget your umbrella!", "☔"},
		601: {"snow", "assets/backgrounds/default.gif", "assets/icons/snow.png", "It's freezing! Wear a warm coat.", "❄️"},
		741: {"atmosphere", "assets/backgrounds/cloudy.gif", "assets/icons/mist.png", "Visibility is low, drive carefully!", "🌫"},
		800: {"clear", "assets/backgrounds/sunny.gif", "assets/icons/sun.png", "It's a beautiful day! Enjoy the sun.", "☀️"},
		803: {"clouds", "assets/backgrounds/cloudy.gif", "assets/icons/cloud.png", "A bit cloudy today. Good weather for a walk.", "☁️"},
		999: {"fallback", "assets/backgrounds/default.gif", "assets/icons/sun.png", "", ""},
		-1:  {"fallback", "assets/backgrounds/default.gif", "assets/icons/sun.png", "", ""},
	}

	for id, want := range tests {
		assert.Equal(t, want, Classify(id), "id %d", id)
	}
}

func TestClassify_DoesNotMutateTable(t *testing.T) {
	_ = Classify(800)
	assert.Equal(t, "assets/backgrounds/sunny.gif", Classify(800).Background)
}
