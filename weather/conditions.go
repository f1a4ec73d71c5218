package weather

import "path"

// Asset directories, relative to the assets root.
const (
	BackgroundDir = "assets/backgrounds"
	IconDir       = "assets/icons"
)

// Bucket groups condition codes that share a background, icon and message.
type Bucket struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Icon       string `json:"icon"`
	Message    string `json:"message"`
	Emoji      string `json:"emoji"`
}

type codeRange struct {
	lo, hi int
	bucket Bucket
}

var buckets = []codeRange{
	{200, 232, Bucket{"thunderstorm", "rainy.gif", "thunder.png", "Stay safe! There's a thunderstorm outside.", "⛈️"}},
	{300, 531, Bucket{"rain", "rainy.gif", "rain.png", "Don't forget your umbrella!", "☔"}},
	{600, 622, Bucket{"snow", "default.gif", "snow.png", "It's freezing! Wear a warm coat.", "❄️"}},
	{700, 781, Bucket{"atmosphere", "cloudy.gif", "mist.png", "Visibility is low, drive carefully!", "🌫"}},
	{800, 800, Bucket{"clear", "sunny.gif", "sun.png", "It's a beautiful day! Enjoy the sun.", "☀️"}},
	{801, 804, Bucket{"clouds", "cloudy.gif", "cloud.png", "A bit cloudy today. Good weather for a walk.", "☁️"}},
}

var fallback = Bucket{Name: "fallback", Background: "default.gif", Icon: "sun.png"}

// Classify maps a condition code onto its bucket. Codes outside every known
// range fall back to the default background with the sun icon and no message.
func Classify(id int) Bucket {
	b := fallback
	for _, r := range buckets {
		if id >= r.lo && id <= r.hi {
			b = r.bucket
			break
		}
	}
	b.Background = path.Join(BackgroundDir, b.Background)
	b.Icon = path.Join(IconDir, b.Icon)
	return b
}
