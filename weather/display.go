package weather

import (
	"fmt"
	"strconv"
	"time"
)

const kelvinOffset = 273.15

// Display is a Report formatted for people.
type Display struct {
	City        string `json:"city"`
	Temperature string `json:"temperature"`
	Fahrenheit  string `json:"fahrenheit"`
	FeelsLike   string `json:"feelsLike"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
	Pressure    string `json:"pressure"`
	Description string `json:"description"`
	ConditionID int    `json:"conditionId"`
	Bucket      Bucket `json:"bucket"`
}

// NewDisplay formats r and picks its bucket.
func NewDisplay(r *Report) Display {
	return Display{
		City:        r.City,
		Temperature: Celsius(r.TempK),
		Fahrenheit:  Fahrenheit(r.TempK),
		FeelsLike:   Celsius(r.FeelsLikeK),
		Humidity:    strconv.Itoa(r.Humidity) + "%",
		Wind:        strconv.FormatFloat(r.WindSpeed, 'f', -1, 64) + " m/s",
		Pressure:    strconv.Itoa(r.Pressure) + " hPa",
		Description: r.Description,
		ConditionID: r.ConditionID,
		Bucket:      Classify(r.ConditionID),
	}
}

// Celsius renders a Kelvin temperature rounded to whole degrees Celsius.
func Celsius(k float64) string {
	return fmt.Sprintf("%.0f°C", k-kelvinOffset)
}

// Fahrenheit renders a Kelvin temperature rounded to whole degrees Fahrenheit.
func Fahrenheit(k float64) string {
	return fmt.Sprintf("%.0f°F", (k-kelvinOffset)*9/5+32)
}

// String is the plain-text rendering used by the CLI.
func (d Display) String() string {
	s := fmt.Sprintf("%s\n%s (%s), feels like %s\n%s\nHumidity: %s\nWind: %s\nPressure: %s",
		d.City, d.Temperature, d.Fahrenheit, d.FeelsLike, d.Description, d.Humidity, d.Wind, d.Pressure)
	if d.Bucket.Message != "" {
		s += "\n" + d.Bucket.Message + " " + d.Bucket.Emoji
	}
	return s
}

// Greeting picks a salutation for the local hour of now.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h >= 5 && h < 12:
		return "Good Morning ☀️"
	case h >= 12 && h < 18:
		return "Good Afternoon 🌤"
	default:
		return "Good Evening 🌙"
	}
}
