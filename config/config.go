package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/weatherapp/weather"
)

// Config holds all app settings. Values come from the YAML file first, then
// from environment variables, which win.
type Config struct {
	HTTP struct {
		Addr            string        `yaml:"addr"`
		ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	} `yaml:"http"`
	Weather struct {
		APIKey  string        `yaml:"apiKey"`
		BaseURL string        `yaml:"baseURL"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"weather"`
	Assets struct {
		Dir string `yaml:"dir"`
	} `yaml:"assets"`
	Mqtt struct {
		URL      string        `yaml:"url"`
		ClientID string        `yaml:"clientID"`
		Username string        `yaml:"username"`
		Password string        `yaml:"password"`
		Timeout  time.Duration `yaml:"timeout"`
		Topics   struct {
			Weather string `yaml:"weather"`
			Request string `yaml:"request"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	c := new(Config)
	c.HTTP.Addr = ":3000"
	c.HTTP.ShutdownTimeout = 10 * time.Second
	c.Weather.BaseURL = weather.DefaultBaseURL
	c.Weather.Timeout = 10 * time.Second
	c.Assets.Dir = "assets"
	c.Mqtt.ClientID = "weatherapp"
	c.Mqtt.Timeout = 5 * time.Second
	c.Mqtt.Topics.Weather = "home/weather/current"
	c.Log.Level = "info"
	c.Log.Format = "text"
	return c
}

// Load reads .env (if present), then path (if present), then the
// environment. A missing file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	c := Default()
	if path != "" {
		if err := c.readFile(path); err != nil {
			return nil, err
		}
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	setString("API_KEY", &c.Weather.APIKey)
	setString("WEATHER_BASE_URL", &c.Weather.BaseURL)
	setString("HTTP_ADDR", &c.HTTP.Addr)
	setString("ASSETS_DIR", &c.Assets.Dir)
	setString("LOG_LEVEL", &c.Log.Level)
	setString("LOG_FORMAT", &c.Log.Format)
	setString("MQTT_URL", &c.Mqtt.URL)
	setString("MQTT_USERNAME", &c.Mqtt.Username)
	setString("MQTT_PASSWORD", &c.Mqtt.Password)
	setString("MQTT_TOPIC", &c.Mqtt.Topics.Weather)
	setString("MQTT_REQUEST_TOPIC", &c.Mqtt.Topics.Request)

	if v := os.Getenv("WEATHER_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.New("invalid WEATHER_TIMEOUT")
		}
		c.Weather.Timeout = d
	}
	return nil
}

// Validate checks settings that would otherwise fail later and less clearly.
// The API key is not checked: a lookup without one reports it to the user.
func (c *Config) Validate() error {
	if c.Weather.Timeout <= 0 {
		return errors.New("weather timeout must be positive")
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return fmt.Errorf("log format %q: want text or json", c.Log.Format)
	}
	if c.Mqtt.URL != "" && c.Mqtt.Topics.Weather == "" {
		return errors.New("mqtt url is set but the weather topic is empty")
	}
	if c.Mqtt.URL != "" && c.Mqtt.Timeout <= 0 {
		return errors.New("mqtt timeout must be positive")
	}
	return nil
}

// MqttEnabled reports whether lookups should be streamed to a broker.
func (c *Config) MqttEnabled() bool {
	return c.Mqtt.URL != ""
}
