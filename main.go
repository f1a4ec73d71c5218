package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/jonboulle/clockwork"

	"github.com/matt-g-everett/weatherapp/api"
	"github.com/matt-g-everett/weatherapp/config"
	"github.com/matt-g-everett/weatherapp/observability"
	"github.com/matt-g-everett/weatherapp/stream"
	"github.com/matt-g-everett/weatherapp/weather"
)

type app struct {
	Config   *config.Config
	Logger   *slog.Logger
	Clock    clockwork.Clock
	Client   mqtt.Client
	Streamer *stream.Streamer
	Requests *stream.Requests
	Service  *weather.Service
}

func newApp(cfg *config.Config, logger *slog.Logger) *app {
	a := new(app)
	a.Config = cfg
	a.Logger = logger
	a.Clock = clockwork.NewRealClock()
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	a.Logger.Info("mqtt connected", "broker", a.Config.Mqtt.URL)
	if a.Requests == nil {
		return
	}
	if err := a.Requests.Subscribe(); err != nil {
		a.Logger.Error("mqtt subscribe failed", "error", err)
	}
}

func (a *app) handleConnectionLost(_ mqtt.Client, err error) {
	a.Logger.Warn("mqtt connection lost", "error", err)
}

// setupMqtt creates the optional MQTT client and streamer.
func (a *app) setupMqtt() {
	if !a.Config.MqttEnabled() {
		a.Logger.Info("mqtt streaming disabled")
		return
	}

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetConnectRetry(true).
		SetOnConnectHandler(a.handleOnConnect).
		SetConnectionLostHandler(a.handleConnectionLost)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Client, a.Config.Mqtt.Topics.Weather, a.Config.Mqtt.Timeout, a.Clock, a.Logger)
}

// connectMqtt starts connecting to the broker. An unreachable broker is not
// fatal: paho keeps retrying in the background and publishes fail meanwhile.
func (a *app) connectMqtt() {
	if a.Client == nil {
		return
	}
	if token := a.Client.Connect(); !token.WaitTimeout(a.Config.Mqtt.Timeout) {
		a.Logger.Warn("mqtt broker not reachable yet", "broker", a.Config.Mqtt.URL)
	} else if token.Error() != nil {
		a.Logger.Error("mqtt connect failed", "broker", a.Config.Mqtt.URL, "error", token.Error())
	}
}

func (a *app) buildService(ctx context.Context, metrics *observability.Metrics) {
	client := weather.NewClient(a.Config.Weather.APIKey, a.Config.Weather.BaseURL, a.Config.Weather.Timeout, a.Logger)

	var publisher weather.Publisher
	if a.Streamer != nil {
		publisher = a.Streamer
	}
	a.Service = weather.NewService(client, publisher, metrics, a.Logger)

	if a.Client != nil && a.Config.Mqtt.Topics.Request != "" {
		a.Requests = stream.NewRequests(ctx, a.Client, a.Config.Mqtt.Topics.Request, a.Service, a.Logger)
	}
}

// lookupOnce prints the weather for one city, CLI style.
func (a *app) lookupOnce(ctx context.Context, city string) int {
	fmt.Println(weather.Greeting(a.Clock.Now()))
	d, err := a.Service.Lookup(ctx, city)
	if err != nil {
		fmt.Fprintln(os.Stderr, weather.Describe(err))
		return 1
	}
	fmt.Println(d)
	return 0
}

func (a *app) serve(ctx context.Context) int {
	srv := api.NewServer(a.Config.HTTP.Addr, a.Config.Assets.Dir, a.Service, a.Clock, a.Logger)

	errc := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	status := 0
	select {
	case <-ctx.Done():
		a.Logger.Info("shutting down")
	case err := <-errc:
		a.Logger.Error("http server error", "error", err)
		status = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("http server shutdown error", "error", err)
	}
	return status
}

func (a *app) close() {
	if a.Requests != nil {
		a.Requests.Close(a.Config.Mqtt.Timeout)
	}
	if a.Client != nil {
		a.Client.Disconnect(250)
	}
}

func main() {
	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	city := flag.String("city", "", "Print the weather for this city and exit.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	mqtt.ERROR = log.New(os.Stderr, "mqtt: ", 0)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	a := newApp(cfg, logger)
	a.setupMqtt()
	a.buildService(ctx, metrics)
	a.connectMqtt()

	var status int
	if *city != "" {
		status = a.lookupOnce(ctx, *city)
	} else {
		status = a.serve(ctx)
	}

	stop()
	a.close()
	logger.Debug("shutdown complete")
	os.Exit(status)
}
