// Program weblogd runs a demo webhook host wired with the access logger.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"weblog"
	"weblog/internal/accesslog"
	"weblog/internal/config"
	obs "weblog/internal/observability"
)

func main() {
	cfgPath := flag.String("config", "", "config file path")
	flag.Parse()

	const (
		msgConfig = "config"
		msgLevel  = "level"
		msgColor  = "color"
		msgWatch  = "watch"
		msgReload = "level_reload"
		msgMetric = "metrics_listen"
		msgListen = "listen"
		msgServe  = "serve"

		webhookPath = "/webhook"
		healthPath  = "/health"
		metricsPath = "/metrics"
	)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		obs.Logger.Fatal().Err(err).Msg(msgConfig)
	}
	level, err := cfg.LogLevel()
	if err != nil {
		obs.Logger.Fatal().Err(err).Msg(msgLevel)
	}
	mode, err := cfg.ColorMode()
	if err != nil {
		obs.Logger.Fatal().Err(err).Msg(msgColor)
	}
	log := weblog.New(cfg.Name, level, mode, os.Stdout)
	access := accesslog.New(log)

	// Pick up severity threshold changes without a restart.
	if *cfgPath != "" {
		err := config.Watch(*cfgPath, func(c config.Config) {
			lv, err := c.LogLevel()
			if err != nil {
				return
			}
			log.SetLevel(lv)
			obs.Logger.Info().Str(obs.FieldLevel, c.Level).Msg(msgReload)
		})
		if err != nil {
			obs.Logger.Fatal().Err(err).Msg(msgWatch)
		}
	}

	obs.Register()
	go func() {
		http.Handle(metricsPath, promhttp.Handler())
		if err := http.ListenAndServe(cfg.Metrics, nil); err != nil {
			obs.Logger.Fatal().Err(err).Msg(msgMetric)
		}
	}()

	// Webhook dispatch lives upstream; this host acknowledges deliveries
	// and lets the access logger report each exchange.
	mux := http.NewServeMux()
	mux.HandleFunc(webhookPath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc(healthPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	obs.Logger.Info().Str(obs.FieldAddress, cfg.Addr).Msg(msgListen)
	if err := http.ListenAndServe(cfg.Addr, accesslog.Middleware(access, mux)); err != nil {
		obs.Logger.Fatal().Err(err).Msg(msgServe)
	}
}
