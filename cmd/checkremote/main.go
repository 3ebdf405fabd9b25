package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/barber-stats/infrastructure/integrator/booking"
	"github.com/vfg2006/barber-stats/infrastructure/integrator/booking/bookingclient"
	"github.com/vfg2006/barber-stats/internal/config"
	"github.com/vfg2006/barber-stats/internal/usecases/connectivity"
	"github.com/vfg2006/barber-stats/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)

	client := bookingclient.NewClient(config.BookingAPI{
		URL:       cfg.CheckRemote.URL,
		Timeout:   cfg.CheckRemote.Timeout,
		UserAgent: cfg.CheckRemote.UserAgent,
	})

	checker := connectivity.NewChecker(booking.New(client), os.Stdout)
	if !checker.Check(context.Background()) {
		os.Exit(1)
	}
}
