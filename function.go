// Package vmswitch starts or stops a fixed list of virtual machines when a Pub/Sub message arrives.
// The payload "1" starts every configured instance and "0" stops them.
package vmswitch

import (
	"context"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/doitintl/vmswitch/internal/config"
	"github.com/doitintl/vmswitch/internal/dispatcher"
	"github.com/doitintl/vmswitch/internal/event"
	"github.com/doitintl/vmswitch/internal/logger"
	"github.com/doitintl/vmswitch/internal/power"
	"github.com/pkg/errors"
)

// FunctionName is the entry point name the function is registered under.
const FunctionName = "StartStop"

var version string

var (
	once    sync.Once
	handler *dispatcher.Dispatcher
	initErr error
)

func init() {
	functions.CloudEvent(FunctionName, StartStop)
}

// Use sets the dispatcher serving StartStop instead of one configured from the environment.
// It has no effect once the function has handled an event.
func Use(d *dispatcher.Dispatcher) {
	once.Do(func() {
		handler = d
	})
}

// StartStop handles a google.cloud.pubsub.topic.v1.messagePublished event.
// Rejected messages are logged and acknowledged; an error is returned only when the
// function cannot be set up.
func StartStop(ctx context.Context, e cloudevents.Event) error {
	once.Do(func() {
		handler, initErr = fromEnvironment(ctx)
	})
	if initErr != nil {
		return initErr
	}
	handler.Handle(ctx, event.Parse(e.Data()))
	return nil
}

func fromEnvironment(ctx context.Context) (*dispatcher.Dispatcher, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogJSON, version)
	log.WithField("config", cfg).Debug("loaded configuration from environment")
	controller, err := power.NewController(ctx, log, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create instance controller")
	}
	return dispatcher.New(log, cfg, controller), nil
}
