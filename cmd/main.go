// Copyright © 2024 DoiT International
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/doitintl/vmswitch"
	"github.com/doitintl/vmswitch/internal/config"
	"github.com/doitintl/vmswitch/internal/dispatcher"
	"github.com/doitintl/vmswitch/internal/event"
	"github.com/doitintl/vmswitch/internal/logger"
	"github.com/doitintl/vmswitch/internal/power"
	"github.com/doitintl/vmswitch/internal/transport"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	version   string
	buildDate string
	gitCommit string
	gitBranch string
)

const functionTargetEnv = "FUNCTION_TARGET"

func prepareLogger(level string, json bool) *logrus.Entry {
	return logger.New(level, json, version)
}

func prepare(c *cli.Context) (context.Context, *logrus.Entry, *config.Config, power.Controller, error) {
	cfg := config.NewConfig(c)
	log := prepareLogger(cfg.LogLevel, cfg.LogJSON)
	if cfg.DevelopMode {
		log.Logger.SetLevel(logrus.DebugLevel)
	}
	log.WithField("config", cfg).Debug("configuration")

	ctx := c.Context
	controller, err := power.NewController(ctx, log, cfg)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "failed to create instance controller")
	}
	return ctx, log, cfg, controller, nil
}

// dispatch runs a single directive against the configured instances.
func dispatch(ctx context.Context, log *logrus.Entry, controller power.Controller, cfg *config.Config, directive string) error {
	d := dispatcher.New(log, cfg, controller)
	if err := d.Dispatch(ctx, event.NewMessage([]byte(directive))); err != nil {
		return errors.Wrap(err, "directive rejected")
	}
	return nil
}

func execCmd(c *cli.Context) error {
	ctx, log, cfg, controller, err := prepare(c)
	if err != nil {
		return err
	}
	return dispatch(ctx, log, controller, cfg, c.String("directive"))
}

func serveCmd(c *cli.Context) error {
	_, log, cfg, controller, err := prepare(c)
	if err != nil {
		return err
	}
	vmswitch.Use(dispatcher.New(log, cfg, controller))

	if os.Getenv(functionTargetEnv) == "" {
		if err = os.Setenv(functionTargetEnv, vmswitch.FunctionName); err != nil {
			return errors.Wrap(err, "failed to set function target")
		}
	}
	log.WithField("port", cfg.Port).Info("serving function locally")
	if err = funcframework.Start(cfg.Port); err != nil {
		return errors.Wrap(err, "failed to start functions framework")
	}
	return nil
}

func subscribeCmd(c *cli.Context) error {
	ctx, log, cfg, controller, err := prepare(c)
	if err != nil {
		return err
	}
	if cfg.NatsURL == "" {
		return errors.New("nats-url is required")
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sub, err := transport.Subscribe(ctx, log, cfg.NatsURL, cfg.NatsSubject, cfg.NatsQueue, dispatcher.New(log, cfg, controller))
	if err != nil {
		return errors.Wrap(err, "failed to subscribe")
	}
	<-ctx.Done()
	log.Info("shutting down")
	return sub.Close()
}

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Printf("vmswitch %s (built: %s, commit: %s, branch: %s)\n", version, buildDate, gitCommit, gitBranch)
	}
	app := &cli.App{
		Name:    "vmswitch",
		Usage:   "start or stop virtual machines on a Pub/Sub directive",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "project",
				Usage:    "name of the GCP project or the AWS account ID or the OCI compartment OCID (not needed if running on GCP)",
				EnvVars:  []string{"GCP_PROJECT"},
				Category: "Configuration",
			},
			&cli.StringFlag{
				Name:     "instances",
				Usage:    "comma separated instance:zone pairs, e.g. vm1:zone1,vm2:zone2",
				EnvVars:  []string{"INSTANCES_ZONES"},
				Category: "Configuration",
			},
			&cli.StringFlag{
				Name:     "cloud",
				Usage:    "cloud provider hosting the instances (gcp, aws, oci)",
				EnvVars:  []string{"CLOUD_PROVIDER"},
				Value:    "gcp",
				Category: "Configuration",
			},
			&cli.BoolFlag{
				Name:     "force-stop",
				Usage:    "stop instances without a graceful shutdown (aws, oci)",
				EnvVars:  []string{"FORCE_STOP"},
				Category: "Configuration",
			},
			&cli.BoolFlag{
				Name:     "discard-local-ssd",
				Usage:    "discard local SSD data when stopping instances (gcp)",
				EnvVars:  []string{"DISCARD_LOCAL_SSD"},
				Category: "Configuration",
			},
			&cli.BoolFlag{
				Name:     "dry-run",
				Usage:    "log the start/stop calls instead of issuing them",
				EnvVars:  []string{"DRY_RUN"},
				Category: "Configuration",
			},
			&cli.StringFlag{
				Name:     "log-level",
				Usage:    "set log level (debug, info(*), warning, error, fatal, panic)",
				Value:    "info",
				EnvVars:  []string{"LOG_LEVEL"},
				Category: "Logging",
			},
			&cli.BoolFlag{
				Name:     "json",
				Usage:    "produce log in JSON format: Logstash and Splunk friendly",
				EnvVars:  []string{"LOG_JSON"},
				Category: "Logging",
			},
			&cli.BoolFlag{
				Name:     "develop-mode",
				Usage:    "enable develop mode",
				EnvVars:  []string{"DEVELOP_MODE"},
				Category: "Development",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "exec",
				Usage:  "apply a single directive to the configured instances",
				Action: execCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "directive",
						Usage:    "1 to start, 0 to stop",
						Required: true,
					},
				},
			},
			{
				Name:   "serve",
				Usage:  "serve the Cloud Function locally",
				Action: serveCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Usage:   "port to listen on",
						Value:   config.DefaultPort,
						EnvVars: []string{"PORT"},
					},
				},
			},
			{
				Name:   "subscribe",
				Usage:  "receive directives from a NATS subject",
				Action: subscribeCmd,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "nats-url",
						Usage:    "NATS server URL",
						EnvVars:  []string{"NATS_URL"},
						Required: true,
					},
					&cli.StringFlag{
						Name:    "nats-subject",
						Usage:   "subject directives are published to",
						Value:   config.DefaultNatsSubject,
						EnvVars: []string{"NATS_SUBJECT"},
					},
					&cli.StringFlag{
						Name:    "nats-queue",
						Usage:   "queue group shared by subscribers",
						EnvVars: []string{"NATS_QUEUE"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("vmswitch failed")
	}
}
