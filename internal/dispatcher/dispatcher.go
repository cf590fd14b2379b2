package dispatcher

import (
	"context"

	"github.com/doitintl/vmswitch/internal/config"
	"github.com/doitintl/vmswitch/internal/event"
	"github.com/doitintl/vmswitch/internal/power"
	"github.com/doitintl/vmswitch/internal/types"
	"github.com/sirupsen/logrus"
)

// Dispatcher turns a start/stop message into one power call per configured instance.
type Dispatcher struct {
	logger     *logrus.Entry
	controller power.Controller
	project    string
	dryRun     bool
	// instances and instancesErr are parsed once; a parse error is reported on every message
	instances    []types.InstanceRef
	instancesErr error
}

// New returns a Dispatcher for the configured project and instance list.
func New(logger *logrus.Entry, cfg *config.Config, controller power.Controller) *Dispatcher {
	instances, err := types.ParseInstanceRefs(cfg.Instances)
	if err != nil {
		logger.WithError(err).Warn("instance list is not usable, messages will be rejected")
	}
	return &Dispatcher{
		logger:       logger,
		controller:   controller,
		project:      cfg.Project,
		dryRun:       cfg.DryRun,
		instances:    instances,
		instancesErr: err,
	}
}

// Handle dispatches the message and logs a rejected message. It never fails.
func (d *Dispatcher) Handle(ctx context.Context, msg *event.Message) {
	if err := d.Dispatch(ctx, msg); err != nil {
		d.logger.WithError(err).WithField("message-id", messageID(msg)).Error("message rejected")
	}
}

// Dispatch validates the message and issues the start or stop calls sequentially in configured order.
// Errors returned are validation errors only; failed calls are logged and do not stop the batch.
func (d *Dispatcher) Dispatch(ctx context.Context, msg *event.Message) error {
	payload, err := msg.Payload()
	if err != nil {
		return err //nolint:wrapcheck
	}
	action, err := types.ParseAction(payload)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if d.instancesErr != nil {
		return d.instancesErr
	}
	if action, err = types.ParseDirective(payload); err != nil {
		return err //nolint:wrapcheck
	}

	log := d.logger.WithFields(logrus.Fields{
		"message-id": messageID(msg),
		"action":     action.String(),
		"instances":  len(d.instances),
	})
	log.Info("dispatching directive")

	for _, ref := range d.instances {
		d.apply(ctx, action, ref)
	}
	return nil
}

func (d *Dispatcher) apply(ctx context.Context, action types.Directive, ref types.InstanceRef) {
	log := d.logger.WithFields(logrus.Fields{
		"project":  d.project,
		"zone":     ref.Zone,
		"instance": ref.Instance,
	})

	call := d.controller.StartInstance
	verb := "starting"
	if action == types.Stop {
		call = d.controller.StopInstance
		verb = "stopping"
	}

	if d.dryRun {
		log.Infof("dry run: skip %s VM", verb)
		return
	}

	log.Infof("%s VM", verb)
	op, err := call(ctx, d.project, ref.Zone, ref.Instance)
	if err != nil {
		log.WithError(err).Errorf("failed %s VM", verb)
		return
	}
	log.WithField("operation", op.String()).Infof("%s VM response", action)
}

func messageID(msg *event.Message) string {
	if msg == nil {
		return ""
	}
	return msg.ID
}
