package power

import (
	"context"

	"github.com/doitintl/vmswitch/internal/cloud"
	"github.com/doitintl/vmswitch/internal/config"
	"github.com/doitintl/vmswitch/internal/types"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ociController is a Controller implementation for Oracle Cloud Infrastructure.
// Instances are addressed by OCID, so zone and compartment are only used for logging.
type ociController struct {
	logger      *logrus.Entry
	forceStop   bool
	instanceSvc cloud.OCIInstanceService
}

// NewOCIController creates a new Controller for Oracle Cloud Infrastructure.
func NewOCIController(_ context.Context, logger *logrus.Entry, cfg *config.Config) (Controller, error) {
	logger.WithField("compartmentOCID", cfg.Project).Info("creating new OCI controller with given config")

	instanceSvc, err := cloud.NewOCIInstanceService()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create compute service for OCI")
	}

	return &ociController{
		logger:      logger,
		forceStop:   cfg.ForceStop,
		instanceSvc: instanceSvc,
	}, nil
}

// StartInstance powers on the instance.
func (c *ociController) StartInstance(ctx context.Context, _, zone, instanceOCID string) (*types.Operation, error) {
	return c.action(ctx, zone, instanceOCID, core.InstanceActionActionStart)
}

// StopInstance gracefully shuts the instance down, or powers it off when force stop is configured.
func (c *ociController) StopInstance(ctx context.Context, _, zone, instanceOCID string) (*types.Operation, error) {
	action := core.InstanceActionActionSoftstop
	if c.forceStop {
		action = core.InstanceActionActionStop
	}
	return c.action(ctx, zone, instanceOCID, action)
}

func (c *ociController) action(ctx context.Context, zone, instanceOCID string, action core.InstanceActionActionEnum) (*types.Operation, error) {
	c.logger.WithFields(logrus.Fields{
		"instanceOCID": instanceOCID,
		"action":       action,
	}).Debug("performing instance action")

	instance, err := c.instanceSvc.InstanceAction(ctx, instanceOCID, action)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to %s instance %s", action, instanceOCID)
	}
	if instance == nil {
		return nil, ErrEmptyOperation
	}

	return &types.Operation{
		Provider: types.CloudProviderOCI,
		ID:       stringValue(instance.Id),
		Name:     stringValue(instance.DisplayName),
		Kind:     string(action),
		Status:   string(instance.LifecycleState),
		Zone:     zone,
	}, nil
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
