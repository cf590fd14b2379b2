package power

import (
	"context"
	"strconv"

	"cloud.google.com/go/compute/metadata"
	"github.com/doitintl/vmswitch/internal/cloud"
	"github.com/doitintl/vmswitch/internal/config"
	"github.com/doitintl/vmswitch/internal/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/compute/v1"
)

type gcpController struct {
	instanceManager cloud.InstanceManager
	discardLocalSsd bool
	logger          *logrus.Entry
}

func NewGCPController(ctx context.Context, logger *logrus.Entry, cfg *config.Config) (Controller, error) {
	// initialize Google Cloud client with application default credentials
	client, err := compute.NewService(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Google Cloud client")
	}

	// get project ID from metadata server
	if cfg.Project == "" {
		cfg.Project, err = metadata.ProjectID()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get project ID from metadata server")
		}
		logger.WithField("project", cfg.Project).Debug("using project ID from metadata server")
	}

	return &gcpController{
		instanceManager: cloud.NewInstanceManager(client),
		discardLocalSsd: cfg.DiscardLocalSsd,
		logger:          logger,
	}, nil
}

func (c *gcpController) StartInstance(ctx context.Context, project, zone, instance string) (*types.Operation, error) {
	op, err := c.instanceManager.Start(project, zone, instance).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start instance %s in zone %s", instance, zone)
	}
	return fromComputeOperation(op, zone)
}

func (c *gcpController) StopInstance(ctx context.Context, project, zone, instance string) (*types.Operation, error) {
	op, err := c.instanceManager.Stop(project, zone, instance, c.discardLocalSsd).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stop instance %s in zone %s", instance, zone)
	}
	return fromComputeOperation(op, zone)
}

func fromComputeOperation(op *compute.Operation, zone string) (*types.Operation, error) {
	if op == nil {
		return nil, ErrEmptyOperation
	}
	result := &types.Operation{
		Provider: types.CloudProviderGCP,
		Name:     op.Name,
		Kind:     op.OperationType,
		Status:   op.Status,
		Target:   op.TargetLink,
		Zone:     zone,
	}
	if op.Id != 0 {
		result.ID = strconv.FormatUint(op.Id, 10)
	}
	return result, nil
}
