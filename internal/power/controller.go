package power

import (
	"context"
	"errors"

	"github.com/doitintl/vmswitch/internal/config"
	"github.com/doitintl/vmswitch/internal/types"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownCloudProvider = errors.New("unknown cloud provider")
	ErrEmptyOperation       = errors.New("empty operation returned")
)

// Controller starts and stops a single instance identified by project, zone and instance name.
type Controller interface {
	StartInstance(ctx context.Context, project, zone, instance string) (*types.Operation, error)
	StopInstance(ctx context.Context, project, zone, instance string) (*types.Operation, error)
}

// NewController returns the Controller for the configured cloud provider.
func NewController(ctx context.Context, logger *logrus.Entry, cfg *config.Config) (Controller, error) {
	switch cfg.Cloud {
	case types.CloudProviderGCP, "":
		return NewGCPController(ctx, logger, cfg)
	case types.CloudProviderAWS:
		return NewAwsController(ctx, logger, cfg), nil
	case types.CloudProviderOCI:
		return NewOCIController(ctx, logger, cfg)
	}
	return nil, ErrUnknownCloudProvider
}
