package power

import (
	"context"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/doitintl/vmswitch/internal/cloud"
	"github.com/doitintl/vmswitch/internal/config"
	"github.com/doitintl/vmswitch/internal/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ec2ManagerFactory func(ctx context.Context, region string) (cloud.Ec2InstanceManager, error)

type awsController struct {
	logger     *logrus.Entry
	forceStop  bool
	newManager ec2ManagerFactory
	mutex      sync.Mutex
	managers   map[string]cloud.Ec2InstanceManager
}

func NewAwsController(_ context.Context, logger *logrus.Entry, cfg *config.Config) Controller {
	return &awsController{
		logger:     logger,
		forceStop:  cfg.ForceStop,
		newManager: newEc2InstanceManager,
		managers:   make(map[string]cloud.Ec2InstanceManager),
	}
}

func newEc2InstanceManager(ctx context.Context, region string) (cloud.Ec2InstanceManager, error) {
	// initialize AWS client
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load AWS config")
	}

	// create AWS client for EC2 service in the given region with default config and credentials
	return cloud.NewEc2InstanceManager(ec2.NewFromConfig(cfg)), nil
}

// regionFromZone returns the region a zone belongs to: the dash separated parts up to the
// first numeric one, without its zone letter.
// us-east-1a -> us-east-1, us-gov-west-1b -> us-gov-west-1, us-west-2-lax-1a -> us-west-2.
// A value that is already a region is returned as is.
func regionFromZone(zone string) string {
	parts := strings.Split(zone, "-")
	for i, part := range parts {
		if part != "" && part[0] >= '0' && part[0] <= '9' {
			parts[i] = strings.TrimRight(part, "abcdefghijklmnopqrstuvwxyz")
			return strings.Join(parts[:i+1], "-")
		}
	}
	return zone
}

func (c *awsController) manager(ctx context.Context, zone string) (cloud.Ec2InstanceManager, error) {
	region := regionFromZone(zone)
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if m, ok := c.managers[region]; ok {
		return m, nil
	}
	m, err := c.newManager(ctx, region)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create EC2 client for region %s", region)
	}
	c.logger.WithField("region", region).Debug("created EC2 client")
	c.managers[region] = m
	return m, nil
}

func (c *awsController) StartInstance(ctx context.Context, _, zone, instance string) (*types.Operation, error) {
	m, err := c.manager(ctx, zone)
	if err != nil {
		return nil, err
	}
	change, err := m.Start(ctx, instance)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start instance %s in zone %s", instance, zone)
	}
	return fromStateChange(change, "start", zone), nil
}

func (c *awsController) StopInstance(ctx context.Context, _, zone, instance string) (*types.Operation, error) {
	m, err := c.manager(ctx, zone)
	if err != nil {
		return nil, err
	}
	change, err := m.Stop(ctx, instance, c.forceStop)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stop instance %s in zone %s", instance, zone)
	}
	return fromStateChange(change, "stop", zone), nil
}

func fromStateChange(change *ec2types.InstanceStateChange, kind, zone string) *types.Operation {
	op := &types.Operation{
		Provider: types.CloudProviderAWS,
		ID:       aws.ToString(change.InstanceId),
		Kind:     kind,
		Zone:     zone,
	}
	if change.CurrentState != nil {
		op.Status = string(change.CurrentState.Name)
	}
	return op
}
