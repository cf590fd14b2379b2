package cloud

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/pkg/errors"
)

type Ec2InstanceManager interface {
	Start(ctx context.Context, instanceID string) (*types.InstanceStateChange, error)
	Stop(ctx context.Context, instanceID string, force bool) (*types.InstanceStateChange, error)
}

type ec2InstanceManager struct {
	client *ec2.Client
}

func NewEc2InstanceManager(client *ec2.Client) Ec2InstanceManager {
	return &ec2InstanceManager{client: client}
}

func (m *ec2InstanceManager) Start(ctx context.Context, instanceID string) (*types.InstanceStateChange, error) {
	input := &ec2.StartInstancesInput{
		InstanceIds: []string{
			instanceID,
		},
	}

	resp, err := m.client.StartInstances(ctx, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start instance %s", instanceID)
	}

	return firstStateChange(resp.StartingInstances, instanceID)
}

func (m *ec2InstanceManager) Stop(ctx context.Context, instanceID string, force bool) (*types.InstanceStateChange, error) {
	input := &ec2.StopInstancesInput{
		InstanceIds: []string{
			instanceID,
		},
		Force: aws.Bool(force),
	}

	resp, err := m.client.StopInstances(ctx, input)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stop instance %s", instanceID)
	}

	return firstStateChange(resp.StoppingInstances, instanceID)
}

func firstStateChange(changes []types.InstanceStateChange, instanceID string) (*types.InstanceStateChange, error) {
	if len(changes) == 0 {
		return nil, errors.Errorf("no state change reported for instance %s", instanceID)
	}
	return &changes[0], nil
}
