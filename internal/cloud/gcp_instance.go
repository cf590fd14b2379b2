package cloud

import (
	"context"

	"google.golang.org/api/compute/v1"
)

type InstanceCall interface {
	Context(ctx context.Context) InstanceCall
	Do() (*compute.Operation, error)
}

type InstanceManager interface {
	Start(projectID, zone, instance string) InstanceCall
	Stop(projectID, zone, instance string, discardLocalSsd bool) InstanceCall
}

type instanceManager struct {
	client *compute.Service
}

type instanceStartCall struct {
	call *compute.InstancesStartCall
}

type instanceStopCall struct {
	call *compute.InstancesStopCall
}

func NewInstanceManager(client *compute.Service) InstanceManager {
	return &instanceManager{client: client}
}

func (m *instanceManager) Start(projectID, zone, instance string) InstanceCall {
	return &instanceStartCall{m.client.Instances.Start(projectID, zone, instance)}
}

func (m *instanceManager) Stop(projectID, zone, instance string, discardLocalSsd bool) InstanceCall {
	call := m.client.Instances.Stop(projectID, zone, instance)
	if discardLocalSsd {
		call = call.DiscardLocalSsd(true)
	}
	return &instanceStopCall{call}
}

func (c *instanceStartCall) Context(ctx context.Context) InstanceCall {
	return &instanceStartCall{c.call.Context(ctx)}
}

func (c *instanceStartCall) Do() (*compute.Operation, error) {
	return c.call.Do() //nolint:wrapcheck
}

func (c *instanceStopCall) Context(ctx context.Context) InstanceCall {
	return &instanceStopCall{c.call.Context(ctx)}
}

func (c *instanceStopCall) Do() (*compute.Operation, error) {
	return c.call.Do() //nolint:wrapcheck
}
