package cloud

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/pkg/errors"
)

// OCIInstanceService is the interface for all instance related operations in OCI.
type OCIInstanceService interface {
	InstanceAction(ctx context.Context, instanceOCID string, action core.InstanceActionActionEnum) (*core.Instance, error)
}

// ociInstanceService is the implementation of OCIInstanceService.
type ociInstanceService struct {
	client core.ComputeClient
}

// NewOCIInstanceService creates a new instance of OCIInstanceService.
func NewOCIInstanceService() (OCIInstanceService, error) {
	client, err := core.NewComputeClientWithConfigurationProvider(common.DefaultConfigProvider())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create OCI Compute client")
	}

	return &ociInstanceService{client: client}, nil
}

// InstanceAction performs a power action (START, STOP, SOFTSTOP, ...) on the given instance OCID.
func (svc *ociInstanceService) InstanceAction(ctx context.Context, instanceOCID string, action core.InstanceActionActionEnum) (*core.Instance, error) {
	request := core.InstanceActionRequest{
		InstanceId: common.String(instanceOCID),
		Action:     action,
	}
	response, err := svc.client.InstanceAction(ctx, request)
	if err != nil {
		return nil, errors.Wrapf(err, "error while performing %s on instance %s", action, instanceOCID)
	}

	return &response.Instance, nil
}
