package power

import (
	"context"
	"reflect"
	"testing"

	"github.com/doitintl/vmswitch/internal/cloud"
	"github.com/doitintl/vmswitch/internal/config"
	"github.com/doitintl/vmswitch/internal/types"
	mocks "github.com/doitintl/vmswitch/mocks/cloud"
	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func Test_ociController(t *testing.T) {
	const instanceOCID = "ocid1.instance.oc1.iad.test"
	tests := []struct {
		name        string
		forceStop   bool
		start       bool
		instanceSvc func(t *testing.T) cloud.OCIInstanceService
		want        *types.Operation
		wantErr     bool
	}{
		{
			name:  "start instance",
			start: true,
			instanceSvc: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := mocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().InstanceAction(mock.Anything, instanceOCID, core.InstanceActionActionStart).Return(&core.Instance{
					Id:             common.String(instanceOCID),
					DisplayName:    common.String("test-instance"),
					LifecycleState: core.InstanceLifecycleStateStarting,
				}, nil).Once()
				return mockSvc
			},
			want: &types.Operation{
				Provider: types.CloudProviderOCI,
				ID:       instanceOCID,
				Name:     "test-instance",
				Kind:     "START",
				Status:   "STARTING",
				Zone:     "AD-1",
			},
		},
		{
			name: "graceful stop",
			instanceSvc: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := mocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().InstanceAction(mock.Anything, instanceOCID, core.InstanceActionActionSoftstop).Return(&core.Instance{
					Id:             common.String(instanceOCID),
					LifecycleState: core.InstanceLifecycleStateStopping,
				}, nil).Once()
				return mockSvc
			},
			want: &types.Operation{
				Provider: types.CloudProviderOCI,
				ID:       instanceOCID,
				Kind:     "SOFTSTOP",
				Status:   "STOPPING",
				Zone:     "AD-1",
			},
		},
		{
			name:      "forced stop",
			forceStop: true,
			instanceSvc: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := mocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().InstanceAction(mock.Anything, instanceOCID, core.InstanceActionActionStop).Return(&core.Instance{
					Id:             common.String(instanceOCID),
					LifecycleState: core.InstanceLifecycleStateStopping,
				}, nil).Once()
				return mockSvc
			},
			want: &types.Operation{
				Provider: types.CloudProviderOCI,
				ID:       instanceOCID,
				Kind:     "STOP",
				Status:   "STOPPING",
				Zone:     "AD-1",
			},
		},
		{
			name:  "action fails",
			start: true,
			instanceSvc: func(t *testing.T) cloud.OCIInstanceService {
				mockSvc := mocks.NewOCIInstanceService(t)
				mockSvc.EXPECT().InstanceAction(mock.Anything, instanceOCID, core.InstanceActionActionStart).Return(nil, errors.New("error")).Once()
				return mockSvc
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &ociController{
				logger:      logrus.NewEntry(logrus.New()),
				forceStop:   tt.forceStop,
				instanceSvc: tt.instanceSvc(t),
			}
			var got *types.Operation
			var err error
			if tt.start {
				got, err = c.StartInstance(context.Background(), "ocid1.compartment.oc1..test", "AD-1", instanceOCID)
			} else {
				got, err = c.StopInstance(context.Background(), "ocid1.compartment.oc1..test", "AD-1", instanceOCID)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewController_unknownProvider(t *testing.T) {
	_, err := NewController(context.Background(), logrus.NewEntry(logrus.New()), &config.Config{Cloud: "azure"})
	if !errors.Is(err, ErrUnknownCloudProvider) {
		t.Errorf("NewController() error = %v, want %v", err, ErrUnknownCloudProvider)
	}
}
