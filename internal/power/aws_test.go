package power

import (
	"context"
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/doitintl/vmswitch/internal/cloud"
	"github.com/doitintl/vmswitch/internal/types"
	mocks "github.com/doitintl/vmswitch/mocks/cloud"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	tmock "github.com/stretchr/testify/mock"
)

func Test_regionFromZone(t *testing.T) {
	tests := []struct {
		zone string
		want string
	}{
		{zone: "us-east-1a", want: "us-east-1"},
		{zone: "eu-west-2c", want: "eu-west-2"},
		{zone: "us-east-1", want: "us-east-1"},
		{zone: "us-gov-west-1b", want: "us-gov-west-1"},
		{zone: "us-west-2-lax-1a", want: "us-west-2"},
		{zone: "us-east-1-wl1-bos-wlz-1", want: "us-east-1"},
		{zone: "ap-southeast-2-akl-1a", want: "ap-southeast-2"},
		{zone: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.zone, func(t *testing.T) {
			if got := regionFromZone(tt.zone); got != tt.want {
				t.Errorf("regionFromZone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_awsController_StartInstance(t *testing.T) {
	tests := []struct {
		name      string
		zone      string
		managerFn func(t *testing.T) cloud.Ec2InstanceManager
		want      *types.Operation
		wantErr   bool
	}{
		{
			name: "start instance successfully",
			zone: "us-east-1a",
			managerFn: func(t *testing.T) cloud.Ec2InstanceManager {
				mock := mocks.NewEc2InstanceManager(t)
				mock.EXPECT().Start(tmock.Anything, "i-1234567890").Return(&ec2types.InstanceStateChange{
					InstanceId:    aws.String("i-1234567890"),
					CurrentState:  &ec2types.InstanceState{Name: ec2types.InstanceStateNamePending},
					PreviousState: &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopped},
				}, nil)
				return mock
			},
			want: &types.Operation{
				Provider: types.CloudProviderAWS,
				ID:       "i-1234567890",
				Kind:     "start",
				Status:   "pending",
				Zone:     "us-east-1a",
			},
		},
		{
			name: "start instance fails",
			zone: "us-east-1a",
			managerFn: func(t *testing.T) cloud.Ec2InstanceManager {
				mock := mocks.NewEc2InstanceManager(t)
				mock.EXPECT().Start(tmock.Anything, "i-1234567890").Return(nil, errors.New("InvalidInstanceID.NotFound"))
				return mock
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := tt.managerFn(t)
			var regions []string
			c := &awsController{
				logger: logrus.NewEntry(logrus.New()),
				newManager: func(_ context.Context, region string) (cloud.Ec2InstanceManager, error) {
					regions = append(regions, region)
					return manager, nil
				},
				managers: make(map[string]cloud.Ec2InstanceManager),
			}
			got, err := c.StartInstance(context.Background(), "test-account", tt.zone, "i-1234567890")
			if (err != nil) != tt.wantErr {
				t.Errorf("StartInstance() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StartInstance() got = %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(regions, []string{"us-east-1"}) {
				t.Errorf("StartInstance() created clients for regions %v, want [us-east-1]", regions)
			}
		})
	}
}

func Test_awsController_StopInstance(t *testing.T) {
	mock := mocks.NewEc2InstanceManager(t)
	mock.EXPECT().Stop(tmock.Anything, "i-1", true).Return(&ec2types.InstanceStateChange{
		InstanceId:   aws.String("i-1"),
		CurrentState: &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopping},
	}, nil).Once()
	mock.EXPECT().Stop(tmock.Anything, "i-2", true).Return(&ec2types.InstanceStateChange{
		InstanceId:   aws.String("i-2"),
		CurrentState: &ec2types.InstanceState{Name: ec2types.InstanceStateNameStopping},
	}, nil).Once()

	created := 0
	c := &awsController{
		logger:    logrus.NewEntry(logrus.New()),
		forceStop: true,
		newManager: func(_ context.Context, region string) (cloud.Ec2InstanceManager, error) {
			created++
			return mock, nil
		},
		managers: make(map[string]cloud.Ec2InstanceManager),
	}

	for _, id := range []string{"i-1", "i-2"} {
		got, err := c.StopInstance(context.Background(), "", "eu-west-1b", id)
		if err != nil {
			t.Fatalf("StopInstance() unexpected error = %v", err)
		}
		if got.ID != id || got.Status != "stopping" || got.Kind != "stop" {
			t.Errorf("StopInstance() got = %v", got)
		}
	}
	if created != 1 {
		t.Errorf("StopInstance() created %d EC2 clients, want 1", created)
	}
}

func Test_awsController_clientError(t *testing.T) {
	c := &awsController{
		logger: logrus.NewEntry(logrus.New()),
		newManager: func(_ context.Context, _ string) (cloud.Ec2InstanceManager, error) {
			return nil, errors.New("no credentials")
		},
		managers: make(map[string]cloud.Ec2InstanceManager),
	}
	if _, err := c.StopInstance(context.Background(), "", "us-east-1a", "i-1"); err == nil {
		t.Error("StopInstance() expected error when EC2 client cannot be created")
	}
}
