package vmswitch

import (
	"context"
	"testing"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/doitintl/vmswitch/internal/config"
	"github.com/doitintl/vmswitch/internal/dispatcher"
	"github.com/doitintl/vmswitch/internal/types"
	mocks "github.com/doitintl/vmswitch/mocks/power"
	"github.com/sirupsen/logrus"
	tmock "github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPubSubEvent(t *testing.T, id, data string) cloudevents.Event {
	e := cloudevents.NewEvent()
	e.SetID(id)
	e.SetType("google.cloud.pubsub.topic.v1.messagePublished")
	e.SetSource("//pubsub.googleapis.com/projects/test-project/topics/test-topic")
	require.NoError(t, e.SetData(cloudevents.ApplicationJSON, map[string]interface{}{
		"message": map[string]interface{}{
			"data":      data,
			"messageId": id,
		},
		"subscription": "projects/test-project/subscriptions/test-subscription",
	}))
	return e
}

func TestStartStop(t *testing.T) {
	mock := mocks.NewController(t)
	tmock.InOrder(
		mock.EXPECT().StartInstance(tmock.Anything, "test-project", "zone1", "vm1").Return(&types.Operation{Name: "op-1"}, nil).Once(),
		mock.EXPECT().StartInstance(tmock.Anything, "test-project", "zone2", "vm2").Return(&types.Operation{Name: "op-2"}, nil).Once(),
		mock.EXPECT().StopInstance(tmock.Anything, "test-project", "zone1", "vm1").Return(&types.Operation{Name: "op-3"}, nil).Once(),
		mock.EXPECT().StopInstance(tmock.Anything, "test-project", "zone2", "vm2").Return(&types.Operation{Name: "op-4"}, nil).Once(),
	)
	cfg := &config.Config{Project: "test-project", Instances: "vm1:zone1,vm2:zone2"}
	Use(dispatcher.New(logrus.NewEntry(logrus.New()), cfg, mock))

	ctx := context.Background()
	require.NoError(t, StartStop(ctx, newPubSubEvent(t, "1", "MQ==")))
	require.NoError(t, StartStop(ctx, newPubSubEvent(t, "2", "MA==")))
	// rejected messages are acknowledged without calls
	require.NoError(t, StartStop(ctx, newPubSubEvent(t, "3", "YWJj")))
	require.NoError(t, StartStop(ctx, newPubSubEvent(t, "4", "")))
	require.NoError(t, StartStop(ctx, newPubSubEvent(t, "5", "Mg==")))
}
