package event

import (
	"encoding/base64"
	"strings"

	"github.com/doitintl/vmswitch/internal/types"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

const (
	dataPath         = "message.data"
	messageIDPath    = "message.messageId"
	publishTimePath  = "message.publishTime"
	attributesPath   = "message.attributes"
	subscriptionPath = "subscription"
)

// Message is a Pub/Sub message as delivered in a push envelope or a MessagePublishedData CloudEvent.
type Message struct {
	ID           string
	Data         string
	PublishTime  string
	Attributes   map[string]string
	Subscription string
}

// Parse extracts the Pub/Sub message from a JSON body shaped as
// {"message": {"data": "...", "messageId": "..."}, "subscription": "..."}.
// Malformed bodies produce an empty message.
func Parse(body []byte) *Message {
	msg := &Message{}
	if !gjson.ValidBytes(body) {
		return msg
	}
	fields := gjson.GetManyBytes(body, dataPath, messageIDPath, publishTimePath, subscriptionPath)
	msg.Data = fields[0].String()
	msg.ID = fields[1].String()
	msg.PublishTime = fields[2].String()
	msg.Subscription = fields[3].String()
	if attrs := gjson.GetBytes(body, attributesPath); attrs.IsObject() {
		msg.Attributes = make(map[string]string)
		attrs.ForEach(func(key, value gjson.Result) bool {
			msg.Attributes[key.String()] = value.String()
			return true
		})
	}
	return msg
}

// NewMessage wraps a raw payload into a message, encoding it the way Pub/Sub does.
func NewMessage(payload []byte) *Message {
	return &Message{Data: base64.StdEncoding.EncodeToString(payload)}
}

// Payload returns the decoded message data.
func (m *Message) Payload() ([]byte, error) {
	if m == nil {
		return nil, types.ErrMissingPayload
	}
	data := strings.TrimSpace(m.Data)
	if data == "" {
		return nil, types.ErrMissingPayload
	}
	payload, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		// publishers outside Pub/Sub sometimes use the URL-safe alphabet
		var urlErr error
		if payload, urlErr = base64.URLEncoding.DecodeString(data); urlErr != nil {
			return nil, errors.Wrapf(types.ErrInvalidPayload, "failed to decode message data: %v", err)
		}
	}
	return payload, nil
}
