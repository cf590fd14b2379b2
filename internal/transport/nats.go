package transport

import (
	"context"
	"time"

	"github.com/doitintl/vmswitch/internal/event"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	clientName    = "vmswitch"
	reconnectWait = time.Second
)

// Handler handles a single Pub/Sub message.
type Handler interface {
	Handle(ctx context.Context, msg *event.Message)
}

// Subscriber delivers messages published on a NATS subject to a Handler.
// Message bodies use the Pub/Sub push envelope format.
type Subscriber struct {
	conn   *nats.Conn
	sub    *nats.Subscription
	closed chan struct{}
	logger *logrus.Entry
}

// Subscribe connects to the NATS server and starts delivering messages to the handler.
// Messages are handled one at a time in the order they are received. Handlers get a context
// carrying the values of ctx that is never cancelled, so messages drained by Close still complete.
func Subscribe(ctx context.Context, logger *logrus.Entry, url, subject, queue string, handler Handler) (*Subscriber, error) {
	log := logger.WithFields(logrus.Fields{
		"nats-url": url,
		"subject":  subject,
	})
	closed := make(chan struct{})
	opts := []nats.Option{
		nats.Name(clientName),
		nats.ReconnectWait(reconnectWait),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("NATS disconnected")
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.WithField("server", nc.ConnectedUrl()).Info("NATS reconnected")
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			close(closed)
		}),
	}
	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to NATS server %s", url)
	}

	handlerCtx := context.WithoutCancel(ctx)
	cb := func(m *nats.Msg) {
		msg := event.Parse(m.Data)
		if msg.ID == "" {
			msg.ID = m.Header.Get(nats.MsgIdHdr)
		}
		handler.Handle(handlerCtx, msg)
	}

	var sub *nats.Subscription
	if queue != "" {
		sub, err = conn.QueueSubscribe(subject, queue, cb)
	} else {
		sub, err = conn.Subscribe(subject, cb)
	}
	if err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "failed to subscribe to %s", subject)
	}
	if err = conn.Flush(); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "failed to flush subscription")
	}
	log.WithField("queue", queue).Info("subscribed to NATS subject")

	return &Subscriber{conn: conn, sub: sub, closed: closed, logger: log}, nil
}

// Close stops receiving new messages and waits for in-flight messages to be handled.
func (s *Subscriber) Close() error {
	if err := s.conn.Drain(); err != nil {
		return errors.Wrap(err, "failed to drain NATS connection")
	}
	<-s.closed
	s.logger.Info("NATS subscription closed")
	return nil
}
