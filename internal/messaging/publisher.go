package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
)

// NatsPublisher publishes domain events as JSON envelopes.
type NatsPublisher struct {
	nc  *nats.Conn
	log logrus.FieldLogger
}

// ConnectNats establishes a NATS connection that reconnects indefinitely.
func ConnectNats(url string, log logrus.FieldLogger) (*NatsPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("jobboard-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.WithError(err).Warn("nats disconnected")
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			log.WithField("url", c.ConnectedUrl()).Info("nats reconnected")
		}),
	)
	if err != nil {
		return nil, err
	}

	log.WithField("url", nc.ConnectedUrl()).Info("connected to nats")
	return &NatsPublisher{nc: nc, log: log}, nil
}

func (p *NatsPublisher) Publish(ctx context.Context, subject string, data interface{}) error {
	if p.nc == nil || p.nc.IsClosed() {
		return nats.ErrConnectionClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(Envelope{
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	})
	if err != nil {
		return err
	}

	if err := p.nc.Publish(subject, payload); err != nil {
		return err
	}
	p.log.WithField("subject", subject).Debug("event published")
	return nil
}

// Close drains pending messages before closing the connection.
func (p *NatsPublisher) Close() {
	if p.nc == nil || p.nc.IsClosed() {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.log.WithError(err).Warn("nats drain failed")
		p.nc.Close()
	}
}

// NopPublisher drops every event; used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }

func (NopPublisher) Close() {}
