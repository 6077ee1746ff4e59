package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"jobboard-service/internal/application/interfaces"
)

// publishEvent is fire-and-forget: a broker failure never fails the
// operation that already committed.
func publishEvent(ctx context.Context, events interfaces.EventPublisher, log logrus.FieldLogger, subject string, data interface{}) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, subject, data); err != nil {
		log.WithError(err).WithField("subject", subject).Warn("failed to publish event")
	}
}
