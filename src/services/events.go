package services

import (
	"github.com/sirupsen/logrus"

	"github.com/freelancenexus/nexus-go/src/logger"
)

// EventPublisher is the outbound side of the broker. Satisfied by
// mq.Publisher. Delivery is best-effort from the caller's view.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

// publishEvent fires an event without ever failing the caller.
// Broker trouble is logged and swallowed.
func publishEvent(pub EventPublisher, routingKey string, payload any) {
	if pub == nil {
		return
	}
	if err := pub.Publish(routingKey, payload); err != nil {
		logger.WithFields(logrus.Fields{
			"routing_key": routingKey,
			"error":       err,
		}).Error("Failed to publish event")
	}
}
