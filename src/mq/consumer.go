package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/freelancenexus/nexus-go/src/logger"
)

// MessageHandler processes one event body for a routing key.
// A returned error is logged and the message acked anyway: the
// producer side treats delivery as at-most-once.
type MessageHandler func(ctx context.Context, body json.RawMessage) error

type Consumer struct {
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	queue    amqp091.Queue
	handlers map[string]MessageHandler
}

// NewConsumer declares a durable queue bound to the given routing keys.
func NewConsumer(url, queueName string, routingKeys ...string) (*Consumer, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareExchange(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	for _, key := range routingKeys {
		if err := ch.QueueBind(q.Name, key, ExchangeName, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to bind queue to %s: %w", key, err)
		}
	}

	return &Consumer{
		conn:     conn,
		channel:  ch,
		queue:    q,
		handlers: make(map[string]MessageHandler),
	}, nil
}

func (c *Consumer) Handle(routingKey string, h MessageHandler) {
	c.handlers[routingKey] = h
}

// Start consumes until ctx is cancelled. Handler errors never
// requeue the message.
func (c *Consumer) Start(ctx context.Context) error {
	deliveries, err := c.channel.Consume(c.queue.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	logger.WithField("queue", c.queue.Name).Info("Consumer started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.dispatch(ctx, d)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp091.Delivery) {
	handler, ok := c.handlers[d.RoutingKey]
	if !ok {
		logger.WithField("routing_key", d.RoutingKey).Warn("No handler for event")
		_ = d.Ack(false)
		return
	}

	if err := handler(ctx, d.Body); err != nil {
		logger.WithFields(logrus.Fields{
			"routing_key": d.RoutingKey,
			"error":       err,
		}).Error("Event handler failed")
	}
	_ = d.Ack(false)
}

func (c *Consumer) Close() {
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
