package rabbitmq

import (
	"context"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/out"
	amqp "github.com/rabbitmq/amqp091-go"
)

func (l *InvalidationListener) startAllQueue(ctx context.Context) error {
	return l.consume(ctx, l.cfg.RabbitMQ.AllQueue, l.processAllMessage)
}

func (l *InvalidationListener) processAllMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseInvalidationRoutingKey(msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != InvalidationResourceTypeAll {
		return nil
	}

	if routingKey.Type == InvalidationTypeInvalidate {
		go l.useCase.InvalidateAll(ctx)

		l.logger.Info("_all_.message.invalidated", out.LogFields{
			"entries_cache": true,
			"holiday_cache": true,
		})
	}

	return nil
}
