package rabbitmq

import (
	"context"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/out"
	amqp "github.com/rabbitmq/amqp091-go"
)

func (l *InvalidationListener) startHolidayQueue(ctx context.Context) error {
	return l.consume(ctx, l.cfg.RabbitMQ.HolidayQueue, l.processHolidayMessage)
}

func (l *InvalidationListener) processHolidayMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseInvalidationRoutingKey(msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != InvalidationResourceTypeHoliday {
		return nil
	}

	// Un cambio en el calendario de festivos invalida también los tramos
	// cacheados: la clasificación de días puede haber cambiado
	if routingKey.Type == InvalidationTypeInvalidate {
		go l.useCase.InvalidateHolidays(ctx)

		l.logger.Info("holiday.message.invalidated", out.LogFields{
			"holiday_cache": true,
			"entries_cache": true,
		})
	}

	return nil
}
