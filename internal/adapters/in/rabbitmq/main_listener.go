package rabbitmq

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/config"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/in"
	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/out"
	amqp "github.com/rabbitmq/amqp091-go"
)

// InvalidationListener escucha los cambios del panel de administración y tira
// la caché correspondiente: asignación editada, festivo nuevo o todo
type InvalidationListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.ScheduleExpanderUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type (
	InvalidationType         string
	InvalidationResourceType string
)

type InvalidationRoutingKey struct {
	Source       string
	Receiver     string
	ResourceType InvalidationResourceType
	Type         InvalidationType
}

const (
	InvalidationResourceTypeAll        InvalidationResourceType = "_all_"
	InvalidationResourceTypeAssignment InvalidationResourceType = "assignment"
	InvalidationResourceTypeHoliday    InvalidationResourceType = "holiday"
)

const (
	InvalidationTypeInvalidate InvalidationType = "invalidate"
)

func NewInvalidationListener(useCase in.ScheduleExpanderUseCase, cfg *config.Config, logger out.LoggerPort) (*InvalidationListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &InvalidationListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *InvalidationListener) Start(ctx context.Context) error {
	var err error
	err = l.startAssignmentQueue(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("assignment.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMQ.AssignmentQueue,
	})
	err = l.startHolidayQueue(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("holiday.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMQ.HolidayQueue,
	})
	err = l.startAllQueue(ctx)
	if err != nil {
		return err
	}
	l.logger.Info("_all_.queue.started", out.LogFields{
		"queue": l.cfg.RabbitMQ.AllQueue,
	})

	return nil
}

func (l *InvalidationListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}

// consume declara la cola, la liga al exchange y arranca el bucle de consumo
func (l *InvalidationListener) consume(ctx context.Context, queueName string, process func(context.Context, amqp.Delivery) error) error {
	queue, err := l.channel.QueueDeclare(
		queueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}
	err = l.channel.QueueBind(
		queue.Name,
		queue.Name,
		l.cfg.RabbitMQ.Exchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					l.logger.Warn("rabbitmq.consumer.channel_closed", out.LogFields{
						"queue": queueName,
					})
					return
				}
				if err := process(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

// Ejemplo de routingKey:
// admin.schedule-engine.assignment.v1.invalidate
// admin.schedule-engine.holiday.v1.invalidate
// admin.schedule-engine._all_.v1.invalidate
func (l *InvalidationListener) parseInvalidationRoutingKey(msg amqp.Delivery) (InvalidationRoutingKey, error) {
	routingKey := msg.RoutingKey
	parts := strings.Split(routingKey, ".")

	if len(parts) < 5 {
		return InvalidationRoutingKey{}, fmt.Errorf("invalid routing key: %s", routingKey)
	}

	return InvalidationRoutingKey{
		Source:       parts[0],
		Receiver:     parts[1],
		ResourceType: InvalidationResourceType(parts[2]),
		Type:         InvalidationType(parts[4]),
	}, nil
}
