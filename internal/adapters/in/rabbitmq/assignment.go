package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/Gusi-ui/web-adiministra-sub000/internal/core/ports/out"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

type AssignmentMessage struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
}

func (l *InvalidationListener) startAssignmentQueue(ctx context.Context) error {
	return l.consume(ctx, l.cfg.RabbitMQ.AssignmentQueue, l.processAssignmentMessage)
}

func (l *InvalidationListener) processAssignmentMessage(ctx context.Context, msg amqp.Delivery) error {
	routingKey, err := l.parseInvalidationRoutingKey(msg)
	if err != nil {
		return err
	}

	if routingKey.ResourceType != InvalidationResourceTypeAssignment {
		return nil
	}

	var msgJson AssignmentMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("assignment.message.received", out.LogFields{
		"msg":       msgJson,
		"msgString": string(msg.Body),
	})

	if routingKey.Type == InvalidationTypeInvalidate {
		go l.useCase.InvalidateAssignment(ctx, msgJson.AssignmentID)

		l.logger.Info("assignment.message.invalidated", out.LogFields{
			"assignment_id": msgJson.AssignmentID,
		})
	}

	return nil
}
