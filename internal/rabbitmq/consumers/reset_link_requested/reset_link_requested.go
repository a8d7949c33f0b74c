package resetlinkrequested

import (
	"accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/reset"
	"accounts/internal/core/services"
	sendresetlink "accounts/internal/core/services/send_reset_link"
	"accounts/internal/rabbitmq"
	"accounts/internal/rabbitmq/schema"
	"context"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[sendresetlink.Input, sendresetlink.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[sendresetlink.Input, sendresetlink.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			link := &schema.ResetLink{}
			if err := link.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal reset link message.",
					logging.Entry("err", err),
				)
				c.Ack(delivery)
				continue
			}

			_, err := c.service.Run(
				context.Background(),
				sendresetlink.Input{
					Email: common.Email(link.Email),
					Token: reset.Token(link.Token),
				},
			)
			if err != nil {
				c.log.Error(
					context.Background(),
					"Could not send reset link, service returned an error.",
					logging.Entry("email", link.Email),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
