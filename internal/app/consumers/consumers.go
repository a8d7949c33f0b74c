package consumers

import (
	"accounts/internal/app/deps"
	"accounts/internal/app/services"
	dl "accounts/internal/core/domain/logging"
	resetlinkrequested "accounts/internal/rabbitmq/consumers/reset_link_requested"
	"context"
)

func initResetLinkRequestedConsumer(deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqResetLinkQueue
	resetLinkRequestedConsumer := resetlinkrequested.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		services.SendResetLink,
	)
	if err = resetLinkRequestedConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	shutdownResetLinkRequestedConsumer := initResetLinkRequestedConsumer(deps, services)

	return func() {
		shutdownResetLinkRequestedConsumer()
	}
}
