package deps

import (
	"accounts/internal/config"
	dl "accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/reset"
	duow "accounts/internal/core/domain/unit_of_work"
	"accounts/internal/core/domain/user"
	dbreset "accounts/internal/db/reset"
	uow "accounts/internal/db/unit_of_work"
	dbuser "accounts/internal/db/user"
	accesstoken "accounts/internal/implementations/access_token"
	"accounts/internal/implementations/email"
	"accounts/internal/implementations/logging"
	passwordhasher "accounts/internal/implementations/password_hasher"
	resettokengenerator "accounts/internal/implementations/reset_token_generator"
	"accounts/internal/rabbitmq"
	resetlink "accounts/internal/rabbitmq/publishers/reset_link"
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UnitOfWork            duow.UnitOfWork
	UserRepository        user.UserRepository
	ResetRecordRepository reset.Repository

	EmailSender *email.Sender

	PasswordHasher       user.PasswordHasher
	AccessTokenGenerator user.AccessTokenGenerator
	ResetTokenGenerator  reset.TokenGenerator
	ResetTokenTTL        time.Duration

	ResetLinkPublisher reset.LinkSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.ResetRecordRepository = dbreset.NewPgxRepository(deps.DB)

	deps.EmailSender = email.NewSender(
		deps.AwsConfig,
		deps.Config.AwsEmailSender,
		deps.Config.AwsEmailPasswordResetTemplate,
		deps.Config.FrontendBaseURL,
	)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.AccessTokenGenerator = accesstoken.NewJWT(
		deps.Config.Secret,
		time.Duration(deps.Config.AccessTokenValidDurationHrs)*time.Hour,
		deps.Now,
	)
	deps.ResetTokenGenerator = resettokengenerator.NewGenerator()
	deps.ResetTokenTTL = time.Duration(deps.Config.PasswordResetExpireMinutes) * time.Minute

	closeResetLinkPublisher := deps.initRabbitmqResetLinkPublisher()

	return deps, func() {
		closeFuncs := []func(){
			closeResetLinkPublisher,
			closeRabbitmqConn,
			closePgxPool,
			closeLogger,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqResetLinkPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqResetLinkQueue
	if _, err = rabbitmqChannel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}
	if exchange := deps.Config.RabbitmqResetLinkExchange; exchange != "" {
		err = rabbitmqChannel.ExchangeDeclare(exchange, "direct", true, false, false, false, nil)
		if err != nil {
			deps.Logger.Error(context.Background(), "Could not create RabbitMQ exchange.", dl.Entry("err", err))
			panic(err)
		}
		if err = rabbitmqChannel.QueueBind(queue, queue, exchange, false, nil); err != nil {
			deps.Logger.Error(context.Background(), "Could not bind queue to RabbitMQ exchange.", dl.Entry("err", err))
			panic(err)
		}
	}

	deps.ResetLinkPublisher = resetlink.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqResetLinkExchange,
		queue,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down reset link publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Reset link publisher shut down.")
	}
}
