package main

import (
	authHandler "flamesblue/internal/auth/handler"
	authRepository "flamesblue/internal/auth/repository"
	authService "flamesblue/internal/auth/service"
	bookingHandler "flamesblue/internal/bookings/handler"
	bookingRepository "flamesblue/internal/bookings/repository"
	bookingService "flamesblue/internal/bookings/service"
	supportHandler "flamesblue/internal/support/handler"
	supportRepository "flamesblue/internal/support/repository"
	supportService "flamesblue/internal/support/service"
	systemHandler "flamesblue/internal/system/handler"
	systemService "flamesblue/internal/system/service"
	vehicleHandler "flamesblue/internal/vehicles/handler"
	vehicleRepository "flamesblue/internal/vehicles/repository"
	vehicleService "flamesblue/internal/vehicles/service"
	"flamesblue/pkg/app"
	"flamesblue/pkg/config"
	"flamesblue/pkg/kafka"
	kafka_config "flamesblue/pkg/kafka/config"
	kafka_middleware "flamesblue/pkg/kafka/middleware"
	"flamesblue/pkg/store"
	"flamesblue/pkg/validator"
)

const ServiceName = "flamesblue-api"

func main() {
	cfg := config.Load(ServiceName)
	cfg.SetMongo()

	cfg.Log.Info("Starting Flames.Blue API")

	st := store.NewMongoStore(store.MongoConfig{
		Client:       cfg.Client,
		DatabaseName: cfg.MongoDatabaseName,
		ReadTimeout:  cfg.MongoReadTimeout,
		WriteTimeout: cfg.MongoWriteTimeout,
	})
	recordValidator := validator.NewRecordValidator(cfg.Log)

	serverApp := app.NewApplication(cfg)
	codeSender := initCodeSender(cfg, serverApp)

	serverApp.SetApp(
		systemHandler.NewSystemHandler(
			systemService.NewSystemService(st, cfg.Client, systemService.Settings{
				DatabaseURLSet:  cfg.MongoURI != "",
				DatabaseNameSet: cfg.MongoDatabaseName != "",
			}, cfg.Log),
			cfg.Log,
		),
		authHandler.NewAuthHandler(
			authService.NewOtpService(
				authRepository.NewOtpRepository(st),
				authRepository.NewUserRepository(st),
				codeSender,
				recordValidator,
				cfg.Log,
				cfg.OtpEchoCode,
			),
			cfg.Log,
		),
		vehicleHandler.NewVehicleHandler(
			vehicleService.NewVehicleService(vehicleRepository.NewVehicleRepository(st), recordValidator, cfg.Log),
			cfg.Log,
		),
		bookingHandler.NewBookingHandler(
			bookingService.NewBookingService(bookingRepository.NewBookingRepository(st), recordValidator, cfg.Log),
			cfg.Log,
		),
		supportHandler.NewChatHandler(
			supportService.NewChatService(supportRepository.NewMessageRepository(st), recordValidator, cfg.Log),
			cfg.Log,
		),
	)
	serverApp.Run()
}

// initCodeSender publishes OTP events when Kafka is configured and falls
// back to logging otherwise.
func initCodeSender(cfg *config.Config, serverApp *app.Application) authService.CodeSender {
	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	if !kafkaCfg.Enabled() {
		return authService.NewLogCodeSender(cfg.Log)
	}

	producer, err := kafka.NewProducer(kafkaCfg, kafkaCfg.OtpTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafka_middleware.LoggingProducerMiddleware(cfg.Log))
	serverApp.OnShutdown("kafka-producer", producer.Close)

	cfg.Log.Info("OTP delivery via Kafka enabled", "topic", kafkaCfg.OtpTopic)
	return authService.NewKafkaCodeSender(producer, ServiceName)
}
