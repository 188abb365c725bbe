package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"flamesblue/internal/notifier"
	"flamesblue/pkg/config"
	"flamesblue/pkg/kafka"
	kafka_config "flamesblue/pkg/kafka/config"
	kafka_middleware "flamesblue/pkg/kafka/middleware"
)

const ServiceName = "flamesblue-notifier"

func main() {
	cfg := config.Load(ServiceName)

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log)
	if !kafkaCfg.Enabled() {
		cfg.Log.Fatal("KAFKA_BROKERS is required for the notifier")
	}

	var sender notifier.SMSSender = notifier.NewLogSender(cfg.Log)
	if cfg.TwilioConfigured() {
		twilioSender, err := notifier.NewTwilioSender(notifier.TwilioConfig{
			AccountSID: cfg.TwilioAccountSID,
			AuthToken:  cfg.TwilioAuthToken,
			From:       cfg.TwilioSmsFrom,
		}, cfg.Log)
		if err != nil {
			cfg.Log.Fatal("Failed to create Twilio sender", "error", err)
		}
		sender = twilioSender
	} else {
		cfg.Log.Warn("Twilio not configured, OTP codes will not be delivered")
	}

	otpNotifier := notifier.NewOtpNotifier(sender, cfg.Log)
	consumer, err := kafka.NewConsumer(kafkaCfg, kafkaCfg.OtpTopic, kafkaCfg.ConsumerGroup, kafkaCfg.OtpDLQTopic, otpNotifier.Handle, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}

	counters := &kafka_middleware.Counters{}
	consumer.Use(kafka_middleware.LoggingConsumerMiddleware(cfg.Log))
	consumer.Use(counters.ConsumerMiddleware())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Starting OTP notifier", "topic", kafkaCfg.OtpTopic, "group", kafkaCfg.ConsumerGroup)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped with error", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close consumer", "error", err)
	}

	snapshot := counters.Snapshot()
	cfg.Log.Info("OTP notifier stopped",
		"processed", snapshot.Processed,
		"failed", snapshot.Failed,
		"avg_duration", snapshot.AvgDuration,
	)
}
