package service

import (
	"context"
	"time"

	"flamesblue/pkg/kafka"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/middleware"
	"flamesblue/pkg/model"
)

// CodeSender delivers a generated code to the phone it was issued for.
type CodeSender interface {
	SendCode(ctx context.Context, phone, code string) error
}

// KafkaCodeSender publishes an otp.requested event; the notifier process
// turns it into an SMS.
type KafkaCodeSender struct {
	publisher kafka.Publisher
	source    string
	now       func() time.Time
}

func NewKafkaCodeSender(publisher kafka.Publisher, source string) *KafkaCodeSender {
	return &KafkaCodeSender{
		publisher: publisher,
		source:    source,
		now:       time.Now,
	}
}

func (s *KafkaCodeSender) SendCode(ctx context.Context, phone, code string) error {
	msg, err := kafka.NewMessage().
		WithKey(phone).
		WithValue(model.OtpRequestedEvent{
			Phone:       phone,
			Code:        code,
			RequestedAt: model.Timestamp(s.now()),
		}).
		WithEventType(model.EventTypeOtpRequested).
		WithCorrelationID(middleware.GetRequestID(ctx)).
		WithSource(s.source).
		Build()
	if err != nil {
		return err
	}
	return s.publisher.Publish(ctx, msg)
}

// LogCodeSender only records that a code was issued. Used when no broker is
// configured.
type LogCodeSender struct {
	log *logger.Logger
}

func NewLogCodeSender(log *logger.Logger) *LogCodeSender {
	return &LogCodeSender{log: log}
}

func (s *LogCodeSender) SendCode(ctx context.Context, phone, code string) error {
	s.log.Debug("OTP delivery skipped, no channel configured",
		"request_id", middleware.GetRequestID(ctx),
	)
	return nil
}
