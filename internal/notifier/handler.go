package notifier

import (
	"context"
	"fmt"

	"flamesblue/pkg/kafka"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
)

const otpMessageFormat = "Your Flames.Blue verification code is %s"

type OtpNotifier struct {
	sender SMSSender
	log    *logger.Logger
}

func NewOtpNotifier(sender SMSSender, log *logger.Logger) *OtpNotifier {
	return &OtpNotifier{
		sender: sender,
		log:    log,
	}
}

// Handle sends the SMS for one otp.requested event. Events of other types
// are acknowledged and skipped.
func (n *OtpNotifier) Handle(ctx context.Context, msg kafka.Message) error {
	if eventType := msg.GetEventType(); eventType != model.EventTypeOtpRequested {
		n.log.Warn("Skipping unexpected event", "event_type", eventType, "event_id", msg.GetEventID())
		return nil
	}

	var event model.OtpRequestedEvent
	if err := msg.DecodeValue(&event); err != nil {
		return err
	}

	if event.Phone == "" || event.Code == "" {
		return kafka.NewPermanentError("otp event missing phone or code", kafka.ErrInvalidMessage)
	}

	if err := n.sender.SendSMS(ctx, event.Phone, fmt.Sprintf(otpMessageFormat, event.Code)); err != nil {
		return err
	}

	n.log.Info("OTP delivered",
		"event_id", msg.GetEventID(),
		"correlation_id", msg.GetCorrelationID(),
	)
	return nil
}

// LogSender replaces Twilio when no credentials are configured.
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendSMS(ctx context.Context, to, body string) error {
	s.log.Info("SMS delivery disabled, message dropped")
	return nil
}
