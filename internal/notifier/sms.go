package notifier

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"flamesblue/pkg/kafka"
	"flamesblue/pkg/logger"
)

// SMSSender delivers a text message to a phone number.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	From       string
}

type TwilioSender struct {
	client *twilio.RestClient
	from   string
	log    *logger.Logger
}

func NewTwilioSender(cfg TwilioConfig, log *logger.Logger) (*TwilioSender, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.From == "" {
		return nil, fmt.Errorf("missing Twilio credentials")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &TwilioSender{
		client: client,
		from:   cfg.From,
		log:    log,
	}, nil
}

// SendSMS does not honour ctx cancellation; the Twilio client has no
// context-aware call.
func (t *TwilioSender) SendSMS(ctx context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(to)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return classifyTwilioError(err)
	}

	if resp.ErrorCode != nil && *resp.ErrorCode != 0 {
		msg := ""
		if resp.ErrorMessage != nil {
			msg = *resp.ErrorMessage
		}
		return kafka.NewPermanentError(fmt.Sprintf("twilio error %d: %s", *resp.ErrorCode, msg), nil)
	}

	if resp.Sid != nil {
		t.log.Info("SMS sent", "sid", *resp.Sid)
	}
	return nil
}

// classifyTwilioError marks client errors (bad number, unverified sender)
// as permanent so the consumer does not retry them. Throttling and server
// errors stay retryable.
func classifyTwilioError(err error) error {
	var restErr *twilioclient.TwilioRestError
	if errors.As(err, &restErr) {
		if restErr.Status >= http.StatusInternalServerError || restErr.Status == http.StatusTooManyRequests {
			return kafka.NewTransientError("twilio unavailable", err)
		}
		return kafka.NewPermanentError("twilio rejected message", err)
	}
	return kafka.NewTransientError("twilio request failed", err)
}
