package kafka

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageBuilder_Build(t *testing.T) {
	payload := map[string]string{"phone": "+12125551234"}

	msg, err := NewMessage().
		WithKey("+12125551234").
		WithValue(payload).
		WithEventType("otp.requested").
		WithSource("api").
		WithCorrelationID("req-1").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "+12125551234", msg.Key)
	assert.JSONEq(t, `{"phone":"+12125551234"}`, string(msg.Value))
	assert.Equal(t, "otp.requested", msg.GetEventType())
	assert.Equal(t, "req-1", msg.GetCorrelationID())
	assert.Equal(t, "api", msg.Headers[HeaderSource])

	_, err = uuid.Parse(msg.GetEventID())
	assert.NoError(t, err)

	_, err = time.Parse(time.RFC3339, msg.Headers[HeaderTimestamp])
	assert.NoError(t, err)
}

func TestMessageBuilder_EmptyCorrelationIDIsOmitted(t *testing.T) {
	msg, err := NewMessage().WithKey("k").WithValue(1).WithCorrelationID("").Build()
	require.NoError(t, err)

	_, ok := msg.Headers[HeaderCorrelationID]
	assert.False(t, ok)
}

func TestMessageBuilder_UnencodableValue(t *testing.T) {
	_, err := NewMessage().WithKey("k").WithValue(make(chan int)).Build()
	assert.ErrorIs(t, err, ErrInvalidMessage)
}

func TestMessage_RetryCount(t *testing.T) {
	msg := Message{Headers: map[string]string{}}
	assert.Equal(t, 0, msg.GetRetryCount())

	for i := 0; i < 12; i++ {
		msg.IncrementRetryCount()
	}
	assert.Equal(t, 12, msg.GetRetryCount())
	assert.Equal(t, "12", msg.Headers[HeaderRetryCount])
}

func TestMessage_DecodeValueIsPermanentOnBadPayload(t *testing.T) {
	msg := Message{Value: []byte("{not json")}

	var out map[string]string
	err := msg.DecodeValue(&out)

	require.Error(t, err)
	assert.Equal(t, ErrorTypePermanent, ClassifyError(err))
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"nil", nil, ErrorTypeUnknown},
		{"explicit transient", NewTransientError("sms gateway", errors.New("503")), ErrorTypeTransient},
		{"explicit permanent", NewPermanentError("bad number", nil), ErrorTypePermanent},
		{"network timeout", errors.New("dial tcp: i/o timeout"), ErrorTypeTransient},
		{"connection refused", errors.New("Connection Refused by peer"), ErrorTypeTransient},
		{"unknown", errors.New("invalid phone number"), ErrorTypePermanent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyError(tt.err))
		})
	}
}

func TestShouldRetry(t *testing.T) {
	transient := NewTransientError("flaky", nil)

	assert.True(t, ShouldRetry(transient, 0, 3))
	assert.True(t, ShouldRetry(transient, 2, 3))
	assert.False(t, ShouldRetry(transient, 3, 3))
	assert.False(t, ShouldRetry(NewPermanentError("bad", nil), 0, 3))
	assert.False(t, ShouldRetry(nil, 0, 3))
}
