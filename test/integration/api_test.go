//go:build integration

package integration

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"flamesblue/pkg/client"
	"flamesblue/pkg/model"
	"flamesblue/test/integration/testutil"
)

// These tests run against a live server started with OTP_ECHO_CODE=true and
// pointed at TEST_MONGO_URI / TEST_DB_NAME.

func setup(t *testing.T) (*testutil.MongoHelper, *client.HttpClient) {
	t.Helper()
	env := testutil.NewTestEnv()
	mongo, api := env.Setup(t)
	t.Cleanup(func() { env.Cleanup(t, mongo) })
	return mongo, api
}

func uniquePhone() string {
	return fmt.Sprintf("+1555%07d", time.Now().UnixNano()%10000000)
}

func sendOtp(t *testing.T, api *client.HttpClient, phone string) string {
	t.Helper()
	resp, err := api.POST(context.Background(), "/auth/send-otp", map[string]string{"phone": phone})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	var body model.SendOtpResponse
	require.NoError(t, resp.DecodeJSON(&body))
	require.Len(t, body.Code, model.OtpCodeLength)
	return body.Code
}

func verifyOtp(t *testing.T, api *client.HttpClient, phone, code string) *client.Response {
	t.Helper()
	resp, err := api.POST(context.Background(), "/auth/verify-otp", map[string]string{"phone": phone, "code": code})
	require.NoError(t, err)
	return resp
}

func TestDiagnostics(t *testing.T) {
	_, api := setup(t)

	resp, err := api.GET(context.Background(), "/test")
	require.NoError(t, err)

	var diag model.Diagnostics
	require.NoError(t, resp.DecodeJSON(&diag))
	assert.Equal(t, "✅ Connected & Working", diag.Database)
	assert.Equal(t, "Connected", diag.ConnectionStatus)
}

func TestOtpFlow(t *testing.T) {
	mongo, api := setup(t)
	phone := uniquePhone()

	code := sendOtp(t, api, phone)

	resp := verifyOtp(t, api, phone, code)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))
	assert.JSONEq(t, `{"status":"verified"}`, string(resp.Body))

	resp = verifyOtp(t, api, phone, code)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), mongo.Count(t, model.CollectionUser, bson.M{"phone": phone}))

	resp = verifyOtp(t, api, phone, "000000")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid OTP", client.GetErrorMessage(resp))
}

func TestOtpConcurrentVerify(t *testing.T) {
	mongo, api := setup(t)
	phone := uniquePhone()
	code := sendOtp(t, api, phone)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := api.POST(context.Background(), "/auth/verify-otp", map[string]string{"phone": phone, "code": code})
			if assert.NoError(t, err) {
				assert.Equal(t, http.StatusOK, resp.StatusCode)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), mongo.Count(t, model.CollectionUser, bson.M{"phone": phone}))
}

func TestVehicles(t *testing.T) {
	_, api := setup(t)
	ctx := context.Background()

	ids := map[string]bool{}
	for i := 0; i < 5; i++ {
		resp, err := api.POST(ctx, "/vehicles", map[string]any{
			"owner_id":      "owner-1",
			"type":          "bike",
			"title":         fmt.Sprintf("Bike %d", i),
			"price_per_day": i * 10,
		})
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

		var created struct {
			ID string `json:"id"`
		}
		require.NoError(t, resp.DecodeJSON(&created))
		ids[created.ID] = true
	}
	assert.Len(t, ids, 5)

	resp, err := api.POST(ctx, "/vehicles", map[string]any{
		"owner_id": "owner-1", "type": "car", "title": "Bad", "price_per_day": -1,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp, err = api.GET(ctx, "/vehicles")
	require.NoError(t, err)
	var vehicles []model.Vehicle
	require.NoError(t, resp.DecodeJSON(&vehicles))
	require.Len(t, vehicles, 5)
	for _, v := range vehicles {
		assert.True(t, ids[v.ID])
	}
}

func TestBookingsAndChat(t *testing.T) {
	mongo, api := setup(t)
	ctx := context.Background()

	resp, err := api.POST(ctx, "/bookings", map[string]any{
		"user_id": "u1", "vehicle_id": "v1", "start_date": "2025-06-01", "end_date": "2025-06-02",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(resp.Body))

	resp, err = api.GET(ctx, "/bookings")
	require.NoError(t, err)
	var bookings []model.Booking
	require.NoError(t, resp.DecodeJSON(&bookings))
	assert.Len(t, bookings, 1)

	resp, err = api.POST(ctx, "/support/chat", map[string]string{"user_id": "u1", "message": "hello"})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(1), mongo.Count(t, model.CollectionSupportMessage, bson.M{"role": "user"}))
	assert.Equal(t, int64(1), mongo.Count(t, model.CollectionSupportMessage, bson.M{"role": "bot"}))
}
