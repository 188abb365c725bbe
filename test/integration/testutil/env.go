package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"flamesblue/pkg/client"
)

const (
	DefaultServerURL    = "http://localhost:8000"
	DefaultReadyTimeout = 30 * time.Second
)

type TestEnv struct {
	MongoURI     string
	DatabaseName string
	ServerURL    string
}

// NewTestEnv reads the target server and database. The database must be
// the one the server under test writes to.
func NewTestEnv() *TestEnv {
	return &TestEnv{
		MongoURI:     getEnv("TEST_MONGO_URI", DefaultMongoURI),
		DatabaseName: getEnv("TEST_DB_NAME", DefaultDatabaseName),
		ServerURL:    getEnv("TEST_SERVER_URL", DefaultServerURL),
	}
}

func (e *TestEnv) Setup(t *testing.T) (*MongoHelper, *client.HttpClient) {
	t.Helper()

	mongo := NewMongoHelper(t, e.MongoURI, e.DatabaseName)
	mongo.CleanDatabase(t)

	api := client.NewHttpClient(e.ServerURL)
	if err := api.WaitForReady(context.Background(), DefaultReadyTimeout); err != nil {
		t.Fatalf("server at %s not ready: %v", e.ServerURL, err)
	}

	return mongo, api
}

func (e *TestEnv) Cleanup(t *testing.T, mongo *MongoHelper) {
	t.Helper()

	if mongo != nil {
		mongo.CleanDatabase(t)
		mongo.Close(t)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
