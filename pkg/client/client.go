package client

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"flamesblue/pkg/logger"
)

// Connection states reported by State. StateError is never returned by
// State; diagnostics report it when a connected store fails a query.
const (
	StateNotConfigured = "not_configured"
	StateNotConnected  = "not_connected"
	StateConnected     = "connected"
	StateError         = "error"
)

var ErrNotConfigured = errors.New("mongo connection not configured")

// Client owns the process-wide Mongo connection. A failed connect leaves
// Mongo nil and keeps the error so callers can degrade instead of exiting.
type Client struct {
	mu       sync.RWMutex
	Mongo    *mongo.Client
	mongoErr error
}

func NewClient() *Client {
	return &Client{mongoErr: ErrNotConfigured}
}

func (c *Client) SetMongo(log *logger.Logger, mongoURI string, mongoConnTimeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mongoURI == "" {
		c.mongoErr = ErrNotConfigured
		log.Warn("DATABASE_URL not set, starting without a document store")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), mongoConnTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		c.mongoErr = err
		log.Error("Failed to connect to MongoDB, continuing degraded", "error", err)
		return
	}

	// The driver reconnects lazily, so a failed ping keeps the client around
	// and only logs; the diagnostic endpoint surfaces the live state.
	if err := client.Ping(ctx, nil); err != nil {
		log.Warn("MongoDB ping failed at startup", "error", err)
	} else {
		log.Info("Successfully connected to MongoDB")
	}

	c.Mongo = client
	c.mongoErr = nil
}

// SetMongoClient installs an already connected client.
func (c *Client) SetMongoClient(client *mongo.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Mongo = client
	c.mongoErr = nil
}

func (c *Client) MongoClient() (*mongo.Client, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Mongo == nil {
		return nil, c.mongoErr
	}
	return c.Mongo, nil
}

func (c *Client) State() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch {
	case c.Mongo != nil:
		return StateConnected
	case errors.Is(c.mongoErr, ErrNotConfigured):
		return StateNotConfigured
	default:
		return StateNotConnected
	}
}

func (c *Client) GracefulShutdown(log *logger.Logger, timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.Mongo == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := c.Mongo.Disconnect(ctx); err != nil {
		log.Error("Failed to disconnect from MongoDB", "error", err)
		return
	}
	c.Mongo = nil
	c.mongoErr = ErrNotConfigured
	log.Info("Disconnected from MongoDB")
}
