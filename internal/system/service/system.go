package service

import (
	"context"

	"flamesblue/pkg/client"
	apperrors "flamesblue/pkg/errors"
	"flamesblue/pkg/logger"
	"flamesblue/pkg/model"
	"flamesblue/pkg/store"
)

const (
	APIName = "Flames.Blue API"

	statusRunning          = "✅ Running"
	statusSet              = "✅ Set"
	statusNotSet           = "❌ Not Set"
	statusAvailable        = "✅ Available"
	statusWorking          = "✅ Connected & Working"
	statusNotAvailable     = "❌ Not Available"
	statusConnectedError   = "⚠️ Connected but error: "
	connectionConnected    = "Connected"
	connectionNotConnected = "Not Connected"

	maxErrorRunes = 80
)

// ConnectionStater reports the document store connection state, one of the
// client.State* values.
type ConnectionStater interface {
	State() string
}

// Settings records which connection variables were supplied. Values are
// never echoed back.
type Settings struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

type SystemService interface {
	Root() model.RootResponse
	Diagnostics(ctx context.Context) model.Diagnostics
	Ready(ctx context.Context) error
}

type systemService struct {
	store    store.Store
	conn     ConnectionStater
	settings Settings
	log      *logger.Logger
}

func NewSystemService(st store.Store, conn ConnectionStater, settings Settings, log *logger.Logger) SystemService {
	return &systemService{
		store:    st,
		conn:     conn,
		settings: settings,
		log:      log,
	}
}

func (s *systemService) Root() model.RootResponse {
	return model.RootResponse{Name: APIName, Status: "ok"}
}

// Diagnostics never fails: store problems are reported in the body.
func (s *systemService) Diagnostics(ctx context.Context) model.Diagnostics {
	state := s.conn.State()
	diag := model.Diagnostics{
		Backend:          statusRunning,
		Database:         statusNotAvailable,
		DatabaseURL:      setOrNot(s.settings.DatabaseURLSet),
		DatabaseName:     setOrNot(s.settings.DatabaseNameSet),
		ConnectionStatus: connectionNotConnected,
		State:            state,
		Collections:      []string{},
	}

	if state != client.StateConnected {
		return diag
	}

	diag.Database = statusAvailable
	diag.ConnectionStatus = connectionConnected

	names, err := s.store.CollectionNames(ctx)
	if err != nil {
		s.log.Warn("Diagnostic collection listing failed", "error", err)
		diag.Database = statusConnectedError + truncate(err.Error(), maxErrorRunes)
		diag.State = client.StateError
		return diag
	}

	diag.Database = statusWorking
	if names != nil {
		diag.Collections = names
	}
	return diag
}

func (s *systemService) Ready(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		s.log.Warn("Readiness check failed", "error", err)
		return apperrors.Unavailable("Document store", err)
	}
	return nil
}

func setOrNot(set bool) string {
	if set {
		return statusSet
	}
	return statusNotSet
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
