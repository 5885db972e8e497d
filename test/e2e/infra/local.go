package infra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/trustification/spog-ui-e2e/internal/handlers"
	"github.com/trustification/spog-ui-e2e/internal/server"
	"github.com/trustification/spog-ui-e2e/internal/services"
	"github.com/trustification/spog-ui-e2e/internal/store"
	"github.com/trustification/spog-ui-e2e/internal/store/migrations"
	"github.com/trustification/spog-ui-e2e/pkg/sso"
)

// LocalInfraManager runs the SSO realm and the ingestion/search services
// in-process. The UI is still expected to run elsewhere.
type LocalInfraManager struct {
	realm Realm

	sso    *SSOServer
	db     *sql.DB
	srv    *server.Server
	cancel context.CancelFunc
	done   chan error
}

func NewLocalInfraManager(realm Realm) *LocalInfraManager {
	return &LocalInfraManager{realm: realm}
}

func (l *LocalInfraManager) StartSSO() error {
	s, err := NewSSOServer("127.0.0.1:0", l.realm)
	if err != nil {
		return err
	}
	l.sso = s
	return nil
}

func (l *LocalInfraManager) StopSSO() error {
	if l.sso == nil {
		return nil
	}
	err := l.sso.Stop()
	l.sso = nil
	return err
}

// StartServices needs the SSO realm: tokens are verified against its key.
func (l *LocalInfraManager) StartServices() error {
	if l.sso == nil {
		return errors.New("mock SSO realm not started")
	}

	db, err := store.NewDB(":memory:")
	if err != nil {
		return err
	}
	if err := migrations.Run(context.Background(), db); err != nil {
		db.Close()
		return fmt.Errorf("failed to migrate mock store: %w", err)
	}

	h := handlers.New(
		services.NewDocumentService(store.NewStore(db)),
		sso.NewVerifier(l.sso.PublicKey(), l.sso.Issuer()),
	)
	srv, err := server.NewServer("127.0.0.1:0", func(router *gin.RouterGroup) {
		handlers.RegisterHandlers(router, h)
	})
	if err != nil {
		db.Close()
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	l.db, l.srv, l.cancel, l.done = db, srv, cancel, make(chan error, 1)
	go func() {
		l.done <- srv.Start(ctx)
	}()

	return nil
}

func (l *LocalInfraManager) StopServices() error {
	if l.srv == nil {
		return nil
	}
	l.cancel()
	err := <-l.done
	if cerr := l.db.Close(); cerr != nil {
		zap.S().Named("mock_services").Warnw("failed to close mock store", "error", cerr)
	}
	l.srv, l.db = nil, nil
	return err
}

// Endpoints points every service at the local listeners. Empty values mean
// the component is not running.
func (l *LocalInfraManager) Endpoints() Endpoints {
	var e Endpoints
	if l.sso != nil {
		e.SSO = l.sso.BaseURL()
	}
	if l.srv != nil {
		e.AdvisoryURL = l.srv.URL()
		e.SBOMURL = l.srv.URL()
		e.SpogAPIURL = l.srv.URL()
	}
	return e
}
