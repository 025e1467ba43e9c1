package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"waitline/config"
	"waitline/internal/domain/repository"
	mockRepo "waitline/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

// newDiscardLogger returns a logger that swallows all output, keeping test
// logs quiet.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedNow is the timestamp fake clocks report in these tests.
var fixedNow = time.Date(2016, 4, 12, 9, 30, 0, 0, time.UTC)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Share.LandingBaseURL = "https://example.com/line"

	return cfg
}

// expectTransaction wires a transaction manager mock so Execute runs its
// callback against the given repository factory, mirroring the real
// manager's commit path.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	t.Helper()

	txManager.EXPECT().
		Execute(context.Background(), mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
