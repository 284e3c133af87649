package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"cafe/config"
	"cafe/internal/domain/repository"
	mockRepo "cafe/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{BcryptCost: 4},
		Storage: &config.StorageConfig{
			BucketURL:     "mem://",
			PublicBaseURL: "https://files.example.com",
		},
		PreOrder: &config.PreOrderConfig{
			MaxProofBytes:     4 << 20,
			AllowedProofTypes: []string{"image/jpeg", "image/jpg", "image/png", "image/webp"},
			TimeZone:          "UTC",
		},
		Sales: &config.SalesConfig{LowStockThreshold: 5},
	}
}

// expectTransaction runs every transaction body against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// receiveWithin reads one value from ch or fails the test.
func receiveWithin[T any](t *testing.T, ch <-chan T, timeout time.Duration) (T, bool) {
	t.Helper()

	select {
	case v, ok := <-ch:
		return v, ok
	case <-time.After(timeout):
		t.Fatalf("nothing received within %s", timeout)

		var zero T

		return zero, false
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
