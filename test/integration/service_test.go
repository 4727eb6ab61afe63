//go:build integration

package integration

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/exercises-service/internal/adapters/clients"
	"github.com/jsamuelsen/exercises-service/internal/adapters/clients/acl"
	"github.com/jsamuelsen/exercises-service/internal/adapters/filestore"
	apphttp "github.com/jsamuelsen/exercises-service/internal/adapters/http"
	"github.com/jsamuelsen/exercises-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/exercises-service/internal/app"
	"github.com/jsamuelsen/exercises-service/internal/platform/config"
	"github.com/jsamuelsen/exercises-service/internal/platform/telemetry"
	"github.com/jsamuelsen/exercises-service/internal/ports"
)

// fixtures are written under the exercises root of every in-process service.
var fixtures = map[string]string{
	"script.py":        "# header\n\nimport os\n  # indented comment\nprint(os.name)\n",
	"notes/readme.txt": "first\n\n   \nsecond\n#third\n",
	"empty.txt":        "",
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// startService runs the fully wired service on a loopback listener and
// returns its base URL.
func startService(tb testing.TB, auth *config.AuthConfig) string {
	tb.Helper()
	gin.SetMode(gin.TestMode)

	root := tb.TempDir()
	for name, content := range fixtures {
		path := filepath.Join(root, name)
		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0o600))
	}

	store, err := filestore.New(root, discardLogger())
	require.NoError(tb, err)
	tb.Cleanup(func() { _ = store.Close() })

	registry := ports.NewHealthRegistry()
	require.NoError(tb, registry.Register(store))

	metrics, err := telemetry.NewExerciseMetrics(prometheus.NewRegistry())
	require.NoError(tb, err)
	exec := app.NewExecutor(discardLogger(), metrics)

	quaternions := app.NewQuaternionService(app.QuaternionServiceConfig{
		Executor: exec,
		MaxBatch: config.DefaultExercisesMaxBatch,
		Logger:   discardLogger(),
	})
	exercises := app.NewExerciseService(app.ExerciseServiceConfig{
		Files:     store,
		Executor:  exec,
		MaxPowers: config.DefaultExercisesMaxPowers,
		MaxFiles:  config.DefaultExercisesMaxFiles,
		Logger:    discardLogger(),
	})

	if auth == nil {
		auth = &config.AuthConfig{}
	}

	engine := gin.New()
	apphttp.SetupRouter(engine, apphttp.NewDefaultRouterConfig(
		&config.AppConfig{Name: "exercises-service-it", Version: "it", Environment: "test"},
		auth,
		handlers.NewHealthHandler(registry, handlers.NewBuildInfo("it", "none", "now")),
		handlers.NewQuaternionHandler(quaternions),
		handlers.NewExerciseHandler(exercises),
	))

	server := httptest.NewServer(engine)
	tb.Cleanup(server.Close)
	return server.URL
}

// testClientConfig returns a client config with fast retries.
func testClientConfig(baseURL string) *clients.Config {
	return &clients.Config{
		BaseURL:     baseURL,
		ServiceName: "calculator",
		Timeout:     5 * time.Second,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
			JitterFactor:    0.1,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       200 * time.Millisecond,
			HalfOpenLimit: 1,
		},
		Logger: discardLogger(),
	}
}

func newCalculator(tb testing.TB, cfg *clients.Config) *acl.QuaternionClient {
	tb.Helper()

	client, err := clients.New(cfg)
	require.NoError(tb, err)
	return acl.NewQuaternionClient(client, discardLogger())
}
