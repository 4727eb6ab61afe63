package acl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/exercises-service/internal/adapters/clients"
	"github.com/jsamuelsen/exercises-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/exercises-service/internal/app"
	"github.com/jsamuelsen/exercises-service/internal/domain"
)

func newQuaternionClient(t *testing.T, h http.Handler) *QuaternionClient {
	t.Helper()

	server := httptest.NewServer(h)
	t.Cleanup(server.Close)

	client, err := clients.New(testConfig(server.URL))
	require.NoError(t, err)

	return NewQuaternionClient(client, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// calculatorServer serves the real quaternion routes.
func calculatorServer() http.Handler {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/-/live", func(c *gin.Context) { c.Status(http.StatusOK) })

	h := handlers.NewQuaternionHandler(app.NewQuaternionService(app.QuaternionServiceConfig{
		MaxBatch: 8,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}))
	h.RegisterQuaternionRoutes(r.Group("/api/v1"))
	return r
}

func TestNewQuaternionClient_PanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() { NewQuaternionClient(nil, nil) })
}

func TestQuaternionClient_Evaluate(t *testing.T) {
	qc := newQuaternionClient(t, calculatorServer())

	tests := []struct {
		name     string
		op       domain.Operator
		operands []domain.Quaternion
		want     domain.Quaternion
	}{
		{"add", domain.OpAdd, []domain.Quaternion{domain.New(1, 2, 3, 4), domain.New(1, -2, 0, 1)}, domain.New(2, 0, 3, 5)},
		{"i times j", domain.OpMul, []domain.Quaternion{domain.I, domain.J}, domain.K},
		{"j times i", domain.OpMul, []domain.Quaternion{domain.J, domain.I}, domain.New(0, 0, 0, -1)},
		{"conjugate", domain.OpConjugate, []domain.Quaternion{domain.New(1, 2, 3, 4)}, domain.New(1, -2, -3, -4)},
		{"fractional", domain.OpAdd, []domain.Quaternion{domain.New(0.5, 0, 0, 0), domain.New(2, 0, 0, 1.25)}, domain.New(2.5, 0, 0, 1.25)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := qc.Evaluate(context.Background(), tt.op, tt.operands)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuaternionClient_EvaluateValidationError(t *testing.T) {
	qc := newQuaternionClient(t, calculatorServer())

	_, err := qc.Evaluate(context.Background(), domain.OpAdd, []domain.Quaternion{domain.One})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "got %v", err)
}

func TestQuaternionClient_EvaluateUnknownOperator(t *testing.T) {
	qc := newQuaternionClient(t, calculatorServer())

	_, err := qc.Evaluate(context.Background(), domain.Operator("div"), []domain.Quaternion{domain.One, domain.I})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "got %v", err)
}

func TestQuaternionClient_RejectsInconsistentResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing coefficients", `{"text":"1"}`},
		{"missing text", `{"coefficients":[1,0,0,0]}`},
		{"text mismatch", `{"coefficients":[1,2,0,0],"text":"1+3i"}`},
		{"not json", `<html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qc := newQuaternionClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))

			_, err := qc.Evaluate(context.Background(), domain.OpAdd, []domain.Quaternion{domain.One, domain.I})
			require.Error(t, err)
			assert.True(t, domain.IsUnavailable(err), "got %v", err)
		})
	}
}

func TestQuaternionClient_SendsWireOperands(t *testing.T) {
	var got evaluateRequest
	qc := newQuaternionClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, evaluatePath, r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"coefficients":[0,0,0,0],"text":"0"}`))
	}))

	_, err := qc.Evaluate(context.Background(), domain.OpMul, []domain.Quaternion{domain.New(1, 2, 3, 4), domain.Zero})
	require.NoError(t, err)

	assert.Equal(t, "mul", got.Op)
	assert.Equal(t, [][4]float64{{1, 2, 3, 4}, {0, 0, 0, 0}}, got.Operands)
}

func TestQuaternionClient_ServerErrorIsUnavailable(t *testing.T) {
	qc := newQuaternionClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := qc.Evaluate(context.Background(), domain.OpAdd, []domain.Quaternion{domain.One, domain.One})
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestQuaternionClient_HealthCheck(t *testing.T) {
	qc := newQuaternionClient(t, calculatorServer())

	assert.Equal(t, "calculator", qc.Name())
	assert.NoError(t, qc.Check(context.Background()))

	down := newQuaternionClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	assert.Error(t, down.Check(context.Background()))
}
