package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/exercises-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/exercises-service/internal/app"
	"github.com/jsamuelsen/exercises-service/internal/domain"
	"github.com/jsamuelsen/exercises-service/internal/mocks"
	"github.com/jsamuelsen/exercises-service/internal/ports"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func stubClient(t *testing.T, c ports.QuaternionClient) {
	t.Helper()

	orig := newClient
	newClient = func(*options, *slog.Logger) (ports.QuaternionClient, error) { return c, nil }
	t.Cleanup(func() { newClient = orig })
}

func TestParseQuaternion(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Quaternion
		wantErr bool
	}{
		{"1,2,3,4", domain.New(1, 2, 3, 4), false},
		{" 0, 1 ,0,0", domain.I, false},
		{"2.5", domain.New(2.5, 0, 0, 0), false},
		{"1,-1", domain.New(1, -1, 0, 0), false},
		{"1,2,3,4,5", domain.Quaternion{}, true},
		{"x,0,0,0", domain.Quaternion{}, true},
		{"", domain.Quaternion{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseQuaternion(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoot_PrintsResult(t *testing.T) {
	client := mocks.NewMockQuaternionClient(t)
	client.EXPECT().
		Evaluate(mock.Anything, domain.OpMul, []domain.Quaternion{domain.I, domain.J}).
		Return(domain.K, nil)
	stubClient(t, client)

	out, err := execute(t, "mul", "0,1,0,0", "0,0,1,0")
	require.NoError(t, err)
	assert.Equal(t, "k\n", out)
}

func TestRoot_PropagatesClientError(t *testing.T) {
	client := mocks.NewMockQuaternionClient(t)
	client.EXPECT().
		Evaluate(mock.Anything, domain.OpAdd, mock.Anything).
		Return(domain.Quaternion{}, domain.NewUnavailableError("calculator", "connection refused"))
	stubClient(t, client)

	_, err := execute(t, "add", "1", "2")
	require.Error(t, err)
	assert.True(t, domain.IsUnavailable(err))
}

func TestRoot_NegativeRealPartIsAnOperand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		op   domain.Operator
		want []domain.Quaternion
	}{
		{
			name: "conjugate",
			args: []string{"conjugate", "-1,2,3,4"},
			op:   domain.OpConjugate,
			want: []domain.Quaternion{domain.New(-1, 2, 3, 4)},
		},
		{
			name: "first of two",
			args: []string{"add", "-1,0,0,0", "1"},
			op:   domain.OpAdd,
			want: []domain.Quaternion{domain.New(-1, 0, 0, 0), domain.One},
		},
		{
			name: "flags before operator",
			args: []string{"-v", "--attempts", "2", "mul", "-2", "-1,-1"},
			op:   domain.OpMul,
			want: []domain.Quaternion{domain.New(-2, 0, 0, 0), domain.New(-1, -1, 0, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewMockQuaternionClient(t)
			client.EXPECT().
				Evaluate(mock.Anything, tt.op, tt.want).
				Return(domain.Zero, nil).
				Once()
			stubClient(t, client)

			out, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, "0\n", out)
		})
	}
}

func TestRoot_RejectsBadArguments(t *testing.T) {
	_, err := execute(t, "add")
	require.Error(t, err)

	_, err = execute(t, "add", "1,2,x")
	require.ErrorContains(t, err, `operand "1,2,x"`)
}

func TestRoot_AgainstService(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	svc := app.NewQuaternionService(app.QuaternionServiceConfig{
		MaxBatch: 8,
		Logger:   slog.New(slog.DiscardHandler),
	})
	handlers.NewQuaternionHandler(svc).RegisterQuaternionRoutes(engine.Group("/api/v1"))

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)
	t.Chdir(t.TempDir())

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"mul", "0,1,0,0", "0,0,1,0"}, "k\n"},
		{[]string{"mul", "0,0,1,0", "0,1,0,0"}, "-k\n"},
		{[]string{"add", "1,2,3,4", "1,-2,0,0"}, "2+3j+4k\n"},
		{[]string{"conjugate", "1,2,3,4"}, "1-2i-3j-4k\n"},
		{[]string{"add", "0", "0"}, "0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			out, err := execute(t, append([]string{"--url", server.URL, "--attempts", "1"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}

	_, err := execute(t, "--url", server.URL, "--attempts", "1", "add", "1,0,0,0")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err), "got %v", err)
}
