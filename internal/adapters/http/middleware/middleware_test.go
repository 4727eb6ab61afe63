package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/exercises-service/internal/adapters/http/dto"
	appctx "github.com/jsamuelsen/exercises-service/internal/app/context"
	"github.com/jsamuelsen/exercises-service/internal/platform/config"
	"github.com/jsamuelsen/exercises-service/internal/platform/logging"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIDMiddleware(t *testing.T) {
	t.Parallel()

	middlewares := []struct {
		name       string
		handler    gin.HandlerFunc
		header     string
		fromGin    func(*gin.Context) string
		fromCtx    func(context.Context) string
		logAttrKey string
	}{
		{"request id", RequestID(), HeaderRequestID, GetRequestID, RequestIDFromContext, logging.KeyRequestID},
		{"correlation id", CorrelationID(), HeaderCorrelationID, GetCorrelationID, CorrelationIDFromContext, logging.KeyCorrelationID},
	}

	inbound := []struct {
		name      string
		header    string
		wantReuse bool
	}{
		{"generated when absent", "", false},
		{"reused when valid", "abc-123_x.y:z", true},
		{"replaced when too long", strings.Repeat("a", maxIDLength+1), false},
		{"replaced when unsafe", "bad id\n", false},
	}

	for _, mw := range middlewares {
		for _, in := range inbound {
			t.Run(mw.name+"/"+in.name, func(t *testing.T) {
				t.Parallel()

				var ginID, ctxID string
				router := gin.New()
				router.Use(mw.handler)
				router.GET("/test", func(c *gin.Context) {
					ginID = mw.fromGin(c)
					ctxID = mw.fromCtx(c.Request.Context())
					c.Status(http.StatusOK)
				})

				headers := map[string]string{}
				if in.header != "" {
					headers[mw.header] = in.header
				}
				w := perform(router, http.MethodGet, "/test", headers)

				require.Equal(t, http.StatusOK, w.Code)
				echoed := w.Header().Get(mw.header)
				assert.Equal(t, echoed, ginID)
				assert.Equal(t, echoed, ctxID)

				if in.wantReuse {
					assert.Equal(t, in.header, echoed)
				} else {
					_, err := uuid.Parse(echoed)
					assert.NoError(t, err, "expected a generated UUID, got %q", echoed)
				}
			})
		}
	}
}

func TestIDMiddleware_EnrichesLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), base))
		c.Next()
	}, RequestID())
	router.GET("/test", func(c *gin.Context) {
		logging.FromContext(c.Request.Context()).Info("inside")
		c.Status(http.StatusOK)
	})

	perform(router, http.MethodGet, "/test", map[string]string{HeaderRequestID: "req-42"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-42", entry[logging.KeyRequestID])
}

func TestGetIDs_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, GetRequestID(c))
	assert.Empty(t, GetCorrelationID(c))

	c.Set(ContextKeyRequestID, 42)
	assert.Empty(t, GetRequestID(c), "non-string values are ignored")
}

func TestClaims(t *testing.T) {
	claims := &Claims{
		Subject: "u1",
		Roles:   []string{"admin", "reader"},
		Scopes:  []string{"files:read", "quaternions:eval"},
	}

	assert.True(t, claims.HasRole("admin"))
	assert.False(t, claims.HasRole("owner"))
	assert.True(t, claims.HasScope("files:read"))
	assert.True(t, claims.HasAllScopes("files:read", "quaternions:eval"))
	assert.False(t, claims.HasAllScopes("files:read", "files:write"))
	assert.True(t, claims.HasAllScopes())
}

func TestExtractClaims(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.AuthConfig
		headers map[string]string
		want    *Claims
	}{
		{
			name:    "default headers",
			headers: map[string]string{"X-User-ID": " u1 ", "X-User-Roles": "admin, reader,,", "X-User-Scopes": "a  b"},
			want:    &Claims{Subject: "u1", Roles: []string{"admin", "reader"}, Scopes: []string{"a", "b"}},
		},
		{
			name:    "custom headers",
			cfg:     &config.AuthConfig{SubjectHeader: "X-Sub", ScopesHeader: "X-Scp"},
			headers: map[string]string{"X-Sub": "u2", "X-Scp": "files:read", "X-User-ID": "ignored"},
			want:    &Claims{Subject: "u2", Scopes: []string{"files:read"}},
		},
		{
			name: "no headers",
			want: &Claims{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, ExtractClaims(c, tt.cfg))
		})
	}
}

func TestRequireAuthAndScopes(t *testing.T) {
	cfg := &config.AuthConfig{Enabled: true}

	tests := []struct {
		name     string
		chain    []gin.HandlerFunc
		headers  map[string]string
		want     int
		wantCode string
	}{
		{"auth without subject", []gin.HandlerFunc{RequireAuth(cfg)}, nil, http.StatusUnauthorized, dto.ErrorCodeUnauthorized},
		{"auth with subject", []gin.HandlerFunc{RequireAuth(cfg)}, map[string]string{"X-User-ID": "u"}, http.StatusOK, ""},
		{"scopes missing", []gin.HandlerFunc{RequireAuth(cfg), RequireScopes(cfg, "x")},
			map[string]string{"X-User-ID": "u"}, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"scopes granted", []gin.HandlerFunc{RequireAuth(cfg), RequireScopes(cfg, "x", "y")},
			map[string]string{"X-User-ID": "u", "X-User-Scopes": "y x"}, http.StatusOK, ""},
		{"scopes alone extract claims", []gin.HandlerFunc{RequireScopes(cfg, "x")},
			map[string]string{"X-User-Scopes": "x"}, http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subject string
			router := gin.New()
			handlers := append(tt.chain, func(c *gin.Context) {
				if claims := GetClaims(c); claims != nil {
					subject = claims.Subject
				}
				c.Status(http.StatusOK)
			})
			router.GET("/test", handlers...)

			w := perform(router, http.MethodGet, "/test", tt.headers)

			assert.Equal(t, tt.want, w.Code)
			if tt.wantCode != "" {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantCode, resp.Error.Code)
				return
			}
			assert.Equal(t, tt.headers["X-User-ID"], subject)
		})
	}
}

func TestGuards(t *testing.T) {
	assert.Empty(t, Guards(nil))
	assert.Empty(t, Guards(&config.AuthConfig{Enabled: false, RequiredScope: "x"}))
	assert.Len(t, Guards(&config.AuthConfig{Enabled: true}), 1)
	assert.Len(t, Guards(&config.AuthConfig{Enabled: true, RequiredScope: "files:read"}), 2)
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		status    int
		skip      []string
		wantLevel string
		wantLog   bool
	}{
		{"success logs info", "/api/v1/x", http.StatusOK, nil, "INFO", true},
		{"client error logs warn", "/api/v1/x", http.StatusBadRequest, nil, "WARN", true},
		{"server error logs error", "/api/v1/x", http.StatusInternalServerError, nil, "ERROR", true},
		{"health paths skipped", "/-/live", http.StatusOK, nil, "", false},
		{"configured paths skipped", "/api/v1/x", http.StatusOK, []string{"/api/v1/x"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewJSONHandler(&buf, nil))

			router := gin.New()
			router.Use(func(c *gin.Context) {
				c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), base))
				c.Next()
			}, Logging(tt.skip...))
			router.GET(tt.path, func(c *gin.Context) { c.Status(tt.status) })

			perform(router, http.MethodGet, tt.path, nil)

			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "request completed", entry["msg"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.path, entry["route"])
			assert.InDelta(t, float64(tt.status), entry["status"], 0)
		})
	}
}

func TestRecovery(t *testing.T) {
	var recovered any
	router := gin.New()
	router.Use(Recovery(func(r any, stack []byte) {
		recovered = r
		assert.NotEmpty(t, stack)
	}))
	router.GET("/panic", func(*gin.Context) { panic("kaboom") })

	w := perform(router, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "kaboom", recovered)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestRecovery_AfterWrite(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(nil))
	router.GET("/panic", func(c *gin.Context) {
		c.String(http.StatusAccepted, "partial")
		panic("late")
	})

	w := perform(router, http.MethodGet, "/panic", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "partial", w.Body.String())
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		name         string
		timeout      time.Duration
		skip         []string
		wantDeadline bool
	}{
		{"sets deadline", time.Second, nil, true},
		{"zero disables", 0, nil, false},
		{"skipped path", time.Second, []string{"/test"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hasDeadline bool
			router := gin.New()
			router.Use(Timeout(tt.timeout, tt.skip...))
			router.GET("/test", func(c *gin.Context) {
				_, hasDeadline = c.Request.Context().Deadline()
				c.Status(http.StatusOK)
			})

			perform(router, http.MethodGet, "/test", nil)

			assert.Equal(t, tt.wantDeadline, hasDeadline)
		})
	}
}

func TestTimeout_ExpiredDeadlineMapsTo504(t *testing.T) {
	router := gin.New()
	router.Use(Timeout(time.Millisecond))
	router.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
		dto.HandleError(c, c.Request.Context().Err())
	})

	w := perform(router, http.MethodGet, "/slow", nil)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), dto.ErrorCodeTimeout)
}

func TestRequestScope(t *testing.T) {
	var calls int
	router := gin.New()
	router.Use(RequestScope())
	router.GET("/test", func(c *gin.Context) {
		rc := appctx.FromContext(c.Request.Context())
		require.NotNil(t, rc)

		for range 3 {
			_, err := appctx.Fetch(rc, "k", func(context.Context) (int, error) {
				calls++
				return 1, nil
			})
			require.NoError(t, err)
		}
		c.Status(http.StatusOK)
	})

	perform(router, http.MethodGet, "/test", nil)
	perform(router, http.MethodGet, "/test", nil)

	assert.Equal(t, 2, calls, "memoised within a request, fresh per request")
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"", false},
		{"550e8400-e29b-41d4-a716-446655440000", true},
		{"trace:1.2_3", true},
		{"has space", false},
		{"<script>", false},
		{strings.Repeat("x", maxIDLength), true},
		{strings.Repeat("x", maxIDLength+1), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, validID(tt.id), "validID(%q)", tt.id)
	}
}

func TestParseCommaSeparated(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseCommaSeparated(" a ,, b ,"))
	assert.Empty(t, parseCommaSeparated(" , "))
}
