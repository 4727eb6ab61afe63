package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/jsamuelsen/exercises-service/internal/adapters/clients"
	"github.com/jsamuelsen/exercises-service/internal/domain"
	"github.com/jsamuelsen/exercises-service/internal/platform/logging"
)

const (
	evaluatePath = "/api/v1/quaternions/evaluate"
	livenessPath = "/-/live"
)

// QuaternionClient evaluates expressions on a remote calculator. It
// implements ports.QuaternionClient and ports.HealthChecker.
type QuaternionClient struct {
	BaseAdapter
	logger *slog.Logger
}

// NewQuaternionClient wraps client. The health check and domain errors are
// named after client.ServiceName(). Panics if client is nil.
func NewQuaternionClient(client *clients.Client, logger *slog.Logger) *QuaternionClient {
	if client == nil {
		panic("QuaternionClient: client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &QuaternionClient{
		BaseAdapter: NewBaseAdapter(client, client.ServiceName()),
		logger:      logger,
	}
}

type evaluateRequest struct {
	Op       string       `json:"op"`
	Operands [][4]float64 `json:"operands"`
}

type quaternionResponse struct {
	Coefficients *[4]float64 `json:"coefficients"`
	Text         string      `json:"text"`
}

// Evaluate sends op and operands to the calculator and returns the result.
func (c *QuaternionClient) Evaluate(ctx context.Context, op domain.Operator, operands []domain.Quaternion) (domain.Quaternion, error) {
	req := evaluateRequest{Op: string(op), Operands: make([][4]float64, len(operands))}
	for i, q := range operands {
		a, b, cc, d := q.Coefficients()
		req.Operands[i] = [4]float64{a, b, cc, d}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return domain.Quaternion{}, fmt.Errorf("encoding evaluate request: %w", err)
	}

	operation := "evaluate " + string(op)
	c.logger.Log(ctx, logging.LevelTrace, "starting request",
		slog.String("path", evaluatePath),
		slog.String("op", string(op)),
		slog.Int("operands", len(operands)),
	)

	respBody, err := c.Post(ctx, evaluatePath, body, operation)
	if err != nil {
		c.logger.DebugContext(ctx, "calculator call failed", slog.Any("error", err))
		return domain.Quaternion{}, err
	}

	ext, err := DecodeResponse[quaternionResponse](respBody)
	if err != nil {
		return domain.Quaternion{}, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	q, err := c.translate(ext)
	if err != nil {
		return domain.Quaternion{}, err
	}

	c.logger.Log(ctx, logging.LevelTrace, "translated calculator response",
		slog.String("result", q.String()),
	)
	return q, nil
}

// translate accepts a response only when its text agrees with the local
// rendering of its coefficients.
func (c *QuaternionClient) translate(ext *quaternionResponse) (domain.Quaternion, error) {
	if ext.Coefficients == nil {
		return domain.Quaternion{}, domain.NewUnavailableError(c.ServiceName(), "response has no coefficients")
	}
	if err := ValidateRequired(ext.Text, "text"); err != nil {
		return domain.Quaternion{}, domain.NewUnavailableError(c.ServiceName(), err.Error())
	}

	for i, v := range ext.Coefficients {
		if err := ValidateFinite(v, "coefficients["+strconv.Itoa(i)+"]"); err != nil {
			return domain.Quaternion{}, domain.NewUnavailableError(c.ServiceName(), err.Error())
		}
	}

	q := domain.New(ext.Coefficients[0], ext.Coefficients[1], ext.Coefficients[2], ext.Coefficients[3])
	if got := q.String(); got != ext.Text {
		return domain.Quaternion{}, domain.NewUnavailableError(c.ServiceName(),
			fmt.Sprintf("response text %q does not match coefficients (%s)", ext.Text, got))
	}

	return q, nil
}

// Name implements ports.HealthChecker.
func (c *QuaternionClient) Name() string {
	return c.ServiceName()
}

// Check reports whether the calculator's liveness endpoint answers 2xx.
func (c *QuaternionClient) Check(ctx context.Context) error {
	body, err := c.Get(ctx, livenessPath, "liveness check")
	if err != nil {
		return err
	}
	return body.Close()
}
