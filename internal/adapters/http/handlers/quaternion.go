package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/exercises-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/exercises-service/internal/ports"
)

// QuaternionHandler serves the quaternion endpoints.
type QuaternionHandler struct {
	evaluator ports.QuaternionEvaluator
}

// NewQuaternionHandler creates a new quaternion handler.
func NewQuaternionHandler(evaluator ports.QuaternionEvaluator) *QuaternionHandler {
	return &QuaternionHandler{evaluator: evaluator}
}

// Evaluate handles POST /api/v1/quaternions/evaluate.
//
// @Summary Evaluate a quaternion expression
// @Tags quaternions
// @Accept json
// @Produce json
// @Param request body dto.EvaluateRequest true "Expression"
// @Success 200 {object} dto.QuaternionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/quaternions/evaluate [post]
func (h *QuaternionHandler) Evaluate(c *gin.Context) {
	var req dto.EvaluateRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	q, err := h.evaluator.Evaluate(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuaternionFromDomain(q))
}

// EvaluateBatch handles POST /api/v1/quaternions/batch. Results keep the
// order of the request; the first failing expression fails the batch.
//
// @Summary Evaluate several quaternion expressions
// @Tags quaternions
// @Accept json
// @Produce json
// @Param request body dto.BatchRequest true "Expressions"
// @Success 200 {object} dto.BatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Router /api/v1/quaternions/batch [post]
func (h *QuaternionHandler) EvaluateBatch(c *gin.Context) {
	var req dto.BatchRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	qs, err := h.evaluator.EvaluateBatch(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BatchFromDomain(qs))
}

// Render handles GET /api/v1/quaternions/render.
//
// @Summary Render a quaternion
// @Description Returns the canonical text of a + bi + cj + dk; missing coefficients are 0
// @Tags quaternions
// @Produce json
// @Param a query number false "Real part"
// @Param b query number false "i coefficient"
// @Param c query number false "j coefficient"
// @Param d query number false "k coefficient"
// @Success 200 {object} dto.QuaternionResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/quaternions/render [get]
func (h *QuaternionHandler) Render(c *gin.Context) {
	var q dto.RenderQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuaternionFromDomain(q.ToDomain()))
}

// RegisterQuaternionRoutes registers quaternion routes on the given group.
func (h *QuaternionHandler) RegisterQuaternionRoutes(rg *gin.RouterGroup) {
	quaternions := rg.Group("/quaternions")
	quaternions.POST("/evaluate", h.Evaluate)
	quaternions.POST("/batch", h.EvaluateBatch)
	quaternions.GET("/render", h.Render)
}
