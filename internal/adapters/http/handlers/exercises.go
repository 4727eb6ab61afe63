package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/exercises-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/exercises-service/internal/ports"
)

// ExerciseHandler serves the small exercise endpoints.
type ExerciseHandler struct {
	runner ports.ExerciseRunner
}

// NewExerciseHandler creates a new exercise handler.
func NewExerciseHandler(runner ports.ExerciseRunner) *ExerciseHandler {
	return &ExerciseHandler{runner: runner}
}

// Change handles GET /api/v1/exercises/change?amount=N.
//
// @Summary Make change
// @Description Splits an amount in cents into quarters, dimes, nickels and pennies
// @Tags exercises
// @Produce json
// @Param amount query int true "Amount in cents"
// @Success 200 {object} dto.ChangeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/exercises/change [get]
func (h *ExerciseHandler) Change(c *gin.Context) {
	var q dto.ChangeQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	coins, err := h.runner.Change(c.Request.Context(), *q.Amount)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ChangeFromDomain(*q.Amount, coins))
}

// FirstLower handles POST /api/v1/exercises/first-lower.
//
// @Summary First match, lowercased
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body dto.FirstLowerRequest true "Items and predicate"
// @Success 200 {object} dto.FirstLowerResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/exercises/first-lower [post]
func (h *ExerciseHandler) FirstLower(c *gin.Context) {
	var req dto.FirstLowerRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	result, found, err := h.runner.FirstThenLowerCase(c.Request.Context(), req.Items, req.Predicate, req.Arg)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FirstLowerResponse{Result: result, Found: found})
}

// Powers handles GET /api/v1/exercises/powers?base=B&limit=L.
//
// @Summary Powers of a base
// @Description Lists 1, base, base², ... up to limit, capped by exercises.max_powers
// @Tags exercises
// @Produce json
// @Param base query int true "Base"
// @Param limit query int false "Largest value returned"
// @Success 200 {object} dto.PowersResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/exercises/powers [get]
func (h *ExerciseHandler) Powers(c *gin.Context) {
	var q dto.PowersQuery
	if err := dto.BindQueryAndValidate(c, &q); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	powers, err := h.runner.Powers(c.Request.Context(), *q.Base, q.Limit)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PowersResponse{Base: *q.Base, Limit: q.Limit, Powers: powers})
}

// Say handles POST /api/v1/exercises/say.
//
// @Summary Build a phrase
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body dto.SayRequest true "Words"
// @Success 200 {object} dto.SayResponse
// @Router /api/v1/exercises/say [post]
func (h *ExerciseHandler) Say(c *gin.Context) {
	var req dto.SayRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SayResponse{Phrase: h.runner.Say(c.Request.Context(), req.Words)})
}

// Tree handles POST /api/v1/exercises/tree.
//
// @Summary Build a search tree
// @Description Inserts words into a persistent binary search tree and renders it
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body dto.TreeRequest true "Words and lookups"
// @Success 200 {object} dto.TreeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/v1/exercises/tree [post]
func (h *ExerciseHandler) Tree(c *gin.Context) {
	var req dto.TreeRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TreeFromDomain(h.runner.Tree(c.Request.Context(), req.Words), req.Query))
}

// LineCount handles POST /api/v1/exercises/line-count.
//
// @Summary Count meaningful lines
// @Description Counts non-blank, non-comment lines in files under the exercises root
// @Tags exercises
// @Accept json
// @Produce json
// @Param request body dto.LineCountRequest true "Paths"
// @Success 200 {object} dto.LineCountResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/v1/exercises/line-count [post]
func (h *ExerciseHandler) LineCount(c *gin.Context) {
	var req dto.LineCountRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.RespondWithBindingError(c, err)
		return
	}

	counts, err := h.runner.LineCount(c.Request.Context(), req.Paths)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LineCountFromDomain(counts))
}

// RegisterExerciseRoutes registers exercise routes on the given group. The
// guards run before LineCount only, since it is the one route that touches
// the filesystem.
func (h *ExerciseHandler) RegisterExerciseRoutes(rg *gin.RouterGroup, lineCountGuards ...gin.HandlerFunc) {
	exercises := rg.Group("/exercises")
	exercises.GET("/change", h.Change)
	exercises.POST("/first-lower", h.FirstLower)
	exercises.GET("/powers", h.Powers)
	exercises.POST("/say", h.Say)
	exercises.POST("/tree", h.Tree)
	exercises.POST("/line-count", append(lineCountGuards, h.LineCount)...)
}
