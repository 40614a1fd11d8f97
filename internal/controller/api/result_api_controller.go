package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mhngo/quiznest/internal/dto"
	"github.com/mhngo/quiznest/internal/service"
	"github.com/mhngo/quiznest/internal/session"
	"github.com/rs/zerolog/log"
)

// ResultAPIController exposes submissions and score history over JSON.
type ResultAPIController struct {
	submissionService service.SubmissionService
	resultService     service.ResultService
	sessions          *session.Manager
}

func NewResultAPIController(
	submissionService service.SubmissionService,
	resultService service.ResultService,
	sessions *session.Manager,
) *ResultAPIController {
	return &ResultAPIController{
		submissionService: submissionService,
		resultService:     resultService,
		sessions:          sessions,
	}
}

// SubmitAttempt godoc
// @Summary Submit quiz answers
// @Description Grade a set of answers keyed "q<id>" against the whole question bank and record the score under the caller's anonymous identity. An identity cookie is issued if the caller has none.
// @Tags Results
// @Accept json
// @Produce json
// @Param submission body dto.AttemptSubmitDTO true "Answers keyed by question id, e.g. {\"answers\": {\"q1\": \"c\"}}"
// @Success 200 {object} dto.SubmissionResultDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /attempts [post]
func (c *ResultAPIController) SubmitAttempt(ctx *gin.Context) {
	var req dto.AttemptSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("API SubmitAttempt: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	userID := c.sessions.GetOrCreate(ctx)
	result, err := c.submissionService.Submit(userID, req.Answers)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("API SubmitAttempt: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to submit attempt", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetSummary godoc
// @Summary Get score summary
// @Description Latest score, personal best, and global best for the caller's identity. Callers without an identity get zeros and has_history=false.
// @Tags Results
// @Produce json
// @Success 200 {object} dto.ScoreSummaryDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results/summary [get]
func (c *ResultAPIController) GetSummary(ctx *gin.Context) {
	userID, ok := c.sessions.Identity(ctx)
	if !ok {
		// No identity means no history; global best is still meaningful but
		// the page surface treats this case as "start over", so mirror it
		// with an empty summary rather than an error.
		ctx.JSON(http.StatusOK, dto.ScoreSummaryDTO{})
		return
	}

	summary, err := c.resultService.Summarize(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("API GetSummary: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve summary", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// GetHistory godoc
// @Summary Get submission history
// @Description All recorded results for the caller's identity, newest first. Callers without an identity get an empty list.
// @Tags Results
// @Produce json
// @Success 200 {array} dto.ResultDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [get]
func (c *ResultAPIController) GetHistory(ctx *gin.Context) {
	userID, ok := c.sessions.Identity(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, []dto.ResultDTO{})
		return
	}

	history, err := c.resultService.History(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("API GetHistory: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve history", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, history)
}
