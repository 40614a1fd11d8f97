package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mhngo/quiznest/internal/dto"
	"github.com/mhngo/quiznest/internal/service"
	"github.com/rs/zerolog/log"
)

// QuizAPIController exposes the question bank over JSON.
type QuizAPIController struct {
	quizService service.QuizService
}

func NewQuizAPIController(quizService service.QuizService) *QuizAPIController {
	return &QuizAPIController{quizService: quizService}
}

// GetTopics godoc
// @Summary List distinct quiz topics
// @Description Get the sorted list of topics available in the question bank.
// @Tags Quiz
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /topics [get]
func (c *QuizAPIController) GetTopics(ctx *gin.Context) {
	topics, err := c.quizService.ListTopics()
	if err != nil {
		log.Error().Err(err).Msg("API GetTopics: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve topics", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

// GetQuestions godoc
// @Summary List quiz questions
// @Description Get questions, optionally filtered to a single topic. Correct answers are never included.
// @Tags Quiz
// @Produce json
// @Param topic query string false "Topic to filter by (exact, case-sensitive); omit for all questions"
// @Success 200 {array} dto.QuestionDTO
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (c *QuizAPIController) GetQuestions(ctx *gin.Context) {
	topic := ctx.Query("topic")
	questions, err := c.quizService.QuestionsForTopic(topic)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("API GetQuestions: service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to retrieve questions", Details: []string{err.Error()}})
		return
	}
	ctx.JSON(http.StatusOK, questions)
}
