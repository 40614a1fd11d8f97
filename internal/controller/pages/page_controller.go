package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mhngo/quiznest/internal/service"
	"github.com/mhngo/quiznest/internal/session"
	"github.com/rs/zerolog/log"
)

// PageController renders the visitor-facing HTML surface.
type PageController struct {
	quizService       service.QuizService
	submissionService service.SubmissionService
	resultService     service.ResultService
	sessions          *session.Manager
}

func NewPageController(
	quizService service.QuizService,
	submissionService service.SubmissionService,
	resultService service.ResultService,
	sessions *session.Manager,
) *PageController {
	return &PageController{
		quizService:       quizService,
		submissionService: submissionService,
		resultService:     resultService,
		sessions:          sessions,
	}
}

// Index lists the distinct quiz topics.
func (c *PageController) Index(ctx *gin.Context) {
	topics, err := c.quizService.ListTopics()
	if err != nil {
		log.Error().Err(err).Msg("Index: service error")
		ctx.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}
	ctx.HTML(http.StatusOK, "index.html", gin.H{"Topics": topics})
}

// Quiz shows the questions for the selected topic; no topic means the whole bank.
func (c *PageController) Quiz(ctx *gin.Context) {
	topic := ctx.Query("topic")
	questions, err := c.quizService.QuestionsForTopic(topic)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Quiz: service error")
		ctx.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}
	ctx.HTML(http.StatusOK, "quiz.html", gin.H{
		"Topic":     topic,
		"Questions": questions,
	})
}

// Submit grades a form submission ("q<id>=<letter>" pairs), records the
// result under the visitor's identity, and redirects to the results page.
// The identity cookie is created here if the visitor does not have one yet.
func (c *PageController) Submit(ctx *gin.Context) {
	userID := c.sessions.GetOrCreate(ctx)

	if err := ctx.Request.ParseForm(); err != nil {
		log.Warn().Err(err).Msg("Submit: failed to parse form")
		ctx.String(http.StatusBadRequest, "Invalid form submission.")
		return
	}
	answers := make(map[string]string, len(ctx.Request.PostForm))
	for key, values := range ctx.Request.PostForm {
		if len(values) > 0 {
			answers[key] = values[0]
		}
	}

	if _, err := c.submissionService.Submit(userID, answers); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Submit: service error")
		ctx.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/results")
}

// Results shows the three summary scores. Visitors without an identity
// cookie have no history and are sent back to the topic list.
func (c *PageController) Results(ctx *gin.Context) {
	userID, ok := c.sessions.Identity(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	summary, err := c.resultService.Summarize(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Results: service error")
		ctx.String(http.StatusInternalServerError, "Something went wrong.")
		return
	}
	ctx.HTML(http.StatusOK, "results.html", gin.H{
		"LatestScore":  summary.LatestScore,
		"PersonalBest": summary.PersonalBest,
		"GlobalBest":   summary.GlobalBest,
	})
}
