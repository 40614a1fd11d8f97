package database

import (
	"fmt"

	"github.com/mhngo/quiznest/internal/model"
	"github.com/mhngo/quiznest/internal/repository"
	"github.com/rs/zerolog/log"
)

// StarterQuestions is the fixture loaded into an empty question bank.
func StarterQuestions() []model.Question {
	return []model.Question{
		{
			Text:    "Which decorator registers a route in Flask?",
			OptionA: "@app.get", OptionB: "@app.post",
			OptionC: "@app.route", OptionD: "@app.endpoint",
			CorrectAnswer: "c", Topic: "Flask",
		},
		{
			Text:    "Which decorator is used to listen for messages in Discord.py?",
			OptionA: "@client.event", OptionB: "@client.command",
			OptionC: "@client.listen", OptionD: "@client.message",
			CorrectAnswer: "a", Topic: "Discord.py",
		},
		{
			Text:    "Which method removes a key and returns its value from a Python dict?",
			OptionA: "remove()", OptionB: "pop()",
			OptionC: "delete()", OptionD: "clear()",
			CorrectAnswer: "b", Topic: "Python",
		},
		{
			Text:    "Which HTML tag creates a hyperlink?",
			OptionA: "<a>", OptionB: "<link>",
			OptionC: "<href>", OptionD: "<url>",
			CorrectAnswer: "a", Topic: "HTML",
		},
		{
			Text:    "Which SQL statement removes rows from a table?",
			OptionA: "REMOVE", OptionB: "DELETE",
			OptionC: "ERASE", OptionD: "DROP",
			CorrectAnswer: "b", Topic: "SQL",
		},
	}
}

// SeedQuestions loads the starter set when the bank is empty. Running it
// against a non-empty bank is a no-op, so startup can call it unconditionally.
func SeedQuestions(questionRepo repository.QuestionRepository) error {
	count, err := questionRepo.Count()
	if err != nil {
		return fmt.Errorf("counting questions before seeding: %w", err)
	}
	if count > 0 {
		log.Debug().Int64("count", count).Msg("Question bank already populated, skipping seed")
		return nil
	}

	questions := StarterQuestions()
	if err := questionRepo.CreateBatch(questions); err != nil {
		return fmt.Errorf("seeding starter questions: %w", err)
	}
	log.Info().Int("count", len(questions)).Msg("Seeded starter question bank")
	return nil
}
