package services

import (
	"testing"

	"dailyquiz/models"
)

func checkboxQuestion(id uint, correct string, options ...string) models.Question {
	return models.Question{
		ID:            id,
		Text:          "pick all that apply",
		Type:          models.QuestionCheckbox,
		Options:       options,
		CorrectAnswer: correct,
	}
}

func textQuestion(id uint, correct string) models.Question {
	return models.Question{
		ID:            id,
		Text:          "free text",
		Type:          models.QuestionText,
		CorrectAnswer: correct,
	}
}

func TestGradeMultiChoiceOrderInsensitive(t *testing.T) {
	questions := []models.Question{checkboxQuestion(1, "Cat,Bird", "Cat", "Dog", "Bird")}
	answers := map[uint]models.AnswerValue{1: models.MultiAnswer("Bird", "Cat")}

	report := Grade(questions, answers, 12)
	if report.Score != 1 || report.TotalQuestions != 1 {
		t.Fatalf("score = %d/%d, want 1/1", report.Score, report.TotalQuestions)
	}
	if !report.Results[0].IsCorrect {
		t.Fatalf("expected reordered selection to grade correct")
	}
	if report.TimeTaken != 12 {
		t.Fatalf("timeTaken = %d, want 12", report.TimeTaken)
	}
}

func TestGradeMultiChoiceDuplicatesIgnored(t *testing.T) {
	questions := []models.Question{checkboxQuestion(1, "Cat,Bird", "Cat", "Dog", "Bird")}
	answers := map[uint]models.AnswerValue{1: models.MultiAnswer("Cat", "Cat", "Bird")}

	report := Grade(questions, answers, 0)
	if report.Score != 1 {
		t.Fatalf("duplicate selections should compare as a set, score = %d", report.Score)
	}
}

func TestGradeMultiChoiceWrongSelection(t *testing.T) {
	questions := []models.Question{checkboxQuestion(1, "Cat,Bird", "Cat", "Dog", "Bird")}

	for name, answer := range map[string]models.AnswerValue{
		"partial selection": models.MultiAnswer("Cat"),
		"extra selection":   models.MultiAnswer("Cat", "Dog", "Bird"),
		"non-list answer":   models.SingleAnswer("Cat,Bird"),
		"empty list":        models.MultiAnswer(),
	} {
		report := Grade(questions, map[uint]models.AnswerValue{1: answer}, 0)
		if report.Score != 0 {
			t.Fatalf("%s: score = %d, want 0", name, report.Score)
		}
	}
}

func TestGradeScalarCaseAndWhitespaceInsensitive(t *testing.T) {
	questions := []models.Question{textQuestion(1, "paris")}

	report := Grade(questions, map[uint]models.AnswerValue{1: models.SingleAnswer(" Paris ")}, 0)
	if report.Score != 1 {
		t.Fatalf("case/whitespace variant should match, score = %d", report.Score)
	}

	report = Grade(questions, map[uint]models.AnswerValue{1: models.SingleAnswer("London")}, 0)
	if report.Score != 0 {
		t.Fatalf("wrong answer graded correct")
	}
}

func TestGradeUnansweredQuestion(t *testing.T) {
	questions := []models.Question{
		textQuestion(1, "x"),
		checkboxQuestion(2, "A,B", "A", "B", "C"),
	}

	report := Grade(questions, nil, 0)
	if report.Score != 0 || report.TotalQuestions != 2 {
		t.Fatalf("score = %d/%d, want 0/2", report.Score, report.TotalQuestions)
	}
	for _, result := range report.Results {
		if result.IsCorrect {
			t.Fatalf("unanswered question %d graded correct", result.QuestionID)
		}
	}
}

func TestGradeEmptyQuiz(t *testing.T) {
	report := Grade(nil, map[uint]models.AnswerValue{1: models.SingleAnswer("x")}, 5)
	if report.Score != 0 || report.TotalQuestions != 0 {
		t.Fatalf("empty quiz = %d/%d, want 0/0", report.Score, report.TotalQuestions)
	}
	if len(report.Results) != 0 {
		t.Fatalf("empty quiz produced %d verdicts", len(report.Results))
	}
}

func TestGradeScoreEqualsCorrectCount(t *testing.T) {
	questions := []models.Question{
		textQuestion(1, "alpha"),
		textQuestion(2, "beta"),
		checkboxQuestion(3, "A", "A", "B"),
		{ID: 4, Text: "dd", Type: models.QuestionDropdown, Options: []string{"x", "y"}, CorrectAnswer: "y"},
	}
	answers := map[uint]models.AnswerValue{
		1: models.SingleAnswer("ALPHA"),
		2: models.SingleAnswer("wrong"),
		3: models.MultiAnswer("A"),
		4: models.SingleAnswer("y"),
	}

	report := Grade(questions, answers, 0)

	correct := 0
	for i, result := range report.Results {
		if result.QuestionID != questions[i].ID {
			t.Fatalf("breakdown out of order at %d: got question %d", i, result.QuestionID)
		}
		if result.IsCorrect {
			correct++
		}
	}
	if report.Score != correct || report.Score != 3 {
		t.Fatalf("score = %d, correct verdicts = %d, want 3", report.Score, correct)
	}
}
