package services

import (
	"sort"
	"strings"

	"dailyquiz/models"
)

type QuestionResult struct {
	QuestionID    uint               `json:"questionId"`
	Question      string             `json:"question"`
	UserAnswer    models.AnswerValue `json:"userAnswer"`
	CorrectAnswer string             `json:"correctAnswer"`
	IsCorrect     bool               `json:"isCorrect"`
}

type GradeReport struct {
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	TimeTaken      int              `json:"timeTaken"`
	Results        []QuestionResult `json:"results"`
}

// Grade scores a set of answers against the quiz questions. It is a pure
// function: every question produces a verdict in original order, a missing or
// malformed answer grades as incorrect rather than failing, and the score is
// the count of correct verdicts. An empty quiz grades 0/0.
func Grade(questions []models.Question, answers map[uint]models.AnswerValue, timeTaken int) *GradeReport {
	report := &GradeReport{
		TotalQuestions: len(questions),
		TimeTaken:      timeTaken,
		Results:        make([]QuestionResult, 0, len(questions)),
	}

	for _, question := range questions {
		answer := answers[question.ID]
		correct := gradeQuestion(question, answer)
		if correct {
			report.Score++
		}
		report.Results = append(report.Results, QuestionResult{
			QuestionID:    question.ID,
			Question:      question.Text,
			UserAnswer:    answer,
			CorrectAnswer: question.CorrectAnswer,
			IsCorrect:     correct,
		})
	}

	return report
}

func gradeQuestion(question models.Question, answer models.AnswerValue) bool {
	if question.Type == models.QuestionCheckbox {
		// The stored correct answer is a comma-separated option set. A
		// non-list answer counts as an empty selection, so it grades
		// incorrect instead of erroring.
		return equalSets(strings.Split(question.CorrectAnswer, ","), answer.Values())
	}

	return normalizeScalar(answer.String()) == normalizeScalar(question.CorrectAnswer)
}

// equalSets compares two option selections ignoring order and duplicates.
func equalSets(want, got []string) bool {
	w := dedupeSorted(want)
	g := dedupeSorted(got)
	if len(w) != len(g) {
		return false
	}
	for i := range w {
		if w[i] != g[i] {
			return false
		}
	}
	return true
}

func dedupeSorted(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)

	n := 0
	for i, value := range out {
		if i == 0 || value != out[n-1] {
			out[n] = value
			n++
		}
	}
	return out[:n]
}

// normalizeScalar applies the comparison rule for single-valued questions:
// case-insensitive, surrounding whitespace ignored.
func normalizeScalar(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
