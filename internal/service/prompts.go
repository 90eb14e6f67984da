package service

import (
	"fmt"
	"strings"
)

const (
	explanationPromptTemplate = "Explain the following text simply and clearly:\n\n%s"
	flashcardsPromptTemplate  = "Create concise Q&A flashcards from this text:\n\n%s\n\nReturn in JSON with fields: question, answer."
	summaryPromptTemplate     = "Summarize the following text into key bullet points:\n\n%s"
	mcqsPromptTemplate        = "Generate 10 MCQs with options and correct answer from this text:\n\n%s\nReturn JSON array with fields: question, options, correct"
	genericPromptTemplate     = "Process this text:\n%s"

	dailyQuizPromptTemplate  = "Create a daily 10-question quiz on the topic '%s'. Return JSON array with fields: question, options, correct."
	customQuizPromptTemplate = "Generate %d MCQs about %s. Return JSON array with fields: question, options, correct."
)

// buildLearnifyPrompt selecciona la plantilla por modo (case-insensitive).
// Modos no reconocidos caen en la plantilla genérica.
func buildLearnifyPrompt(mode, text string) string {
	switch strings.ToLower(mode) {
	case "explanation":
		return fmt.Sprintf(explanationPromptTemplate, text)
	case "flashcards":
		return fmt.Sprintf(flashcardsPromptTemplate, text)
	case "summary":
		return fmt.Sprintf(summaryPromptTemplate, text)
	case "mcqs":
		return fmt.Sprintf(mcqsPromptTemplate, text)
	default:
		return fmt.Sprintf(genericPromptTemplate, text)
	}
}

func buildDailyQuizPrompt(topic string) string {
	return fmt.Sprintf(dailyQuizPromptTemplate, topic)
}

func buildCustomQuizPrompt(numQuestions int, topic string) string {
	return fmt.Sprintf(customQuizPromptTemplate, numQuestions, topic)
}
