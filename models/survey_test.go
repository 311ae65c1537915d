package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateSurvey(t *testing.T) {
	// Crown College得两票胜出
	result := EvaluateSurvey([]string{
		"Mostly introverted",
		"Complete silence",
		"Arts and creative activities",
	})
	assert.Equal(t, "Crown College", result.College)
	assert.Equal(t, 2, result.Votes["Crown College"])
	assert.Equal(t, 1, result.Votes["Porter College"])
}

func TestEvaluateSurveyTie(t *testing.T) {
	// 平票时先达到最高票的书院胜出
	result := EvaluateSurvey([]string{
		"Very outgoing and social", // Cowell
		"STEM/Engineering",         // Crown
	})
	assert.Equal(t, "Cowell College", result.College)
}

func TestEvaluateSurveyUnknownAnswers(t *testing.T) {
	result := EvaluateSurvey([]string{"not a real answer"})
	assert.Equal(t, "", result.College)
	assert.Empty(t, result.Votes)
}

func TestSurveyQuestionsComplete(t *testing.T) {
	// 每个选项都必须能映射到某个书院
	for _, q := range GetSurveyQuestions() {
		for _, opt := range q.Options {
			_, ok := answerToCollege[opt]
			assert.True(t, ok, "option %q has no college mapping", opt)
		}
	}
}
