package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_Format(t *testing.T) {
	// Arrange
	question := &Question{
		ID:         7,
		Question:   "What is the largest lake in Africa?",
		Answer:     "Lake Victoria",
		Category:   3,
		Difficulty: 2,
	}

	// Act
	formatted := question.Format()

	// Assert
	assert.Equal(t, uint(7), formatted.ID)
	assert.Equal(t, "What is the largest lake in Africa?", formatted.Question)
	assert.Equal(t, "Lake Victoria", formatted.Answer)
	assert.Equal(t, uint(3), formatted.Category)
	assert.Equal(t, 2, formatted.Difficulty)
}

func TestFormatQuestions_EmptySliceMarshalsToJSONArray(t *testing.T) {
	// Пустой результат должен уходить клиенту как [], а не null
	formatted := FormatQuestions(nil)

	require.NotNil(t, formatted)

	data, err := json.Marshal(formatted)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestFormatQuestions_PreservesOrder(t *testing.T) {
	questions := []Question{
		{ID: 2, Question: "Q2"},
		{ID: 1, Question: "Q1"},
		{ID: 3, Question: "Q3"},
	}

	formatted := FormatQuestions(questions)

	require.Len(t, formatted, 3)
	assert.Equal(t, uint(2), formatted[0].ID)
	assert.Equal(t, uint(1), formatted[1].ID)
	assert.Equal(t, uint(3), formatted[2].ID)
}
