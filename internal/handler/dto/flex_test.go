package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUint_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FlexUint
		wantErr bool
	}{
		{name: "number", input: `4`, want: 4},
		{name: "string", input: `"4"`, want: 4},
		{name: "null", input: `null`, want: 0},
		{name: "zero string", input: `"0"`, want: 0},
		{name: "negative", input: `-1`, wantErr: true},
		{name: "float", input: `2.5`, wantErr: true},
		{name: "word", input: `"click"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got FlexUint
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizRequest_MixedIDs(t *testing.T) {
	var req QuizRequest
	body := `{"previous_questions": [16, "19"], "quiz_category": {"type": "Art", "id": "2"}}`

	require.NoError(t, json.Unmarshal([]byte(body), &req))
	assert.Equal(t, []uint{16, 19}, ToUintSlice(req.PreviousQuestions))
	require.NotNil(t, req.QuizCategory)
	assert.Equal(t, FlexUint(2), req.QuizCategory.ID)
	assert.Equal(t, "Art", req.QuizCategory.Type)
}
