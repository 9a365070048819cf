package programs

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/2beens/fitquest/internal/apperr"
)

// The generated* types mirror what the text generation service is asked to return.
// Anything the model tends to get wrong is kept raw and goes through normalize.go.
type generatedProgram struct {
	ProgramName         string                     `json:"program_name"`
	Weeks               []generatedWeek            `json:"weeks"`
	MuscleBalanceTarget map[string]json.RawMessage `json:"muscle_balance_target"`
}

type generatedWeek struct {
	Week     json.RawMessage    `json:"week"`
	Phase    string             `json:"phase"`
	Sessions []generatedSession `json:"sessions"`
}

type generatedSession struct {
	Day              string              `json:"day"`
	Name             string              `json:"name"`
	WarmupVideoQuery string              `json:"warmup_video_query"`
	Exercises        []generatedExercise `json:"exercises"`
}

type generatedExercise struct {
	Name         string          `json:"name"`
	Sets         json.RawMessage `json:"sets"`
	Reps         json.RawMessage `json:"reps"`
	RestSeconds  json.RawMessage `json:"rest_seconds"`
	MuscleGroups json.RawMessage `json:"muscle_groups"`
}

var errNoJSONObject = errors.New("no json object in generated text")

// ExtractJSON finds the JSON object in text that may be wrapped in prose or code fences.
// It first tries the span from the first '{' to the last '}', then the first balanced object.
func ExtractJSON(text string) ([]byte, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return nil, errNoJSONObject
	}

	candidate := text[start : end+1]
	if json.Valid([]byte(candidate)) {
		return []byte(candidate), nil
	}

	if balanced, ok := firstBalancedObject(text[start:]); ok && json.Valid([]byte(balanced)) {
		return []byte(balanced), nil
	}
	return nil, errNoJSONObject
}

// firstBalancedObject scans s (starting at '{') to the matching closing brace, skipping strings.
func firstBalancedObject(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

func parseGenerated(text string) (*generatedProgram, []byte, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return nil, nil, apperr.GenerationParse(err, "generated program could not be read")
	}

	var program generatedProgram
	if err := json.Unmarshal(raw, &program); err != nil {
		return nil, nil, apperr.GenerationParse(err, "generated program has an unexpected shape")
	}
	return &program, raw, nil
}
