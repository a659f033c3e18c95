package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yifan996/Itinerary/internal/models/db_models"
	"github.com/yifan996/Itinerary/pkg/utils"
)

type SurveyErrorKind int

const (
	MissingSurvey SurveyErrorKind = iota + 1
	MissingAnswers
	InvalidAnswers
)

// SurveyValidationError reports every missing or invalid answer of a survey.
// Missing answers take priority; when any are present Invalid is empty.
type SurveyValidationError struct {
	Kind    SurveyErrorKind
	Missing []string
	Invalid []string
}

func (e *SurveyValidationError) Error() string {
	switch e.Kind {
	case MissingSurvey:
		return "Missing survey"
	case MissingAnswers:
		return "Missing answers: " + strings.Join(e.Missing, ", ")
	default:
		return "Invalid answers (must be 1..5): " + strings.Join(e.Invalid, ", ")
	}
}

func (e *SurveyValidationError) ValidationMessage() string { return e.Error() }

func (e *SurveyValidationError) Unwrap() error { return utils.ErrInvalidInput }

// ValidateSurvey checks that q1..q14 are all present and each is an integer
// in 1..5. Numeric strings are accepted; booleans and other types are not.
func ValidateSurvey(survey map[string]any) (db_models.SurveyAnswers, error) {
	var answers db_models.SurveyAnswers
	if survey == nil {
		return answers, &SurveyValidationError{Kind: MissingSurvey}
	}

	var missing, invalid []string
	for i := 1; i <= db_models.SurveyQuestions; i++ {
		key := "q" + strconv.Itoa(i)
		raw, ok := survey[key]
		if !ok || raw == nil {
			missing = append(missing, key)
			continue
		}
		n, ok := likertValue(raw)
		if !ok {
			invalid = append(invalid, key+"="+formatRaw(raw))
			continue
		}
		answers[i-1] = n
	}

	if len(missing) > 0 {
		return db_models.SurveyAnswers{}, &SurveyValidationError{Kind: MissingAnswers, Missing: missing}
	}
	if len(invalid) > 0 {
		return db_models.SurveyAnswers{}, &SurveyValidationError{Kind: InvalidAnswers, Invalid: invalid}
	}
	return answers, nil
}

func likertValue(raw any) (int, bool) {
	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case bool:
		// true counts as 1 and false as 0, the same as a numeric cast.
		if v {
			f = 1
		}
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f < 1 || f > 5 {
		return 0, false
	}
	return int(f), true
}

// formatRaw renders the submitted value the way the caller wrote it.
func formatRaw(raw any) string {
	switch v := raw.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
