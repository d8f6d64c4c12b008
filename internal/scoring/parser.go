package scoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/heartmarshall/question-scorer/internal/domain"
)

// scoresKey is the top-level key holding the item → axis → level object.
const scoresKey = "scores"

// ExtractJSON finds the object between the first '{' and the last '}' in
// raw, decodes it and checks that it has a "scores" key. It returns the
// undecoded scores object. All failures are ParseErrors carrying raw.
func ExtractJSON(raw string) (json.RawMessage, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, domain.NewParseError(raw, "no JSON object found in response", nil)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &obj); err != nil {
		return nil, domain.NewParseError(raw, "invalid JSON object", err)
	}

	scores, ok := obj[scoresKey]
	if !ok {
		return nil, domain.NewParseError(raw, `missing "scores" key`, nil)
	}
	return scores, nil
}

// ValidateScoreMatrix decodes a scores object into a ScoreMatrix. Every
// item 1..15 must hold every axis A..D, and every value must be an integer
// in [0,5]. Out-of-range values are rejected, never clamped. Extra keys
// are ignored. Failures are SchemaErrors without a raw payload.
func ValidateScoreMatrix(scores json.RawMessage) (domain.ScoreMatrix, error) {
	var byItem map[string]json.RawMessage
	if err := json.Unmarshal(scores, &byItem); err != nil || byItem == nil {
		return nil, domain.NewSchemaError("", `"scores" is not an object`)
	}

	matrix := make(domain.ScoreMatrix, domain.ItemCount)
	for _, item := range domain.ItemIDs() {
		itemRaw, ok := byItem[item.Key()]
		if !ok {
			return nil, domain.NewSchemaError("", fmt.Sprintf("item %d missing", item))
		}

		var byAxis map[string]json.RawMessage
		if err := json.Unmarshal(itemRaw, &byAxis); err != nil || byAxis == nil {
			return nil, domain.NewSchemaError("", fmt.Sprintf("item %d is not an object", item))
		}

		axisScores := make(domain.AxisScores, domain.AxisCount)
		for _, axis := range domain.AxisIDs() {
			valueRaw, ok := byAxis[axis.String()]
			if !ok {
				return nil, domain.NewSchemaError("", fmt.Sprintf("item %d axis %s missing", item, axis))
			}
			level, err := decodeLevel(valueRaw)
			if err != nil {
				return nil, domain.NewSchemaError("", fmt.Sprintf("item %d axis %s: %s", item, axis, err.Error()))
			}
			axisScores[axis] = level
		}
		matrix[item] = axisScores
	}

	return matrix, nil
}

// ParseScoreMatrix runs extraction and validation over a raw backend
// payload. Schema errors get raw attached so callers can show it.
func ParseScoreMatrix(raw string) (domain.ScoreMatrix, error) {
	scores, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	matrix, err := ValidateScoreMatrix(scores)
	if err != nil {
		if re, ok := err.(*domain.ResponseError); ok {
			re.Raw = raw
		}
		return nil, err
	}
	return matrix, nil
}

// decodeLevel accepts a JSON number with an integral value in [0,5].
// 4.0 is accepted as 4; 3.5, "3", null and booleans are not.
func decodeLevel(msg json.RawMessage) (domain.ScoreLevel, error) {
	dec := json.NewDecoder(bytes.NewReader(msg))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, fmt.Errorf("undecodable value")
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, fmt.Errorf("value %s is not a number", strings.TrimSpace(string(msg)))
	}

	n, err := strconv.ParseInt(num.String(), 10, 64)
	if err != nil {
		f, ferr := num.Float64()
		if ferr != nil || f != math.Trunc(f) {
			return 0, fmt.Errorf("value %s is not an integer", num)
		}
		n = int64(f)
	}

	level := domain.ScoreLevel(n)
	if n < int64(domain.MinScoreLevel) || n > int64(domain.MaxScoreLevel) {
		return 0, fmt.Errorf("value %d out of range [%d,%d]", n, domain.MinScoreLevel, domain.MaxScoreLevel)
	}
	return level, nil
}
