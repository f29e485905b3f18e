package interpret

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/spherical/saleseer/internal/domain"
)

var (
	// ErrNoObject means the model reply held no JSON object.
	ErrNoObject = errors.New("no JSON object in model output")
	// ErrNotObject means the reply parsed as JSON but was an array, scalar or null.
	ErrNotObject = errors.New("model output is not a JSON object")
)

// jsonObjectPattern finds the widest {...} span, across newlines.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ParseModelOutput decodes a model reply into Criteria.
//
// The whole reply is tried first. If it is not valid JSON, the widest {...}
// substring is tried instead. Unknown keys and wrongly typed values are dropped.
func ParseModelOutput(text string) (domain.Criteria, error) {
	obj, err := decodeObject(text)
	if err != nil {
		return domain.Criteria{}, domain.ParseError("model output", err)
	}
	return criteriaFromObject(obj), nil
}

func decodeObject(text string) (map[string]json.RawMessage, error) {
	data := []byte(strings.TrimSpace(text))

	if json.Valid(data) {
		return asObject(data)
	}

	match := jsonObjectPattern.Find(data)
	if match == nil {
		return nil, ErrNoObject
	}
	if !json.Valid(match) {
		return nil, ErrNoObject
	}
	return asObject(match)
}

func asObject(data []byte) (map[string]json.RawMessage, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return nil, ErrNotObject
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func criteriaFromObject(obj map[string]json.RawMessage) domain.Criteria {
	var c domain.Criteria
	c.Category = stringField(obj["category"])
	c.Color = stringField(obj["color"])
	c.PriceMax = numberField(obj["price_max"])
	c.PriceMin = numberField(obj["price_min"])
	c.RatingMin = numberField(obj["rating_min"])
	return c
}

func stringField(raw json.RawMessage) string {
	if isAbsent(raw) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(s))
}

// numberField accepts JSON numbers and numeric strings such as "$1,200".
// A null value is absent, not zero.
func numberField(raw json.RawMessage) *float64 {
	if isAbsent(raw) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return &f
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func isAbsent(raw json.RawMessage) bool {
	return raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
