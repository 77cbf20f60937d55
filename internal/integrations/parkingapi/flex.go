package parkingapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// API отдает числа то числом, то строкой; эти типы принимают оба варианта

var jsonNull = []byte("null")

// flexInt целое из числа или строки ("12", "12.7" -> 12); мусор -> 0
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	v, err := parseFlexNumber(data)
	if err != nil {
		return err
	}
	*f = flexInt(int(v))
	return nil
}

// flexFloat дробное из числа или строки; мусор -> 0
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	v, err := parseFlexNumber(data)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

func parseFlexNumber(data []byte) (float64, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return 0, nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, nil
		}
		return v, nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, nil
	}
	return v, nil
}

// flexString строка из строки или числа (id бывают числовыми)
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*f = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	*f = flexString(string(data))
	return nil
}

// flexTime время в RFC3339 или без зоны ("2024-03-20T10:00:00"); пусто/null -> нулевое время
type flexTime struct {
	time.Time
}

var flexTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (f *flexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		f.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	s = strings.TrimSpace(s)
	if s == "" {
		f.Time = time.Time{}
		return nil
	}

	for _, layout := range flexTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t
			return nil
		}
	}
	return &time.ParseError{Layout: time.RFC3339, Value: s, Message: ": unsupported time format"}
}

func (f flexTime) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return jsonNull, nil
	}
	return json.Marshal(f.Time.Format(time.RFC3339Nano))
}
