package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Models drift on scalar types ("gpa": 3.8, "is_current": "true"). The
// resume records below accept any JSON scalar for their text fields and
// common spellings for their flags, the way a schema cast would.

func (p *PersonalInfo) UnmarshalJSON(data []byte) error {
	return decodeRecord(data, map[string]*string{
		"full_name":  &p.FullName,
		"profession": &p.Profession,
		"email":      &p.Email,
		"phone":      &p.Phone,
		"location":   &p.Location,
		"linkedIn":   &p.LinkedIn,
		"website":    &p.Website,
	}, nil)
}

func (e *Experience) UnmarshalJSON(data []byte) error {
	return decodeRecord(data, map[string]*string{
		"company":     &e.Company,
		"position":    &e.Position,
		"start_date":  &e.StartDate,
		"end_date":    &e.EndDate,
		"description": &e.Description,
	}, map[string]*bool{
		"is_current": &e.IsCurrent,
	})
}

func (p *Project) UnmarshalJSON(data []byte) error {
	return decodeRecord(data, map[string]*string{
		"name":        &p.Name,
		"type":        &p.Type,
		"description": &p.Description,
	}, nil)
}

func (e *Education) UnmarshalJSON(data []byte) error {
	return decodeRecord(data, map[string]*string{
		"institution":     &e.Institution,
		"degree":          &e.Degree,
		"field":           &e.Field,
		"graduation_date": &e.GraduationDate,
		"gpa":             &e.GPA,
	}, nil)
}

// decodeRecord fills the mapped fields from a JSON object. Unknown keys are
// ignored and null leaves a field untouched.
func decodeRecord(data []byte, strs map[string]*string, flags map[string]*bool) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	for key, val := range raw {
		if dst, ok := strs[key]; ok {
			s, err := looseString(val)
			if err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
			*dst = s
			continue
		}
		if dst, ok := flags[key]; ok {
			b, err := looseBool(val)
			if err != nil {
				return fmt.Errorf("field %q: %w", key, err)
			}
			*dst = b
		}
	}
	return nil
}

func scalar(val json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(val))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func looseString(val json.RawMessage) (string, error) {
	v, err := scalar(val)
	if err != nil {
		return "", err
	}
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("expected a string, got %s", bytes.TrimSpace(val))
	}
}

func looseBool(val json.RawMessage) (bool, error) {
	v, err := scalar(val)
	if err != nil {
		return false, err
	}
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	case json.Number:
		return t.String() != "0", nil
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "true", "yes", "y", "1", "current", "present":
			return true, nil
		case "false", "no", "n", "0", "":
			return false, nil
		}
	}
	return false, fmt.Errorf("expected a boolean, got %s", bytes.TrimSpace(val))
}
