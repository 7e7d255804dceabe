package workout

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

const (
	keyType      = "type"
	keyDate      = "date"
	keyNotes     = "notes"
	keyTimestamp = "timestamp"
)

// Record is one logged workout. It is stored as a flat JSON object: the
// common keys followed by the keys of its category's fields.
type Record struct {
	Type      Category
	Date      string
	Notes     string
	Timestamp int64 // unix millis, creation time
	Fields    map[string]string

	// non-string values under unrecognised keys, kept for round trips
	extra map[string]json.RawMessage
}

func (r Record) Field(key string) string {
	return r.Fields[key]
}

func (r Record) CreatedAt() time.Time {
	return time.UnixMilli(r.Timestamp)
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	first := true
	write := func(key string, value any) error {
		b, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		k, err := json.Marshal(key)
		if err != nil {
			return fmt.Errorf("marshal key %s: %w", key, err)
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(b)
		return nil
	}

	if err := write(keyType, string(r.Type)); err != nil {
		return nil, err
	}
	if err := write(keyDate, r.Date); err != nil {
		return nil, err
	}
	if err := write(keyNotes, r.Notes); err != nil {
		return nil, err
	}
	if err := write(keyTimestamp, r.Timestamp); err != nil {
		return nil, err
	}

	written := make(map[string]bool, len(r.Fields))
	for _, f := range r.Type.Fields() {
		v, ok := r.Fields[f.Key]
		if !ok {
			continue
		}
		if err := write(f.Key, v); err != nil {
			return nil, err
		}
		written[f.Key] = true
	}

	rest := make([]string, 0, len(r.Fields)+len(r.extra))
	for k := range r.Fields {
		if !written[k] {
			rest = append(rest, k)
		}
	}
	for k := range r.extra {
		rest = append(rest, k)
	}
	sort.Strings(rest)

	for _, k := range rest {
		var err error
		if v, ok := r.Fields[k]; ok {
			err = write(k, v)
		} else {
			err = write(k, r.extra[k])
		}
		if err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*r = Record{}
	for k, v := range raw {
		switch k {
		case keyType:
			var s string
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			r.Type = Category(s)
		case keyDate:
			if err := json.Unmarshal(v, &r.Date); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		case keyNotes:
			if err := json.Unmarshal(v, &r.Notes); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
		case keyTimestamp:
			// written by browsers as a JS number
			var ts float64
			if err := json.Unmarshal(v, &ts); err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			r.Timestamp = int64(ts)
		default:
			var s string
			if err := json.Unmarshal(v, &s); err == nil {
				if r.Fields == nil {
					r.Fields = make(map[string]string)
				}
				r.Fields[k] = s
				continue
			}
			// numbers render like the strings the form writes
			if n, ok := jsonNumber(v); ok {
				if r.Fields == nil {
					r.Fields = make(map[string]string)
				}
				r.Fields[k] = n.String()
				continue
			}
			if r.extra == nil {
				r.extra = make(map[string]json.RawMessage)
			}
			r.extra[k] = v
		}
	}
	return nil
}

func jsonNumber(raw json.RawMessage) (json.Number, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	n, ok := v.(json.Number)
	return n, ok
}
