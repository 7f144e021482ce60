// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tabular

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// DecodeError reports JSON input that stayed undecodable after every repair
// attempt. Its message names the underlying error type.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	name := fmt.Sprintf("%T", e.Err)
	if i := strings.LastIndexAny(name, ".*"); i >= 0 {
		name = name[i+1:]
	}
	return fmt.Sprintf("%s: %v", name, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

var errNotContainer = errors.New("expected a JSON array or object")

// looksLikeJSON reports whether trimmed content is wrapped in [] or {}.
func looksLikeJSON(content string) bool {
	t := strings.TrimSpace(content)
	if len(t) < 2 {
		return false
	}
	first, last := t[0], t[len(t)-1]
	return (first == '[' && last == ']') || (first == '{' && last == '}')
}

// decodeJSON decodes content into flat records. A syntax error triggers up
// to two repairs: swapping single and double quotes, then removing the
// trailing comma just before the offset the second error points at.
func decodeJSON(content string) ([][]string, error) {
	data := []byte(strings.TrimSpace(content))

	strictErr := validateJSON(data)
	err := strictErr
	if _, ok := syntaxOffset(err); ok {
		data = swapQuotes(data)
		err = validateJSON(data)
		if off, ok := syntaxOffset(err); ok {
			if fixed, stripped := stripTrailingComma(data, off); stripped {
				data = fixed
				err = validateJSON(data)
			}
		}
	}
	if err != nil {
		// Report what is wrong with the text as given, not with a repair.
		return nil, &DecodeError{Err: strictErr}
	}

	records, err := flattenJSON(data)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return records, nil
}

func validateJSON(data []byte) error {
	var raw json.RawMessage
	return json.Unmarshal(data, &raw)
}

// syntaxOffset returns the offset reported by a JSON syntax error. The offset
// counts the bytes read up to and including the offending one.
func syntaxOffset(err error) (int64, bool) {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return se.Offset, true
	}
	return 0, false
}

func swapQuotes(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		switch b {
		case '"':
			out[i] = '\''
		case '\'':
			out[i] = '"'
		default:
			out[i] = b
		}
	}
	return out
}

// stripTrailingComma removes a comma that precedes the offending byte, with
// only whitespace in between.
func stripTrailingComma(data []byte, offset int64) ([]byte, bool) {
	pos := int(offset) - 2
	if pos >= len(data) {
		pos = len(data) - 1
	}
	for pos >= 0 && isJSONSpace(data[pos]) {
		pos--
	}
	if pos < 0 || data[pos] != ',' {
		return nil, false
	}
	out := make([]byte, 0, len(data)-1)
	out = append(out, data[:pos]...)
	return append(out, data[pos+1:]...), true
}

func isJSONSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// flattenJSON turns a decoded document into records: an array of arrays
// gives one record per inner array, an object gives one key/value record per
// member in document order, and any other array element is a one-field
// record. Objects inside the top-level array expand like top-level objects.
func flattenJSON(data []byte) ([][]string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok {
	case json.Delim('['):
		var records [][]string
		for dec.More() {
			var item json.RawMessage
			if err := dec.Decode(&item); err != nil {
				return nil, err
			}
			rows, err := flattenItem(item)
			if err != nil {
				return nil, err
			}
			records = append(records, rows...)
		}
		return records, nil
	case json.Delim('{'):
		return objectRecords(dec)
	}
	return nil, errNotContainer
}

func flattenItem(item json.RawMessage) ([][]string, error) {
	trimmed := bytes.TrimSpace(item)
	if len(trimmed) == 0 {
		return nil, nil
	}
	switch trimmed[0] {
	case '[':
		var cols []json.RawMessage
		if err := json.Unmarshal(trimmed, &cols); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = scalarText(c)
		}
		return [][]string{row}, nil
	case '{':
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return objectRecords(dec)
	}
	return [][]string{{scalarText(trimmed)}}, nil
}

// objectRecords reads members after an opening '{' has been consumed.
func objectRecords(dec *json.Decoder) ([][]string, error) {
	var records [][]string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		records = append(records, []string{key, scalarText(value)})
	}
	return records, nil
}

// scalarText renders a JSON value as cell text: strings unquoted, everything
// else in compact JSON form.
func scalarText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}
