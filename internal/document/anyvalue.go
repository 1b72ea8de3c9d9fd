package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// AnyKind identifies the variant held by an AnyValue.
type AnyKind int

const (
	AnyNull AnyKind = iota
	AnyBool
	AnyInt
	AnyDouble
	AnyString
	AnyList
	AnyObject
)

// AnyValue is a closed variant over the JSON value shapes. It preserves
// arbitrary fragments (defaults, examples) through a decode-then-encode
// cycle with no information loss: integers stay integers, doubles stay
// doubles, and object keys keep their source order.
type AnyValue struct {
	Kind   AnyKind
	Bool   bool
	Int    int64
	Double float64
	Str    string
	List   []*AnyValue

	// Keys holds the object's key order; Fields the values.
	Keys   []string
	Fields map[string]*AnyValue
}

func (v *AnyValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	parsed, err := decodeAny(dec)
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

func decodeAny(dec *json.Decoder) (*AnyValue, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeFromToken(dec, tok)
}

// decodeFromToken builds a value from a token already read, recursing into
// containers. Each primitive and container form is tried by token shape,
// mirroring the try-each-form decode of the reference model.
func decodeFromToken(dec *json.Decoder, tok json.Token) (*AnyValue, error) {
	switch t := tok.(type) {
	case nil:
		return &AnyValue{Kind: AnyNull}, nil
	case bool:
		return &AnyValue{Kind: AnyBool, Bool: t}, nil
	case string:
		return &AnyValue{Kind: AnyString, Str: t}, nil
	case json.Number:
		if n, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return &AnyValue{Kind: AnyInt, Int: n}, nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return &AnyValue{Kind: AnyDouble, Double: f}, nil
	case json.Delim:
		switch t {
		case '[':
			value := &AnyValue{Kind: AnyList, List: []*AnyValue{}}
			for dec.More() {
				element, err := decodeAny(dec)
				if err != nil {
					return nil, err
				}
				value.List = append(value.List, element)
			}
			if _, err := dec.Token(); err != nil { // ']'
				return nil, err
			}
			return value, nil
		case '{':
			value := &AnyValue{Kind: AnyObject, Keys: []string{}, Fields: map[string]*AnyValue{}}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				entry, err := decodeAny(dec)
				if err != nil {
					return nil, err
				}
				value.Keys = append(value.Keys, key)
				value.Fields[key] = entry
			}
			if _, err := dec.Token(); err != nil { // '}'
				return nil, err
			}
			return value, nil
		}
	}
	return nil, fmt.Errorf("unexpected JSON token: %v", tok)
}

func (v *AnyValue) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *AnyValue) encode(buf *bytes.Buffer) error {
	switch v.Kind {
	case AnyNull:
		buf.WriteString("null")
	case AnyBool:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case AnyInt:
		buf.WriteString(strconv.FormatInt(v.Int, 10))
	case AnyDouble:
		buf.WriteString(strconv.FormatFloat(v.Double, 'g', -1, 64))
	case AnyString:
		escaped, err := json.Marshal(v.Str)
		if err != nil {
			return err
		}
		buf.Write(escaped)
	case AnyList:
		buf.WriteByte('[')
		for i, element := range v.List {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := element.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case AnyObject:
		buf.WriteByte('{')
		for i, key := range v.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			escaped, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(escaped)
			buf.WriteByte(':')
			if err := v.Fields[key].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// Equal reports deep structural equality, including object key order.
func (v *AnyValue) Equal(other *AnyValue) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case AnyNull:
		return true
	case AnyBool:
		return v.Bool == other.Bool
	case AnyInt:
		return v.Int == other.Int
	case AnyDouble:
		return v.Double == other.Double
	case AnyString:
		return v.Str == other.Str
	case AnyList:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(other.List[i]) {
				return false
			}
		}
		return true
	case AnyObject:
		if len(v.Keys) != len(other.Keys) {
			return false
		}
		for i, key := range v.Keys {
			if key != other.Keys[i] || !v.Fields[key].Equal(other.Fields[key]) {
				return false
			}
		}
		return true
	}
	return false
}
