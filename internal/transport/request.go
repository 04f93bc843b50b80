package transport

import (
	"encoding/json"
	"strconv"
)

// Encoding selects how POST parameters are serialized
type Encoding int

const (
	EncodingJSON Encoding = iota
	EncodingURL
)

// ContentType returns the Content-Type header value for the encoding
func (e Encoding) ContentType() string {
	if e == EncodingURL {
		return "application/x-www-form-urlencoded"
	}
	return "application/json"
}

// Method is GET or POST with a body encoding. The zero value is GET.
type Method struct {
	post     bool
	encoding Encoding
}

func Get() Method {
	return Method{}
}

func Post(encoding Encoding) Method {
	return Method{post: true, encoding: encoding}
}

func (m Method) String() string {
	if m.post {
		return "POST"
	}
	return "GET"
}

// Encoding reports the body encoding; ok is false for GET.
func (m Method) Encoding() (Encoding, bool) {
	return m.encoding, m.post
}

type valueKind int

const (
	kindString valueKind = iota
	kindInt
	kindFloat
	kindBool
)

// Value is a single request parameter: a string, a number or a bool.
type Value struct {
	kind valueKind
	s    string
	i    int64
	f    float64
	b    bool
}

func String(s string) Value { return Value{kind: kindString, s: s} }
func Int(i int) Value { return Value{kind: kindInt, i: int64(i)} }
func Float(f float64) Value { return Value{kind: kindFloat, f: f} }
func Bool(b bool) Value { return Value{kind: kindBool, b: b} }

// String renders the value the way it appears in a query string or form body
func (v Value) String() string {
	switch v.kind {
	case kindInt:
		return strconv.FormatInt(v.i, 10)
	case kindFloat:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.b)
	default:
		return v.s
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case kindInt:
		return json.Marshal(v.i)
	case kindFloat:
		return json.Marshal(v.f)
	case kindBool:
		return json.Marshal(v.b)
	default:
		return json.Marshal(v.s)
	}
}

type Parameters map[string]Value

type Headers map[string]string

// Request describes one HTTP call. It is built per call and consumed once.
type Request struct {
	URL        string
	Method     Method
	Parameters Parameters
	Headers    Headers
}
