package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// wireRequest is a Request resolved into what goes on the wire
type wireRequest struct {
	method string
	url    string
	header http.Header
	body   []byte
}

func (r Request) encode() (*wireRequest, error) {
	wire := &wireRequest{
		method: r.Method.String(),
		url:    r.URL,
		header: make(http.Header, len(r.Headers)+2),
	}

	for k, v := range r.Headers {
		wire.header.Set(k, v)
	}
	wire.header.Set("Accept", "application/json")

	encoding, isPost := r.Method.Encoding()
	if isPost {
		wire.header.Set("Content-Type", encoding.ContentType())
	}

	if r.Parameters == nil {
		return wire, nil
	}

	if !isPost {
		u, err := url.Parse(r.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid request url %q: %w", r.URL, err)
		}
		query := encodeQuery(r.Parameters)
		switch {
		case u.RawQuery == "":
		case query == "":
			query = u.RawQuery
		default:
			query = u.RawQuery + "&" + query
		}
		u.RawQuery = strings.ReplaceAll(query, "+", "%2B")
		wire.url = u.String()
		return wire, nil
	}

	switch encoding {
	case EncodingURL:
		wire.body = []byte(encodeForm(r.Parameters))
	default:
		body, err := json.Marshal(r.Parameters)
		if err != nil {
			return nil, fmt.Errorf("failed to encode json body: %w", err)
		}
		wire.body = body
	}

	return wire, nil
}

func sortedKeys(params Parameters) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// encodeQuery renders params as query items. Spaces become %20 so that a
// literal '+' never appears in the result.
func encodeQuery(params Parameters) string {
	pairs := make([]string, 0, len(params))
	for _, k := range sortedKeys(params) {
		pairs = append(pairs, queryEscape(k)+"="+queryEscape(params[k].String()))
	}
	return strings.Join(pairs, "&")
}

func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func encodeForm(params Parameters) string {
	pairs := make([]string, 0, len(params))
	for _, k := range sortedKeys(params) {
		pairs = append(pairs, percentEscape(k)+"="+percentEscape(params[k].String()))
	}
	return strings.Join(pairs, "&")
}

// percentEscape keeps letters, digits, marks and "-._*" as they are, maps
// space to '+' and percent-encodes every other byte.
func percentEscape(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteByte('+')
		case r == '-' || r == '.' || r == '_' || r == '*':
			b.WriteRune(r)
		case r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || unicode.IsNumber(r)):
			b.WriteRune(r)
		default:
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], r)
			for _, c := range buf[:n] {
				fmt.Fprintf(&b, "%%%02X", c)
			}
		}
	}

	return b.String()
}
