package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnvelope_DataArray(t *testing.T) {
	body := `{"data":[` + thorJSON + `]}`

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))

	chars := env.Characters()
	require.Len(t, chars, 1)
	name, _ := chars[0].Name()
	require.Equal(t, "Thor", name)
	require.Equal(t, 1, env.Data.Count)
}

func TestEnvelope_DataContainer(t *testing.T) {
	body := `{
		"code": 200,
		"status": "Ok",
		"data": {
			"offset": 20,
			"limit": 20,
			"total": 1562,
			"count": 2,
			"results": [` + thorJSON + `, {"name": "Thor (Goddess of Thunder)", "description": "", "thumbnail": {"path": "p", "extension": "jpg"}}]
		}
	}`

	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env))

	require.Equal(t, 200, env.Code)
	require.Equal(t, 20, env.Data.Offset)
	require.Equal(t, 1562, env.Data.Total)
	require.Len(t, env.Characters(), 2)
}

func TestEnvelope_EmptyResults(t *testing.T) {
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"data":{"results":[]}}`), &env))
	require.Empty(t, env.Characters())
}

func TestEnvelope_SchemaViolations(t *testing.T) {
	tcs := []struct {
		name string
		in   string
	}{
		{"no_data", `{"code": 200}`},
		{"data_string", `{"data": "nope"}`},
		{"record_without_thumbnail", `{"data": [{"name": "Thor"}]}`},
		{"container_without_results", `{"data": {"offset": 0}}`},
		{"name_number", `{"data": [{"name": 1, "thumbnail": {"path": "p", "extension": "jpg"}}]}`},
		{"negative_offset", `{"data": {"offset": -1, "results": []}}`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var env Envelope
			require.Error(t, json.Unmarshal([]byte(tc.in), &env))
		})
	}
}

func TestValidateEnvelope_MalformedJSON(t *testing.T) {
	require.Error(t, ValidateEnvelope([]byte(`{"data": [`)))
}
