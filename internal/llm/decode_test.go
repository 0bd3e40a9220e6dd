package llm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeJSONObjectPlain(t *testing.T) {
	out, err := DecodeJSONObject([]byte(`{"vendor": {"value": "ACME"}}`))
	require.NoError(t, err)
	require.Contains(t, out, "vendor")
}

func TestDecodeJSONObjectStripsFence(t *testing.T) {
	raw := "```json\n{\"total\": 12.5}\n```"
	out, err := DecodeJSONObject([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, 12.5, out["total"])
}

func TestDecodeJSONObjectStripsBareFence(t *testing.T) {
	raw := "```\n{\"total\": 1}\n```"
	out, err := DecodeJSONObject([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, float64(1), out["total"])
}

func TestDecodeJSONObjectRejectsProse(t *testing.T) {
	_, err := DecodeJSONObject([]byte("Here is the data you asked for."))
	require.Error(t, err)
}

func TestDecodeJSONObjectRejectsNonObject(t *testing.T) {
	_, err := DecodeJSONObject([]byte(`[1, 2, 3]`))
	require.Error(t, err)
}

func TestValidateAgainstContract(t *testing.T) {
	contract := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vendor": map[string]any{"type": "string"},
		},
		"required":             []string{"vendor"},
		"additionalProperties": false,
	}

	require.NoError(t, ValidateAgainstContract(contract, []byte(`{"vendor":"ACME"}`)))
	require.Error(t, ValidateAgainstContract(contract, []byte(`{}`)))
	require.Error(t, ValidateAgainstContract(contract, []byte(`{"vendor":"ACME","extra":1}`)))
}
