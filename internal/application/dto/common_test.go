package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Obras-api/internal/application/dto"
)

func TestStringList_CoercionDeStringSuelto(t *testing.T) {
	// El dashboard a veces manda un solo worker como string, no como arreglo.
	var l dto.StringList
	require.NoError(t, json.Unmarshal([]byte(`"w-1"`), &l))
	assert.Equal(t, dto.StringList{"w-1"}, l)

	require.NoError(t, json.Unmarshal([]byte(`["w-1", "w-2"]`), &l))
	assert.Equal(t, dto.StringList{"w-1", "w-2"}, l)

	require.NoError(t, json.Unmarshal([]byte(`[]`), &l))
	assert.Empty(t, l)
}

func TestStringList_TipoInvalido(t *testing.T) {
	var l dto.StringList
	assert.Error(t, json.Unmarshal([]byte(`42`), &l))
	assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &l))
}

func TestEnvelopes(t *testing.T) {
	ok, err := json.Marshal(dto.OK(map[string]string{"k": "v"}, ""))
	require.NoError(t, err)
	// Sin mensaje la clave message no aparece; data siempre está presente.
	assert.JSONEq(t, `{"success": true, "data": {"k": "v"}}`, string(ok))

	fail, err := json.Marshal(dto.Fail("no encontrado"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "message": "no encontrado"}`, string(fail))

	fields, err := json.Marshal(dto.FailFields("error de validación", map[string]string{"name": "es requerido"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": false, "message": "error de validación", "errors": {"name": "es requerido"}}`, string(fields))
}
