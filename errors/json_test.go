package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	k := Define("UserNotFound", CodeNotFound)
	err := WithContext(k.Wrap(stderrors.New("sql: no rows"), "user not found"), "id", "42")

	resp := ToJSON(err)

	require.Equal(t, &ErrorResponse{
		Kind:           "UserNotFound",
		Code:           "NOT_FOUND",
		Message:        "user not found",
		Classification: "PERMANENT",
		Context:        map[string]interface{}{"id": "42"},
	}, resp)
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("boom"))

	require.Equal(t, &ErrorResponse{
		Code:           "UNKNOWN",
		Message:        "boom",
		Classification: "PERMANENT",
	}, resp)
}

func TestToJSON_Nil(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestMarshalJSON(t *testing.T) {
	err := Define("UserNotFound", CodeNotFound).New("user not found")

	data, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	require.JSONEq(t,
		`{"kind":"UserNotFound","code":"NOT_FOUND","message":"user not found","classification":"PERMANENT"}`,
		string(data))
}

func TestMarshalJSON_ExcludesCause(t *testing.T) {
	err := Define("Storage", CodeDatabase).Wrap(stderrors.New("password=hunter2"), "storage failed")

	data, mErr := json.Marshal(err)
	require.NoError(t, mErr)
	require.NotContains(t, string(data), "hunter2")
}
