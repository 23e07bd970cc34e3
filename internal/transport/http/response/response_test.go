package response

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDataIsAlwaysAList(t *testing.T) {
	r := OK("ok", map[string]any{"id": 1})
	require.Len(t, r.Data, 1)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":true,"message":"ok","data":[{"id":1}]}`, string(b))
}

func TestEmptyPayloadCollapsesToEmptyList(t *testing.T) {
	cases := []any{
		nil,
		[]int{},
		map[string]any{},
		"",
		(*struct{})(nil),
		0,
		int64(0),
		uint(0),
		0.0,
		false,
	}
	for _, payload := range cases {
		r := OK("ok", payload)
		require.NotNil(t, r.Data)
		require.Empty(t, r.Data)
	}

	for _, payload := range []any{1, -1, 0.5, true} {
		r := OK("ok", payload)
		require.Len(t, r.Data, 1)
	}

	b, err := json.Marshal(Fail("boom"))
	require.NoError(t, err)
	require.JSONEq(t, `{"status":false,"message":"boom","data":[]}`, string(b))
}

func TestListPayloadIsWrappedNotFlattened(t *testing.T) {
	r := OK("ok", []int{1, 2, 3})
	require.Len(t, r.Data, 1)

	b, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":true,"message":"ok","data":[[1,2,3]]}`, string(b))
}
