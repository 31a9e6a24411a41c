package chunk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIDLiteral(t *testing.T) {
	cases := []struct {
		name string
		id   ID
		want string
	}{
		{"number", NumberID(42), "42"},
		{"negative", NumberID(-7), "-7"},
		{"string", StringID("vendors"), `"vendors"`},
		{"path", StringID("a/c/chunk"), `"a/c/chunk"`},
		{"quotes", StringID(`say "hi"`), `"say \"hi\""`},
		{"backslash", StringID(`dir\file`), `"dir\\file"`},
		{"html", StringID("<a&b>"), `"<a&b>"`},
		{"newline", StringID("a\nb"), `"a\nb"`},
		{"empty", StringID(""), `""`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.id.Literal())
		})
	}
}

func TestIDLiteralRoundTrips(t *testing.T) {
	for _, s := range []string{"plain", `q"uote`, "tab\tand\\slash", "ünïcode", "</script>"} {
		var got string
		require.NoError(t, json.Unmarshal([]byte(StringID(s).Literal()), &got))
		require.Equal(t, s, got)
	}
}

func TestIDString(t *testing.T) {
	require.Equal(t, "12", NumberID(12).String())
	require.Equal(t, "12", StringID("12").String())
	require.NotEqual(t, NumberID(12), StringID("12"))
	require.True(t, NumberID(12).IsNumber())
	require.False(t, StringID("12").IsNumber())
}

func TestIDUnmarshalJSON(t *testing.T) {
	var ids []ID
	require.NoError(t, json.Unmarshal([]byte(`[1, "main", "2", 42.0, 1e3, -0.0]`), &ids))
	require.Equal(t, []ID{NumberID(1), StringID("main"), StringID("2"), NumberID(42), NumberID(1000), NumberID(0)}, ids)

	var id ID
	require.Error(t, json.Unmarshal([]byte(`1.5`), &id))
	require.Error(t, json.Unmarshal([]byte(`{}`), &id))
	require.Error(t, json.Unmarshal([]byte(`1e30`), &id))
}

func TestIDMarshalJSON(t *testing.T) {
	out, err := json.Marshal([]ID{NumberID(3), StringID("x")})
	require.NoError(t, err)
	require.JSONEq(t, `[3, "x"]`, string(out))
}

func TestIDUnmarshalYAML(t *testing.T) {
	var ids []ID
	require.NoError(t, yaml.Unmarshal([]byte("[7, main, \"8\", 0x10, 42.0]"), &ids))
	require.Equal(t, []ID{NumberID(7), StringID("main"), StringID("8"), NumberID(16), NumberID(42)}, ids)

	var id ID
	require.Error(t, yaml.Unmarshal([]byte("{a: b}"), &id))
	require.Error(t, yaml.Unmarshal([]byte("1.5"), &id))
}
