package interpolation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestExpand(t *testing.T) {
	t.Parallel()

	env := map[string]string{"KEY": "secret", "EMPTY": "", "A": "a", "B": "b"}
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"empty string", "", "", false},
		{"no references", "python3", "python3", false},
		{"single reference", "${KEY}", "secret", false},
		{"reference in middle", "pre_${KEY}_post", "pre_secret_post", false},
		{"multiple references", "${A}/${B}", "a/b", false},
		{"set but empty wins over default", "${EMPTY:fallback}", "", false},
		{"default used when unset", "${MISSING:fallback}", "fallback", false},
		{"empty default", "${MISSING:}", "", false},
		{"default with colon", "${MISSING:http://localhost:3001}", "http://localhost:3001", false},
		{"undefined is kept", "${MISSING}", "${MISSING}", true},
		{"invalid name is literal", "${1BAD}", "${1BAD}", false},
		{"dollar without braces is literal", "$KEY", "$KEY", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Expand(tc.input, mapLookup(env))
			assert.Equal(t, tc.expected, got)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrUndefinedVariable)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("INTERPOLATION_TEST_VAR", "from-env")

	got, err := ExpandEnvVars("${INTERPOLATION_TEST_VAR}")
	require.NoError(t, err)
	assert.Equal(t, "from-env", got)
}

func TestExpandStruct(t *testing.T) {
	t.Parallel()

	type nested struct {
		Path *string `env_interpolation:"yes"`
		Raw  *string
	}
	type sample struct {
		Name    string   `env_interpolation:"yes"`
		Origins []string `env_interpolation:"yes"`
		Skipped string
		Nested  nested
		Unset   *string `env_interpolation:"yes"`
	}

	t.Run("expands tagged fields", func(t *testing.T) {
		t.Parallel()
		path, raw := "${A}/bin", "${A}"
		s := sample{
			Name:    "${KEY}",
			Origins: []string{"https://${A}.example.com", "https://static.example.com"},
			Skipped: "${KEY}",
			Nested:  nested{Path: &path, Raw: &raw},
		}

		require.NoError(t, ExpandStruct(&s, mapLookup(map[string]string{"KEY": "k", "A": "a"})))
		assert.Equal(t, "k", s.Name)
		assert.Equal(t, []string{"https://a.example.com", "https://static.example.com"}, s.Origins)
		assert.Equal(t, "${KEY}", s.Skipped)
		assert.Equal(t, "a/bin", *s.Nested.Path)
		assert.Equal(t, "${A}", *s.Nested.Raw)
		assert.Nil(t, s.Unset)
	})

	t.Run("reports every missing variable", func(t *testing.T) {
		t.Parallel()
		s := sample{Name: "${NOPE}", Origins: []string{"${ALSO_NOPE}"}}

		err := ExpandStruct(&s, mapLookup(nil))
		require.ErrorIs(t, err, ErrUndefinedVariable)
		assert.Contains(t, err.Error(), "NOPE")
		assert.Contains(t, err.Error(), "Origins[0]")
	})

	t.Run("rejects non-pointers", func(t *testing.T) {
		t.Parallel()
		require.Error(t, ExpandStruct(sample{}, nil))
		require.Error(t, ExpandStruct((*sample)(nil), nil))
	})
}
