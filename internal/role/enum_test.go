package role_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/okrun-lambda/internal/role"
)

func TestParse(t *testing.T) {
	cases := map[string]role.ID{
		"admin":   role.Admin,
		"Admin":   role.Admin,
		"MANAGER": role.Manager,
		"member":  role.Member,
		"2":       role.Manager,
	}
	for in, want := range cases {
		got, err := role.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := role.Parse("owner")
	assert.Error(t, err)
	_, err = role.Parse("9")
	assert.Error(t, err)
}

func TestUnmarshalJSON(t *testing.T) {
	var body struct {
		Role *role.ID `json:"role"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"role": 2}`), &body))
	assert.Equal(t, role.Manager, *body.Role)

	require.NoError(t, json.Unmarshal([]byte(`{"role": "member"}`), &body))
	assert.Equal(t, role.Member, *body.Role)

	assert.Error(t, json.Unmarshal([]byte(`{"role": 7}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"role": "guest"}`), &body))
	assert.Error(t, json.Unmarshal([]byte(`{"role": true}`), &body))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, role.Admin, role.Admin.Normalize())
	assert.Equal(t, role.Member, role.ID(0).Normalize())
	assert.Equal(t, role.Member, role.ID(42).Normalize())
}
