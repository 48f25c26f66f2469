package particles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindNone, KindSnow, KindAsh, KindEmbers} {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	k, err := ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, KindNone, k)

	k, err = ParseKind("  Embers ")
	require.NoError(t, err)
	assert.Equal(t, KindEmbers, k)

	_, err = ParseKind("rain")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestKind_Text(t *testing.T) {
	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("ash")))
	assert.Equal(t, KindAsh, k)
	assert.Error(t, k.UnmarshalText([]byte("fog")))

	text, err := KindSnow.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "snow", string(text))

	_, err = Kind(42).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, "Kind(42)", Kind(42).String())
}

func TestKinds_AllHaveParams(t *testing.T) {
	for _, k := range Kinds() {
		_, ok := params(k)
		assert.True(t, ok, k.String())
	}
	_, ok := params(KindNone)
	assert.False(t, ok)
}
