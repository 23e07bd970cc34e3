package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newJWTer() *JWTer {
	return &JWTer{
		Secret:     []byte("test-secret"),
		Issuer:     "test",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}
}

func TestIssuePairAndParse(t *testing.T) {
	j := newJWTer()
	pair, err := j.IssuePair("42", "user")
	require.NoError(t, err)
	require.NotEqual(t, pair.Access, pair.Refresh)

	c, err := j.ParseKind(pair.Access, KindAccess)
	require.NoError(t, err)
	require.Equal(t, "42", c.UID)
	require.Equal(t, "user", c.Role)
	require.NotEmpty(t, c.ID) // jti

	rc, err := j.ParseKind(pair.Refresh, KindRefresh)
	require.NoError(t, err)
	require.NotEqual(t, c.ID, rc.ID)
}

func TestParseKindRejectsWrongKind(t *testing.T) {
	j := newJWTer()
	pair, err := j.IssuePair("42", "user")
	require.NoError(t, err)

	_, err = j.ParseKind(pair.Access, KindRefresh)
	require.Error(t, err)
	_, err = j.ParseKind(pair.Refresh, KindAccess)
	require.Error(t, err)
}

func TestParseRejectsWrongSecretAndIssuer(t *testing.T) {
	j := newJWTer()
	pair, err := j.IssuePair("42", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("other"), Issuer: "test", AccessTTL: time.Minute, RefreshTTL: time.Hour}
	_, err = other.Parse(pair.Access)
	require.Error(t, err)

	wrongIssuer := &JWTer{Secret: []byte("test-secret"), Issuer: "someone-else", AccessTTL: time.Minute, RefreshTTL: time.Hour}
	_, err = wrongIssuer.Parse(pair.Access)
	require.Error(t, err)
}
