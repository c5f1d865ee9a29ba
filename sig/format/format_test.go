package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	t.Run("case insensitive", func(t *testing.T) {
		require.Equal(t, Raw, FromName("Raw"))
		require.Equal(t, Raw, FromName("raw"))
		require.Equal(t, Raw, FromName("RAW"))
		require.Equal(t, X509, FromName("X509"))
		require.Equal(t, X509, FromName("x509"))
	})

	t.Run("unrecognized", func(t *testing.T) {
		require.Equal(t, Unknown, FromName(""))
		require.Equal(t, Unknown, FromName("DER"))
		require.Equal(t, Unknown, FromName("Raw "))
	})
}

func TestString(t *testing.T) {
	require.Equal(t, "Raw", Raw.String())
	require.Equal(t, "X509", X509.String())
	require.Equal(t, "Unknown", Unknown.String())
	require.Equal(t, "Unknown", ID(42).String())
}
