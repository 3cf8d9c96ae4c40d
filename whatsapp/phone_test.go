package whatsapp

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	require.Equal(t, "6281234567", NormalizePhone("081234567"))
	require.Equal(t, "6281234567", NormalizePhone("+6281234567"))
	require.Equal(t, "6281234567", NormalizePhone("81234567"))
	require.Equal(t, "6281234567", NormalizePhone("6281234567"))
}

func TestNormalizePhoneStripsSeparators(t *testing.T) {
	require.Equal(t, "6281234567", NormalizePhone(" 0812-34 567 "))
	require.Equal(t, "6281234567", NormalizePhone("+62 812-34-567"))
}

func TestNormalizePhoneUnrecognized(t *testing.T) {
	require.Equal(t, "1234", NormalizePhone("1234"))
	require.Equal(t, "", NormalizePhone(""))
	require.Equal(t, "", NormalizePhone("   "))
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	phones := []string{"081234567", "+6281234567", "81234567", "1234"}
	for _, phone := range phones {
		once := NormalizePhone(phone)
		require.Equal(t, once, NormalizePhone(once))
	}
}
