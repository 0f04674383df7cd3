package safety_test

import (
	"marketplace/internal/safety"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetector_EmbeddedDictionary(t *testing.T) {
	d := safety.New()

	require.True(t, d.ContainsDangerousContent("Selling a HANDGUN, barely used"))
	require.False(t, d.ContainsDangerousContent("Vintage lamp in good condition"))
	require.False(t, d.ContainsDangerousContent("   "))

	require.Equal(t, []string{"ammunition", "counterfeit"},
		d.FindDangerousWords("Counterfeit watches and Ammunition"))
	require.Empty(t, d.FindDangerousWords(""))
}

func TestDetector_LoadQuotesEntries(t *testing.T) {
	d := safety.New()
	require.NoError(t, d.Load(strings.NewReader("a.b\n\n  (x)  \n")))

	require.True(t, d.ContainsDangerousContent("contains A.B here"))
	require.False(t, d.ContainsDangerousContent("contains axb here"))
	require.Equal(t, []string{"(x)"}, d.FindDangerousWords("see (X)"))
	// previous dictionary is replaced
	require.False(t, d.ContainsDangerousContent("handgun"))
}

func TestNewFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("widget\n"), 0o600))

	d, err := safety.NewFromFile(path)
	require.NoError(t, err)
	require.True(t, d.ContainsDangerousContent("a WIDGET"))

	_, err = safety.NewFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)

	d, err = safety.NewFromFile("")
	require.NoError(t, err)
	require.True(t, d.ContainsDangerousContent("grenade"))
}

func TestDetector_MatchesInsideWords(t *testing.T) {
	d := safety.New()
	require.NoError(t, d.Load(strings.NewReader("gun\n")))

	require.True(t, d.ContainsDangerousContent("shotguns for sale"))
	require.Equal(t, []string{"gun"}, d.FindDangerousWords("HANDGUN"))
}
