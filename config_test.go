package tourweb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the test and restores it afterwards, so values
// loaded from a dotenv file do not leak into other tests.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{"TOURWEB_NAME", "TOURWEB_ADDR", "TOURWEB_STORE", "TOURWEB_ADMIN_WRITES_PER_MINUTE", "TOURWEB_STATIC_DIR"} {
		unsetEnv(t, k)
	}
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "Showcase360", cfg.Name)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "data/tourweb.db", cfg.Store)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, 30, cfg.AdminWritesPerMinute)
}

func TestLoadConfigFromEnvFileAndEnvironment(t *testing.T) {
	for _, k := range []string{"TOURWEB_NAME", "TOURWEB_STORE", "TOURWEB_COOKIE_SECURE", "TOURWEB_ADMIN_WRITES_PER_MINUTE"} {
		unsetEnv(t, k)
	}
	t.Setenv("TOURWEB_STORE", "memory:")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"TOURWEB_NAME=Tours Inc\nTOURWEB_STORE=sqlite:ignored.db\nTOURWEB_COOKIE_SECURE=true\nTOURWEB_ADMIN_WRITES_PER_MINUTE=5\n",
	), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Tours Inc", cfg.Name)
	assert.Equal(t, "memory:", cfg.Store, "process environment wins over the file")
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, 5, cfg.AdminWritesPerMinute)
}

func TestLoadConfigRejectsMalformedValues(t *testing.T) {
	t.Setenv("TOURWEB_ADMIN_WRITES_PER_MINUTE", "lots")
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitTags(" a, ,b ,"))
	assert.Equal(t, []string{"one", "two"}, SplitLines("one\r\n\r\n two \n"))
	assert.Equal(t, []string{}, FilterEmpty([]string{" ", ""}))
	assert.Equal(t, 0, formInt("x"))
	assert.Equal(t, 4, formInt(" 4 "))
	assert.Equal(t, []string{"a", "b"}, errorMessages(errors.Join(errors.New("a"), errors.New("b"))))
	assert.Nil(t, errorMessages(nil))
}
