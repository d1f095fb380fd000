// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("ADMIN_PASSWORD", "test-secret")
	os.Setenv("ALLOWED_ORIGINS", "https://vote.example.org, http://localhost:5173")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, "postgres://test", cfg.DatabaseURL)
	require.Equal(t, "test-secret", cfg.AdminPassword)
	require.Equal(t, []string{"https://vote.example.org", "http://localhost:5173"}, cfg.AllowedOrigins)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "postgres://cli", "-admin-password", "s1"})
	require.NoError(t, err)

	// CLI should override env
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "postgres://cli", cfg.DatabaseURL)
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("DATABASE_URL", "postgres://test")
	os.Setenv("ADMIN_PASSWORD", "test-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	require.Equal(t, 4000, cfg.Port)
	require.Empty(t, cfg.AllowedOrigins)
}

func TestParseFlags_MissingRequired(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{})
	require.Error(t, err)

	os.Setenv("DATABASE_URL", "postgres://test")
	defer os.Clearenv()

	_, err = ParseFlags([]string{})
	require.Error(t, err, "admin password must be required")
}
