package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:8080"))
	assert.Equal(t, "localhost", a.Host)
	assert.Equal(t, 8080, a.Port)
	assert.Equal(t, "localhost:8080", a.String())
}

func TestNetAddress_Set_IP(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("127.0.0.1:9090"))
	assert.Equal(t, "127.0.0.1", a.Host)
	assert.Equal(t, 9090, a.Port)
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"no port", "localhost"},
		{"bad port", "localhost:abc"},
		{"negative port", "localhost:-1"},
		{"bad ip", "999.999.1.1:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			assert.Error(t, a.Set(tt.value))
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}

func TestValidate_Defaults(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "dataset-hub",
			TokenDuration: 1,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/db"}},
	}

	require.NoError(t, cfg.validate())
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		cfg  StructuredConfig
		want error
	}{
		{
			name: "missing DSN",
			cfg: StructuredConfig{
				App: App{TokenSignKey: "s", TokenIssuer: "i", TokenDuration: 1},
			},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "unknown driver",
			cfg: StructuredConfig{
				App:     App{TokenSignKey: "s", TokenIssuer: "i", TokenDuration: 1},
				Storage: Storage{DB: DB{Driver: "oracle", DSN: "dsn"}},
			},
			want: ErrInvalidStorageConfigs,
		},
		{
			name: "missing token settings",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{DSN: "dsn"}},
			},
			want: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
