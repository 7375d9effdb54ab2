package db

import (
	"testing"

	"github.com/unklstewy/flight-director/pkg/config"
)

// TestConnect tests database connection configuration handling.
func TestConnect(t *testing.T) {
	t.Run("Connection string formatting", func(t *testing.T) {
		cfg := config.DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			Username:     "testuser",
			Password:     "testpass",
			Database:     "testdb",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
		}

		// This will fail to connect if no database is running; either
		// way the construction path is exercised.
		db, err := Connect(cfg)
		if err != nil {
			if err.Error() == "" {
				t.Error("Expected non-empty error message")
			}
			return
		}

		if db.DB == nil {
			t.Error("Expected DB field to be initialized")
		}
		if db.config.Host != cfg.Host {
			t.Errorf("Expected host %s, got %s", cfg.Host, db.config.Host)
		}
		db.Close()
	})
}

// TestSchemaEmbedded verifies the schema file ships with the binary.
func TestSchemaEmbedded(t *testing.T) {
	data, err := schemaSQL.ReadFile("schema.sql")
	if err != nil {
		t.Fatalf("Expected embedded schema, got: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Expected non-empty schema")
	}
}
