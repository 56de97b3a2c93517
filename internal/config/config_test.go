package config

import (
	"os"
	"testing"
)

func TestLoad_WithDefaults(t *testing.T) {
	envVars := []string{
		"APP_NAME", "APP_ENVIRONMENT", "APP_DEBUG",
		"SERVER_HOST", "SERVER_PORT",
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD", "DATABASE_DBNAME",
		"REDIS_HOST", "REDIS_PORT",
		"JWT_SECRET",
		"INVENTORY_SERVICE_FEE_PERCENT", "INVENTORY_LOW_STOCK_THRESHOLD",
		"INVENTORY_LOCALE", "INVENTORY_CURRENCY",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "tickethub" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "tickethub")
	}

	if cfg.App.Environment != "development" {
		t.Errorf("App.Environment = %q, want %q", cfg.App.Environment, "development")
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}

	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}

	if cfg.Redis.Port != 6379 {
		t.Errorf("Redis.Port = %d, want %d", cfg.Redis.Port, 6379)
	}

	if cfg.Inventory.ServiceFeePercent != 2.5 {
		t.Errorf("Inventory.ServiceFeePercent = %v, want %v", cfg.Inventory.ServiceFeePercent, 2.5)
	}

	if cfg.Inventory.LowStockThreshold != 10 {
		t.Errorf("Inventory.LowStockThreshold = %d, want %d", cfg.Inventory.LowStockThreshold, 10)
	}

	if cfg.Inventory.Locale != "en-US" {
		t.Errorf("Inventory.Locale = %q, want %q", cfg.Inventory.Locale, "en-US")
	}

	if cfg.Inventory.Currency != "USD" {
		t.Errorf("Inventory.Currency = %q, want %q", cfg.Inventory.Currency, "USD")
	}
}

func TestLoad_WithEnvOverride(t *testing.T) {
	os.Setenv("APP_NAME", "test-app")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DATABASE_HOST", "db.example.com")
	os.Setenv("INVENTORY_LOW_STOCK_THRESHOLD", "25")
	os.Setenv("INVENTORY_CURRENCY", "EUR")
	defer func() {
		os.Unsetenv("APP_NAME")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("DATABASE_HOST")
		os.Unsetenv("INVENTORY_LOW_STOCK_THRESHOLD")
		os.Unsetenv("INVENTORY_CURRENCY")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "test-app" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "test-app")
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}

	if cfg.Database.Host != "db.example.com" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "db.example.com")
	}

	if cfg.Inventory.LowStockThreshold != 25 {
		t.Errorf("Inventory.LowStockThreshold = %d, want %d", cfg.Inventory.LowStockThreshold, 25)
	}

	if cfg.Inventory.Currency != "EUR" {
		t.Errorf("Inventory.Currency = %q, want %q", cfg.Inventory.Currency, "EUR")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	if dsn := cfg.DSN(); dsn != expected {
		t.Errorf("DSN() = %q, want %q", dsn, expected)
	}
}

func TestRedisConfig_Addr(t *testing.T) {
	cfg := RedisConfig{
		Host: "redis.example.com",
		Port: 6380,
	}

	expected := "redis.example.com:6380"
	if addr := cfg.Addr(); addr != expected {
		t.Errorf("Addr() = %q, want %q", addr, expected)
	}
}

func TestValidate_RejectsDefaultSecretInProduction(t *testing.T) {
	os.Setenv("APP_ENVIRONMENT", "production")
	defer os.Unsetenv("APP_ENVIRONMENT")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail with default JWT secret in production")
	}
}

func TestValidate_RejectsNegativeInventoryKnobs(t *testing.T) {
	os.Setenv("INVENTORY_SERVICE_FEE_PERCENT", "-1")
	defer os.Unsetenv("INVENTORY_SERVICE_FEE_PERCENT")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() should fail with negative service fee percent")
	}
}
