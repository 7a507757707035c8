package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Shop.ID != "main-street" {
		t.Errorf("expected default shop ID, got %q", cfg.Shop.ID)
	}
	if cfg.Shop.Currency != "£" {
		t.Errorf("expected default currency, got %q", cfg.Shop.Currency)
	}
	if cfg.Shop.FleetSeed != 0 {
		t.Errorf("expected default fleet seed 0, got %d", cfg.Shop.FleetSeed)
	}
	if cfg.Logging.Path != "stderr" {
		t.Errorf("expected default log path stderr, got %q", cfg.Logging.Path)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SHOP_ID", "station-road")
	t.Setenv("CURRENCY_SYMBOL", "$")
	t.Setenv("FLEET_SEED", "42")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Shop.ID != "station-road" || cfg.Shop.Currency != "$" || cfg.Shop.FleetSeed != 42 {
		t.Errorf("overrides not applied: %+v", cfg.Shop)
	}
}

func TestLoad_BadFleetSeed(t *testing.T) {
	t.Setenv("FLEET_SEED", "lots")

	if _, err := Load(""); err == nil {
		t.Error("expected an error for a non-numeric FLEET_SEED")
	}
}
