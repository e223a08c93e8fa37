package config

import "testing"

func TestApplyDefaults_PasswordStrength(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.PasswordStrength == nil {
		t.Fatal("expected a populated passwordStrength section")
	}
	if cfg.PasswordStrength.MinLength != 8 {
		t.Errorf("expected default min length 8, got %d", cfg.PasswordStrength.MinLength)
	}
	if !cfg.PasswordStrength.RequireUppercase || !cfg.PasswordStrength.RequireNumbers || !cfg.PasswordStrength.RequireSpecial {
		t.Error("expected all character class requirements enabled by default")
	}
}

func TestApplyDefaults_KeepsExplicitPasswordStrength(t *testing.T) {
	cfg := &Config{PasswordStrength: &PasswordStrengthConfig{MinLength: 12}}
	applyDefaults(cfg)

	if cfg.PasswordStrength.MinLength != 12 {
		t.Errorf("expected configured min length 12, got %d", cfg.PasswordStrength.MinLength)
	}
	if cfg.PasswordStrength.RequireUppercase {
		t.Error("explicit section must keep its flags as written")
	}
}
