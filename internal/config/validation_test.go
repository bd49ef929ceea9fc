package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/type3-dev/type3/pkg/models"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	p, err := New(Options{})
	if err != nil {
		t.Fatalf("New(Options{}) error: %v", err)
	}
	if !p.Valid() {
		t.Error("record from New should be valid")
	}
	if p.Name() != DefaultProjectName {
		t.Errorf("Name() = %q, want %q", p.Name(), DefaultProjectName)
	}
	if p.Language() != models.LanguageJavaScript || p.Ext() != "js" {
		t.Errorf("Language() = %q, Ext() = %q", p.Language(), p.Ext())
	}
	if p.PackageManager() != models.PackageManagerNPM {
		t.Errorf("PackageManager() = %q", p.PackageManager())
	}
	if p.Database() != models.DatabaseNone {
		t.Errorf("Database() = %q", p.Database())
	}
	if p.Auth() {
		t.Error("Auth() should default to false")
	}
	if !p.Log() {
		t.Error("Log() should default to true")
	}
}

func TestNewParsesAliases(t *testing.T) {
	t.Parallel()

	p, err := New(Options{
		Name:           "api",
		Language:       "TypeScript",
		PackageManager: "PNPM",
		Database:       "postgres",
		Auth:           Bool(true),
		Log:            Bool(false),
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if p.Language() != models.LanguageTypeScript || p.Ext() != "ts" {
		t.Errorf("Language() = %q", p.Language())
	}
	if p.PackageManager() != models.PackageManagerPNPM {
		t.Errorf("PackageManager() = %q", p.PackageManager())
	}
	if p.Database() != models.DatabasePostgreSQL {
		t.Errorf("Database() = %q", p.Database())
	}
	if !p.Auth() || p.Log() {
		t.Errorf("Auth() = %v, Log() = %v", p.Auth(), p.Log())
	}
}

func TestNewRejectsInvalidNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"blank", "   "},
		{"dot", "."},
		{"dotdot", ".."},
		{"slash", "a/b"},
		{"backslash", `a\b`},
		{"space", "my app"},
		{"too long", strings.Repeat("a", MaxNameLength+1)},
		{"uppercase", "MyAPI"},
		{"leading underscore", "_private"},
		{"leading dot", ".hidden"},
		{"leading dash", "-api"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p, err := New(Options{Name: tt.input})
			if err == nil {
				t.Fatalf("New(%q) expected error", tt.input)
			}
			if !errors.Is(err, ErrInvalidName) {
				t.Errorf("expected ErrInvalidName, got: %v", err)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got: %v", err)
			}
			if p.Valid() {
				t.Error("failed New must return the zero record")
			}
		})
	}
}

func TestNewAcceptsPackageNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"api", "shop.api", "api_v2", "2fa-service", "a"} {
		p, err := New(Options{Name: name})
		if err != nil {
			t.Errorf("New(%q) error: %v", name, err)
			continue
		}
		if p.Name() != name {
			t.Errorf("Name() = %q, want %q", p.Name(), name)
		}
	}
}

func TestNewCollectsAllErrors(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Name: "ok", Language: "ruby", PackageManager: "bun", Database: "PosgreSQL"})
	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	if len(ve.Errors) != 3 {
		t.Fatalf("got %d errors, want 3: %v", len(ve.Errors), err)
	}
	fields := []string{"language", "package_manager", "database"}
	for i, f := range fields {
		if ve.Errors[i].Field != f {
			t.Errorf("Errors[%d].Field = %q, want %q", i, ve.Errors[i].Field, f)
		}
	}
	if !errors.Is(err, ErrUnknownValue) {
		t.Error("expected ErrUnknownValue in chain")
	}
}

func TestZeroProjectInvalid(t *testing.T) {
	t.Parallel()

	var p Project
	if p.Valid() {
		t.Error("zero Project must not be valid")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := Defaults()
	overlay := Options{Database: "mongodb", Log: Bool(false)}
	got := Merge(base, overlay)

	if got.Name != DefaultProjectName {
		t.Errorf("Name = %q, want base value", got.Name)
	}
	if got.Database != "mongodb" {
		t.Errorf("Database = %q, want overlay value", got.Database)
	}
	if got.Log == nil || *got.Log {
		t.Error("Log should be overridden to false")
	}
	if got.Auth == nil || *got.Auth {
		t.Error("Auth should keep the base value false")
	}
}

func TestProjectOptionsRoundTrip(t *testing.T) {
	t.Parallel()

	p, err := New(Options{Name: "svc", Language: "ts", Database: "mysql", Auth: Bool(true)})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	q, err := New(p.Options())
	if err != nil {
		t.Fatalf("New(p.Options()) error: %v", err)
	}
	if p != q {
		t.Errorf("round trip changed the record: %+v vs %+v", p, q)
	}
}
