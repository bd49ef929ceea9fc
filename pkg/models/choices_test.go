package models_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/type3-dev/type3/pkg/models"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input   string
		want    models.Language
		wantErr bool
	}{
		{"javascript", models.LanguageJavaScript, false},
		{"JavaScript", models.LanguageJavaScript, false},
		{"js", models.LanguageJavaScript, false},
		{"TypeScript", models.LanguageTypeScript, false},
		{" ts ", models.LanguageTypeScript, false},
		{"coffeescript", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := models.ParseLanguage(tt.input)
			if tt.wantErr {
				if !errors.Is(err, models.ErrUnknownChoice) {
					t.Fatalf("ParseLanguage(%q) error = %v, want ErrUnknownChoice", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLanguage(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLanguage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDatabase(t *testing.T) {
	tests := []struct {
		input string
		want  models.Database
	}{
		{"MongoDB", models.DatabaseMongoDB},
		{"mongo", models.DatabaseMongoDB},
		{"MySQL", models.DatabaseMySQL},
		{"PostgreSQL", models.DatabasePostgreSQL},
		{"postgres", models.DatabasePostgreSQL},
		{"PG", models.DatabasePostgreSQL},
		{"None", models.DatabaseNone},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := models.ParseDatabase(tt.input)
			if err != nil {
				t.Fatalf("ParseDatabase(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDatabase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if _, err := models.ParseDatabase("PosgreSQL"); !errors.Is(err, models.ErrUnknownChoice) {
		t.Errorf("misspelled database should be rejected, got %v", err)
	}
}

func TestParsePackageManager(t *testing.T) {
	for _, m := range models.ValidPackageManagers() {
		got, err := models.ParsePackageManager(string(m))
		if err != nil || got != m {
			t.Errorf("ParsePackageManager(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := models.ParsePackageManager("bun"); err == nil {
		t.Error("expected error for bun")
	}
}

func TestLanguageExt(t *testing.T) {
	if got := models.LanguageJavaScript.Ext(); got != "js" {
		t.Errorf("JavaScript ext = %q, want js", got)
	}
	if got := models.LanguageTypeScript.Ext(); got != "ts" {
		t.Errorf("TypeScript ext = %q, want ts", got)
	}
}

func TestRunScript(t *testing.T) {
	tests := []struct {
		pm   models.PackageManager
		want string
	}{
		{models.PackageManagerNPM, "npm run dev"},
		{models.PackageManagerYarn, "yarn dev"},
		{models.PackageManagerPNPM, "pnpm dev"},
	}
	for _, tt := range tests {
		if got := tt.pm.RunScript("dev"); got != tt.want {
			t.Errorf("%s.RunScript(dev) = %q, want %q", tt.pm, got, tt.want)
		}
	}
}

func TestDatabaseProfile(t *testing.T) {
	tests := []struct {
		db       models.Database
		family   models.Family
		dialect  string
		packages []string
	}{
		{models.DatabaseMongoDB, models.FamilyDocument, "", []string{"mongoose"}},
		{models.DatabaseMySQL, models.FamilyRelational, "mysql", []string{"mysql2", "sequelize"}},
		{models.DatabasePostgreSQL, models.FamilyRelational, "postgres", []string{"pg", "pg-hstore", "sequelize"}},
		{models.DatabaseNone, models.FamilyNone, "", nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.db), func(t *testing.T) {
			p := tt.db.Profile()
			if p.Family != tt.family {
				t.Errorf("Family = %q, want %q", p.Family, tt.family)
			}
			if p.Dialect != tt.dialect {
				t.Errorf("Dialect = %q, want %q", p.Dialect, tt.dialect)
			}
			if !slices.Equal(p.Packages, tt.packages) {
				t.Errorf("Packages = %v, want %v", p.Packages, tt.packages)
			}
			if tt.db.Persistent() != (tt.db != models.DatabaseNone) {
				t.Errorf("Persistent() = %v", tt.db.Persistent())
			}
		})
	}
}

func TestDatabaseProfileIsCopy(t *testing.T) {
	p := models.DatabaseMySQL.Profile()
	p.Packages[0] = "mutated"
	if models.DatabaseMySQL.Profile().Packages[0] != "mysql2" {
		t.Error("Profile() must not expose the shared package slice")
	}
}

func TestUnknownDatabase(t *testing.T) {
	d := models.Database("oracle")
	if d.IsValid() {
		t.Error("oracle should not be valid")
	}
	if d.Persistent() {
		t.Error("unknown database must not be persistent")
	}
	if d.Profile().Family != "" {
		t.Errorf("unknown database family = %q, want empty", d.Profile().Family)
	}
}
