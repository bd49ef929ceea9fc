package template

import (
	"fmt"
	"path"

	"github.com/type3-dev/type3/internal/config"
	"github.com/type3-dev/type3/pkg/models"
)

// VariantKey is the subset of a configuration record one unit depends on.
// Fields outside the unit's axes are left at their zero value.
type VariantKey struct {
	Name           string
	Language       models.Language
	PackageManager models.PackageManager
	Database       models.Database
	Family         models.Family
	Auth           bool
	Log            bool
}

// FullKey returns the key with every axis populated.
func FullKey(p config.Project) VariantKey {
	return VariantKey{
		Name:           p.Name(),
		Language:       p.Language(),
		PackageManager: p.PackageManager(),
		Database:       p.Database(),
		Family:         p.Database().Profile().Family,
		Auth:           p.Auth(),
		Log:            p.Log(),
	}
}

// Mask keeps only the fields named by axes.
func (k VariantKey) Mask(axes Axis) VariantKey {
	var m VariantKey
	if axes&AxisName != 0 {
		m.Name = k.Name
	}
	if axes&AxisLanguage != 0 {
		m.Language = k.Language
	}
	if axes&AxisPackageManager != 0 {
		m.PackageManager = k.PackageManager
	}
	if axes&AxisDatabase != 0 {
		m.Database = k.Database
	}
	if axes&AxisFamily != 0 {
		m.Family = k.Family
	}
	if axes&AxisAuth != 0 {
		m.Auth = k.Auth
	}
	if axes&AxisLog != 0 {
		m.Log = k.Log
	}
	return m
}

func (k VariantKey) persistent() bool {
	return k.Family == models.FamilyDocument || k.Family == models.FamilyRelational || k.Database.Persistent()
}

// Variant is the resolved template for one unit.
type Variant struct {
	Unit     Unit
	Key      VariantKey
	Template string // path inside the template filesystem
}

// Select resolves the variant of unit for p. It performs no I/O.
func Select(unit Unit, p config.Project) (Variant, error) {
	return SelectKey(unit, FullKey(p))
}

// SelectKey resolves the variant of unit for an already built key. The key
// is masked to the unit's axes first.
func SelectKey(unit Unit, full VariantKey) (Variant, error) {
	spec, ok := unitSpecs[unit]
	if !ok {
		return Variant{}, fmt.Errorf("%w: unit %q", ErrUnknownVariant, unit)
	}
	key := full.Mask(spec.axes)

	if spec.axes&AxisLanguage != 0 && !key.Language.IsValid() {
		return Variant{}, fmt.Errorf("%w: %s language %q", ErrUnknownVariant, unit, key.Language)
	}
	if spec.axes&AxisDatabase != 0 && !key.Database.IsValid() {
		return Variant{}, fmt.Errorf("%w: %s database %q", ErrUnknownVariant, unit, key.Database)
	}
	if spec.axes&AxisPackageManager != 0 && !key.PackageManager.IsValid() {
		return Variant{}, fmt.Errorf("%w: %s package manager %q", ErrUnknownVariant, unit, key.PackageManager)
	}

	name := string(unit)
	if spec.byLanguage {
		name = path.Join(name, key.Language.Ext())
	}
	if spec.byFamily {
		switch key.Family {
		case models.FamilyDocument, models.FamilyRelational, models.FamilyNone:
			name = path.Join(name, string(key.Family))
		default:
			return Variant{}, fmt.Errorf("%w: %s family %q", ErrUnknownVariant, unit, key.Family)
		}
	}

	return Variant{Unit: unit, Key: key, Template: name + ".tmpl"}, nil
}

// Scheduled reports whether unit is generated for key.
func Scheduled(unit Unit, key VariantKey) bool {
	spec, ok := unitSpecs[unit]
	return ok && spec.scheduled(key)
}

// Module returns the slash-separated module path of unit without an
// extension. For non-source units this equals the file path.
func Module(unit Unit, key VariantKey) string {
	spec, ok := unitSpecs[unit]
	if !ok {
		return ""
	}
	return spec.module(key)
}

// TargetPath returns the file path of unit relative to the project root.
func TargetPath(unit Unit, key VariantKey) string {
	spec, ok := unitSpecs[unit]
	if !ok {
		return ""
	}
	p := spec.module(key)
	if spec.source {
		p += "." + key.Language.Ext()
	}
	return p
}

// Layout returns the module path of every unit scheduled for key, indexed
// by unit name. Templates resolve their imports through it, so a
// reference to a unit that is not generated fails to render.
func Layout(key VariantKey) map[string]string {
	layout := make(map[string]string, len(unitSpecs))
	for _, u := range Units() {
		if Scheduled(u, key) {
			layout[string(u)] = Module(u, key)
		}
	}
	return layout
}
