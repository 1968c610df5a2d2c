package extract

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineFromDocument(t *testing.T) {
	root := t.TempDir()
	lc := newTestLocale(t, root)
	path := filepath.Join(root, "assets", "props", "Engines", "macros", "engine_arg_m_travel_01_mk2_macro.xml")
	writeFixture(t, path, engineFixture)

	engine, ok := EngineFromDocument(parseFixture(t, path), lc)
	require.True(t, ok)

	assert.Equal(t, "engine_arg_m_travel_01_mk2_macro", engine.Name)
	assert.Equal(t, "Travel Engine Mk2", engine.DisplayName)
	assert.Equal(t, "argon", engine.MakerRace)
	assert.Equal(t, "2", engine.Mk)
	assert.Equal(t, 42.4, engine.TravelThrust)
	assert.Equal(t, 8000.0, engine.BoostThrust)
	assert.Equal(t, 3159.0, engine.ForwardThrust)
	assert.Equal(t, 3001.05, engine.ReverseThrust)
}

func TestEngineFromDocumentWrongClass(t *testing.T) {
	root := t.TempDir()
	lc := newTestLocale(t, root)
	path := filepath.Join(root, "shield.xml")
	writeFixture(t, path, shieldFixture)

	_, ok := EngineFromDocument(parseFixture(t, path), lc)
	assert.False(t, ok)
}

func TestEngineFromDocumentMissingThrustDefaultsToZero(t *testing.T) {
	root := t.TempDir()
	lc := newTestLocale(t, root)
	path := filepath.Join(root, "engine.xml")
	writeFixture(t, path, `<?xml version="1.0"?>
<macros>
 <macro name="engine_bare_macro" class="engine">
  <properties/>
 </macro>
</macros>`)

	engine, ok := EngineFromDocument(parseFixture(t, path), lc)
	require.True(t, ok)
	assert.Zero(t, engine.TravelThrust)
	assert.Zero(t, engine.ForwardThrust)
	assert.Equal(t, "engine_bare_macro", engine.DisplayName)
}

func TestShieldFromDocument(t *testing.T) {
	root := t.TempDir()
	lc := newTestLocale(t, root)
	path := filepath.Join(root, "assets", "props", "SurfaceElements", "macros", "shield_arg_m_standard_01_mk1_macro.xml")
	writeFixture(t, path, shieldFixture)

	shield, ok := ShieldFromDocument(parseFixture(t, path), lc)
	require.True(t, ok)

	assert.Equal(t, "shield_arg_m_standard_01_mk1_macro", shield.Name)
	assert.Equal(t, "Magnetar Mk1", shield.DisplayName)
	assert.Equal(t, "argon", shield.MakerRace)
	assert.Equal(t, "m", shield.SizeClass)
	assert.Equal(t, 4212.0, shield.RechargeMax)
	assert.Equal(t, 115.0, shield.RechargeRate)
	assert.Equal(t, 1.2, shield.RechargeDelay)
	assert.Equal(t, 1200.0, shield.HullMax)
	assert.Equal(t, 0.25, shield.HullThreshold)
}

func TestShieldSizeFromName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"shield_arg_s_standard_01_mk1_macro", "s"},
		{"shield_arg_m_standard_01_mk1_macro", "m"},
		{"shield_arg_l_standard_01_mk1_macro", "l"},
		{"shield_arg_xl_standard_01_mk1_macro", "xl"},
		{"shield_nosize_macro", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, shieldSizeFromName(tc.name), tc.name)
	}
}

func TestWeaponFromDocument(t *testing.T) {
	root := t.TempDir()
	lc := newTestLocale(t, root)
	path := filepath.Join(root, "assets", "props", "WeaponSystems", "standard", "macros", "weapon_arg_s_pulse_01_mk2_macro.xml")
	writeFixture(t, path, weaponFixture)

	weapon, ok := WeaponFromDocument(parseFixture(t, path), lc)
	require.True(t, ok)

	assert.Equal(t, "weapon_arg_s_pulse_01_mk2_macro", weapon.ID)
	assert.Equal(t, "Pulse Laser", weapon.DisplayName)
	assert.Equal(t, "pulse", weapon.Type)
	assert.Equal(t, "argon", weapon.Faction)
	assert.Equal(t, "s", weapon.SizeClass)
	assert.Equal(t, 2, weapon.MkLevel)
	assert.Equal(t, "bullet_arg_s_pulse_01_mk2", weapon.BulletClass)
	assert.Equal(t, 10000.0, weapon.Overheat)
	assert.Equal(t, 1.13, weapon.CoolDelay)
	assert.Equal(t, 2000.0, weapon.CoolRate)
	assert.Equal(t, 68.4, weapon.RotationMax)
	assert.Equal(t, 500.0, weapon.HullMax)
}

func TestTurretFromDocument(t *testing.T) {
	root := t.TempDir()
	lc := newTestLocale(t, root)
	path := filepath.Join(root, "assets", "props", "WeaponSystems", "standard", "macros", "turret_par_m_flak_02_mk1_macro.xml")
	writeFixture(t, path, turretFixture)

	turret, ok := TurretFromDocument(parseFixture(t, path), lc)
	require.True(t, ok)

	assert.Equal(t, "turret_par_m_flak_02_mk1_macro", turret.ID)
	// The name reference does not resolve, so the macro name stands in.
	assert.Equal(t, "turret_par_m_flak_02_mk1_macro", turret.DisplayName)
	assert.Equal(t, "flak", turret.Type)
	assert.Equal(t, "paranid", turret.Faction)
	assert.Equal(t, "m", turret.SizeClass)
	assert.Equal(t, 1, turret.MkLevel)
	assert.Equal(t, "bullet_par_m_flak_02_mk1", turret.BulletClass)
	assert.Equal(t, 49.0, turret.RotationMax)
	assert.Equal(t, 99.0, turret.RotationAccel)
	assert.Equal(t, 2.0, turret.ReloadRate)
	assert.Equal(t, 1.5, turret.ReloadTime)
	assert.Equal(t, 0.3, turret.HullThreshold)
	assert.True(t, turret.HullIntegrated)
}

func TestTurretExplicitMakerRaceBeatsNameTokens(t *testing.T) {
	root := t.TempDir()
	lc := newTestLocale(t, root)
	path := filepath.Join(root, "turret.xml")
	writeFixture(t, path, `<?xml version="1.0"?>
<macros>
 <macro name="turret_arg_m_gatling_01_mk1_macro" class="turret">
  <properties>
   <identification mk="1" makerrace="teladi"/>
  </properties>
 </macro>
</macros>`)

	turret, ok := TurretFromDocument(parseFixture(t, path), lc)
	require.True(t, ok)
	assert.Equal(t, "teladi", turret.Faction)
}
