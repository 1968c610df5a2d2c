package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/require"

	"x4stats/internal/locale"
	"x4stats/internal/macro"
)

const translationFixture = `<?xml version="1.0" encoding="utf-8"?>
<language id="44">
 <page id="20101">
  <t id="10101">Heavy Freighter</t>
  <t id="10102">Magnetar</t>
  <t id="20101">Pulse Laser</t>
 </page>
 <page id="20107">
  <t id="1101">Travel Engine</t>
 </page>
 <page id="20111">
  <t id="3101">XL</t>
  <t id="1101">Vanguard</t>
 </page>
</language>`

// newTestLocale builds a localization context over the given root with
// the shared translation fixture installed.
func newTestLocale(t *testing.T, root string) *locale.Context {
	t.Helper()
	writeFixture(t, filepath.Join(root, "t", "0001-l044.xml"), translationFixture)
	lc := locale.NewContext(locale.NewDetector("", ""), []string{root})
	return lc
}

func writeFixture(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func parseFixture(t *testing.T, path string) *etree.Document {
	t.Helper()
	doc, err := macro.LoadDocument(path)
	require.NoError(t, err)
	return doc
}

// shipMacroXML builds a ship macro document. The component reference and
// connection block are optional.
func shipMacroXML(name, shipType, componentRef, storageRef string) string {
	component := ""
	if componentRef != "" {
		component = `<component ref="` + componentRef + `"/>`
	}
	connections := ""
	if storageRef != "" {
		connections = `<connections>
   <connection name="con_storage01">
    <macro ref="` + storageRef + `" connection="conn"/>
   </connection>
  </connections>`
	}
	return `<?xml version="1.0" encoding="utf-8"?>
<macros>
 <macro name="` + name + `" class="ship_m">
  ` + component + `
  <properties>
   <identification makerrace="argon" basename="{20101,10101}" variation="{20111,3101}"/>
   <ship type="` + shipType + `"/>
   <hull max="10500"/>
   <purpose primary="trade"/>
   <physics mass="520.5">
    <drag forward="25.5" reverse="30" horizontal="41" vertical="42"/>
   </physics>
  </properties>
  ` + connections + `
 </macro>
</macros>`
}

const componentFixture = `<?xml version="1.0" encoding="utf-8"?>
<components>
 <component name="ship_arg_m_test_01">
  <connections>
   <connection name="con_engine01" tags="engine medium platformcollision"/>
   <connection name="con_engine02" tags="engine medium"/>
   <connection name="con_engine03" tags="engine medium"/>
   <connection name="con_shield01" tags="shield medium unhittable"/>
   <connection name="con_shield02" tags="shield medium"/>
   <connection name="con_weapon01" tags="weapon standard"/>
  </connections>
 </component>
</components>`

const storageFixture = `<?xml version="1.0" encoding="utf-8"?>
<macros>
 <macro name="storage_arg_m_test_01_macro" class="storage">
  <properties>
   <cargo max="6400" tags="container"/>
  </properties>
 </macro>
</macros>`

const engineFixture = `<?xml version="1.0" encoding="utf-8"?>
<macros>
 <macro name="engine_arg_m_travel_01_mk2_macro" class="engine">
  <properties>
   <identification name="{20101,99999}" basename="{20107,1101}" makerrace="argon" mk="2"/>
   <boost thrust="8000"/>
   <travel thrust="42.4"/>
   <thrust forward="3159" reverse="3001.05"/>
  </properties>
 </macro>
</macros>`

const shieldFixture = `<?xml version="1.0" encoding="utf-8"?>
<macros>
 <macro name="shield_arg_m_standard_01_mk1_macro" class="shieldgenerator">
  <properties>
   <identification basename="{20101,10102}" makerrace="argon" mk="1"/>
   <recharge max="4212" rate="115" delay="1.2"/>
   <hull max="1200" threshold="0.25"/>
  </properties>
 </macro>
</macros>`

const weaponFixture = `<?xml version="1.0" encoding="utf-8"?>
<macros>
 <macro name="weapon_arg_s_pulse_01_mk2_macro" class="weapon">
  <properties>
   <identification name="{20101,20101}" mk="2"/>
   <bullet class="bullet_arg_s_pulse_01_mk2"/>
   <heat overheat="10000" cooldelay="1.13" coolrate="2000"/>
   <rotationspeed max="68.4"/>
   <hull max="500"/>
  </properties>
 </macro>
</macros>`

const turretFixture = `<?xml version="1.0" encoding="utf-8"?>
<macros>
 <macro name="turret_par_m_flak_02_mk1_macro" class="turret">
  <properties>
   <identification name="{20101,99999}" mk="1" makerrace="paranid"/>
   <bullet class="bullet_par_m_flak_02_mk1"/>
   <rotationspeed max="49"/>
   <rotationacceleration max="99"/>
   <reload rate="2" time="1.5"/>
   <hull threshold="0.3" integrated="1"/>
  </properties>
 </macro>
</macros>`
