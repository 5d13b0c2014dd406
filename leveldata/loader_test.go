package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="7">
 <objectgroup id="1" name="colliders">
  <object id="1" x="0" y="64" width="160" height="16"/>
  <object id="2" name="exit" x="144" y="32" width="16" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="spawnpoints">
  <object id="3" name="Player" x="8" y="40"><point/></object>
  <object id="4" name="Guy" x="60" y="48"><point/></object>
  <object id="5" name="Bird" x="100" y="10"><point/></object>
  <object id="6" name="Bird" x="120" y="12"><point/></object>
 </objectgroup>
</map>
`

const noPlayerLevel = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="2" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="spawnpoints">
  <object id="1" name="Flame" x="8" y="8"><point/></object>
 </objectgroup>
</map>
`

func TestLoadScalesGeometryAndSpawns(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testLevel)}}

	level, err := LoadNamed(fsys, "levels", "test", 4)
	require.NoError(t, err)

	assert.Equal(t, 640.0, level.Width)
	assert.Equal(t, 320.0, level.Height)
	assert.Equal(t, []Rect{{X: 0, Y: 256, W: 640, H: 64}}, level.Solids)
	assert.Equal(t, []Rect{{X: 576, Y: 128, W: 64, H: 128}}, level.Exits)
	assert.Equal(t, []Point{{X: 32, Y: 160}}, level.Spawns(SpawnPlayer))
	assert.Equal(t, []Point{{X: 240, Y: 192}}, level.Spawns(SpawnGuy))
	assert.Equal(t, []Point{{X: 400, Y: 40}, {X: 480, Y: 48}}, level.Spawns(SpawnBird))
	assert.Empty(t, level.Spawns(SpawnFlame))
}

func TestLoadRequiresPlayerSpawn(t *testing.T) {
	fsys := fstest.MapFS{"levels/empty.tmx": {Data: []byte(noPlayerLevel)}}

	_, err := Load(fsys, "levels/empty.tmx", 1)
	require.ErrorIs(t, err, ErrNoPlayerSpawn)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "levels/nope.tmx", 1)
	assert.Error(t, err)
}
