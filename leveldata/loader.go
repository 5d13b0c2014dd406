package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/lafriks/go-tiled"
)

// Object group names read from a TMX file.
const (
	GroupColliders   = "colliders"
	GroupSpawnPoints = "spawnpoints"
)

// ObjectExit names a collider that ends the level instead of blocking.
const ObjectExit = "exit"

// ErrNoPlayerSpawn is returned when a level has no Player spawn point.
var ErrNoPlayerSpawn = errors.New("no player spawn point defined in map")

// Load parses the TMX file at tmxPath within fsys. Colliders come from the
// "colliders" object group (objects named "exit" become exits) and spawn points
// from the "spawnpoints" group, keyed by object name. Every coordinate is
// multiplied by scale.
func Load(fsys fs.FS, tmxPath string, scale float64) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Width:       float64(levelMap.Width*levelMap.TileWidth) * scale,
		Height:      float64(levelMap.Height*levelMap.TileHeight) * scale,
		SpawnPoints: make(map[string][]Point),
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupColliders:
			for _, o := range og.Objects {
				r := Rect{X: o.X * scale, Y: o.Y * scale, W: o.Width * scale, H: o.Height * scale}
				if o.Name == ObjectExit {
					level.Exits = append(level.Exits, r)
					continue
				}
				level.Solids = append(level.Solids, r)
			}
		case GroupSpawnPoints:
			for _, o := range og.Objects {
				level.SpawnPoints[o.Name] = append(level.SpawnPoints[o.Name], Point{X: o.X * scale, Y: o.Y * scale})
			}
		}
	}

	if len(level.SpawnPoints[SpawnPlayer]) == 0 {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoPlayerSpawn)
	}

	return level, nil
}

// LoadNamed loads dir/name.tmx.
func LoadNamed(fsys fs.FS, dir, name string, scale float64) (*Level, error) {
	return Load(fsys, path.Join(dir, name+".tmx"), scale)
}
