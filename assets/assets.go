package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/puffball/config"
	"github.com/automoto/puffball/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LoadLevel reads an embedded level by scene name, scaled to world units.
func LoadLevel(name string) (*leveldata.Level, error) {
	level, err := leveldata.LoadNamed(assetFS, config.Levels.Dir, name, config.C.Scale)
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}
	return level, nil
}

// MustLoadLevel is LoadLevel for levels that ship with the game; a broken
// embedded level is a build defect.
func MustLoadLevel(name string) *leveldata.Level {
	level, err := LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}
