package engine

import (
	"fmt"

	"github.com/lixenwraith/flatsouls/config"
	"github.com/lixenwraith/flatsouls/entity"
	"github.com/lixenwraith/flatsouls/log"
	"github.com/lixenwraith/flatsouls/parameter"
	"github.com/lixenwraith/flatsouls/vmath"
)

// Setup populates the store with the configured scene
//
// planar: player at the origin inside a box of four walls 8 units across
// spatial: player one unit above a floor, boxed in by four tall walls at ±1
func (c *Context) Setup() error {
	var ents []entity.Entity
	switch c.Config.Scene.Kind {
	case config.ScenePlanar:
		ents = planarScene()
	case config.SceneSpatial:
		ents = spatialScene()
	default:
		return fmt.Errorf("engine: unknown scene %q", c.Config.Scene.Kind)
	}

	for _, e := range ents {
		if err := c.Spawn(e); err != nil {
			return fmt.Errorf("engine: setup %s: %w", e.Type, err)
		}
	}
	c.Logger.Info("scene ready",
		log.String("scene", c.Config.Scene.Kind),
		log.Int("entities", c.Store.Len()))
	return nil
}

func playerHitbox() vmath.Cube {
	h := parameter.PlayerHalfWidth
	return vmath.NewCube(-h, -h, -h, h, h, h)
}

func planarScene() []entity.Entity {
	horizontal := vmath.NewCube(-4, -0.1, 0, 4, 0.1, 0)
	vertical := vmath.NewCube(-0.1, -4, 0, 0.1, 4, 0)

	top := entity.NewWall(vmath.V3(0, 4, 0), horizontal)
	top.Priority = entity.PriorityPlayer

	return []entity.Entity{
		entity.NewPlayer(vmath.V3(0, 0, 0), playerHitbox()),
		entity.NewWall(vmath.V3(0, -4, 0), horizontal),
		entity.NewWall(vmath.V3(-4, 0, 0), vertical),
		entity.NewWall(vmath.V3(4, 0, 0), vertical),
		top,
	}
}

func spatialScene() []entity.Entity {
	horizontal := vmath.NewCube(-4, -0.1, -2, 4, 0.1, 2)
	vertical := vmath.NewCube(-0.1, -4, -2, 0.1, 4, 2)

	return []entity.Entity{
		entity.NewPlayer(vmath.V3(0, 0, 1), playerHitbox()),
		entity.NewWall(vmath.V3(0, -1, 0), horizontal),
		entity.NewWall(vmath.V3(-1, 0, 0), vertical),
		entity.NewWall(vmath.V3(1, 0, 0), vertical),
		entity.NewWall(vmath.V3(0, 1, 0), horizontal),
		entity.NewWall(vmath.V3(0, 0, 0), vmath.NewCube(-4, -4, 0, 4, 4, 0)),
	}
}
