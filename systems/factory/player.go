package factory

import (
	"fmt"

	"github.com/automoto/lanebrawl/archetypes"
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns side's fighter in the foreground beside its orb.
func CreatePlayer(ecs *ecs.ECS, side cfg.Side, class cfg.Class) (*donburi.Entry, error) {
	stats, ok := cfg.ClassByName(class)
	if !ok || class == cfg.ClassTitan {
		return nil, fmt.Errorf("create player %d: unknown class %q", side, class)
	}
	player := archetypes.Player.Spawn(ecs)

	r := PlayerSpawnRect(side, stats.Width, stats.Height)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvPlayer, tags.SideTag(side))
	obj.Data = player
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{
		Side:  side,
		Phase: cfg.PhaseAlive,
	})
	components.Fighter.SetValue(player, components.FighterData{
		Side:   side,
		Class:  class,
		Lane:   cfg.LaneForeground,
		Facing: HomeFacing(side),
		BaseW:  stats.Width,
		BaseH:  stats.Height,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		OnGround:     true,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: stats.MaxHealth,
		Max:     stats.MaxHealth,
	})
	components.MeleeAttack.SetValue(player, components.MeleeAttackData{
		Weapon:      stats.Weapon,
		HitEntities: make(map[donburi.Entity]bool),
	})

	return player, nil
}
