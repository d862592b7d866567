package factory

import (
	"github.com/automoto/lanebrawl/archetypes"
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTitan spawns side's titan in the background lane. speedMod comes
// from the allied player's class.
func CreateTitan(ecs *ecs.ECS, side cfg.Side, speedMod float64) *donburi.Entry {
	stats := cfg.Classes[cfg.ClassTitan]
	titan := archetypes.Titan.Spawn(ecs)

	r := TitanSpawnRect(side)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	components.Object.SetValue(titan, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvTitan, tags.SideTag(side))
	obj.Data = titan
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, obj)

	components.Titan.SetValue(titan, components.TitanData{
		Side:     side,
		State:    cfg.TitanDueling,
		SpeedMod: speedMod,
	})
	components.Fighter.SetValue(titan, components.FighterData{
		Side:   side,
		Class:  cfg.ClassTitan,
		Lane:   cfg.LaneBackground,
		Facing: HomeFacing(side),
		BaseW:  stats.Width,
		BaseH:  stats.Height,
	})
	components.Physics.SetValue(titan, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		OnGround:     true,
	})
	components.Health.SetValue(titan, components.HealthData{
		Current: stats.MaxHealth,
		Max:     stats.MaxHealth,
	})

	// Idle tween: charge sits at zero until an ally comes close.
	components.ChargeTween.Set(titan, gween.New(0, 0, 0, ease.Linear))

	return titan
}
