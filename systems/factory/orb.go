package factory

import (
	"github.com/automoto/lanebrawl/archetypes"
	"github.com/automoto/lanebrawl/components"
	cfg "github.com/automoto/lanebrawl/config"
	"github.com/automoto/lanebrawl/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOrb spawns side's objective at its arena edge.
func CreateOrb(ecs *ecs.ECS, side cfg.Side) *donburi.Entry {
	orb := archetypes.Orb.Spawn(ecs)

	r := OrbRect(side)
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H)
	components.Object.SetValue(orb, components.ObjectData{Object: obj})
	obj.AddTags(tags.ResolvOrb, tags.SideTag(side))
	obj.Data = orb
	obj.SetShape(resolv.NewRectangle(0, 0, r.W, r.H))
	addToSpace(ecs, obj)

	components.Orb.SetValue(orb, components.OrbData{
		Side:       side,
		Armor:      cfg.Orb.MaxArmor,
		MaxArmor:   cfg.Orb.MaxArmor,
		IsShielded: true,
	})
	components.Health.SetValue(orb, components.HealthData{
		Current: cfg.Orb.MaxHealth,
		Max:     cfg.Orb.MaxHealth,
	})

	return orb
}
