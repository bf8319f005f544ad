package render

import (
	"fmt"
	"strings"

	"robot_arena/internal/combat"
)

// Narrate turns one event into a transcript sentence. Events that would only
// add noise (turn start, plain think, each seen robot) return "".
func Narrate(ev combat.Event) string {
	p := ev.Payload
	switch ev.Type {
	case combat.EvHide:
		return fmt.Sprintf("%s hides (%v left)", ev.Actor, p["left"])
	case combat.EvTrack:
		names, _ := p["tracked"].([]string)
		if len(names) == 0 {
			return fmt.Sprintf("%s finds nothing to track", ev.Actor)
		}
		return fmt.Sprintf("%s starts tracking %s", ev.Actor, strings.Join(names, ", "))
	case combat.EvScan:
		return fmt.Sprintf("%s scans the battlefield (%v left)", ev.Actor, p["left"])
	case combat.EvSeeNone:
		return fmt.Sprintf("%s sees no one", ev.Actor)
	case combat.EvFire:
		if shots, _ := p["shots"].(int); shots > 1 {
			return fmt.Sprintf("%s fires %d rounds at %s (shells left %v)", ev.Actor, shots, ev.Target, p["ammo"])
		}
		return fmt.Sprintf("%s fires at %s (shells left %v)", ev.Actor, ev.Target, p["ammo"])
	case combat.EvHit:
		if p["outcome"] == combat.HitKilled.String() {
			return fmt.Sprintf("%s hits %s, target down", ev.Actor, ev.Target)
		}
		return fmt.Sprintf("%s hits %s (health %v)", ev.Actor, ev.Target, p["health"])
	case combat.EvMiss:
		return fmt.Sprintf("%s misses %s", ev.Actor, ev.Target)
	case combat.EvShielded:
		return fmt.Sprintf("%s's shot passes through hidden %s", ev.Actor, ev.Target)
	case combat.EvDestroyed:
		return fmt.Sprintf("%s destroyed %s", ev.Actor, ev.Target)
	case combat.EvSelfDestruct:
		return fmt.Sprintf("%s is out of shells and self-destructs", ev.Actor)
	case combat.EvNoTarget:
		return fmt.Sprintf("%s has no target (%v)", ev.Actor, p["reason"])
	case combat.EvPatternMiss:
		return fmt.Sprintf("%s has nothing in its %v pattern, falling back", ev.Actor, p["pattern"])
	case combat.EvUpgrade:
		return fmt.Sprintf("%s upgrades %v to %v (%v/%d)", ev.Actor, p["category"], p["variant"], p["count"], combat.MaxUpgrades)
	case combat.EvMove:
		return fmt.Sprintf("%s moves to (%v,%v)", ev.Actor, p["x"], p["y"])
	case combat.EvJump:
		return fmt.Sprintf("%s jumps next to %s at (%v,%v)", ev.Actor, ev.Target, p["x"], p["y"])
	case combat.EvStuck:
		return fmt.Sprintf("%s is boxed in", ev.Actor)
	case combat.EvQueued:
		return fmt.Sprintf("%s joins the respawn queue (%v lives left)", ev.Actor, p["lives"])
	case combat.EvEliminated:
		return fmt.Sprintf("%s is out of lives", ev.Actor)
	case combat.EvRespawn:
		return fmt.Sprintf("%s respawns at (%v,%v)", ev.Actor, p["x"], p["y"])
	case combat.EvRespawnBlocked:
		return fmt.Sprintf("%s cannot respawn, no free cell", ev.Actor)
	}
	return ""
}
