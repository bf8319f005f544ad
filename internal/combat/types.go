package combat

// Event is one narrated step of the simulation. Resolvers emit them; the
// renderer, the metrics recorder and the JSON dump consume them.
type Event struct {
	Turn    int            `json:"turn"`
	Type    string         `json:"type"`
	Actor   string         `json:"actor,omitempty"`
	Target  string         `json:"target,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

const (
	EvTurnStart      = "TurnStart"
	EvThink          = "Think"
	EvHide           = "Hide"
	EvTrack          = "Track"
	EvScan           = "Scan"
	EvSee            = "See"
	EvSeeNone        = "SeeNone"
	EvFire           = "Fire"
	EvHit            = "Hit"
	EvMiss           = "Miss"
	EvShielded       = "Shielded"
	EvDestroyed      = "Destroyed"
	EvSelfDestruct   = "SelfDestruct"
	EvNoTarget       = "NoTarget"
	EvPatternMiss    = "PatternFallback"
	EvUpgrade        = "Upgrade"
	EvMove           = "Move"
	EvJump           = "Jump"
	EvStuck          = "Stuck"
	EvQueued         = "Queued"
	EvEliminated     = "Eliminated"
	EvRespawn        = "Respawn"
	EvRespawnBlocked = "RespawnBlocked"
)

// HitOutcome reports what a single landed shot did to its target.
type HitOutcome int

const (
	HitIgnored HitOutcome = iota // target already dead
	HitShielded                  // target hidden, no damage
	HitDamaged
	HitKilled
)

func (o HitOutcome) String() string {
	switch o {
	case HitShielded:
		return "shielded"
	case HitDamaged:
		return "damaged"
	case HitKilled:
		return "killed"
	}
	return "ignored"
}
