package combat

import "fmt"

// Profile is the starting vitals a robot returns to on every respawn.
type Profile struct {
	Health int
	Ammo   int
	Lives  int
}

// DefaultProfile matches the stock roster: one hit point, ten shells, two
// extra lives.
var DefaultProfile = Profile{Health: 1, Ammo: 10, Lives: 2}

// Robot is the whole mutable state of one agent. Capabilities are plain
// fields switched on by the resolvers; upgrades mutate the record in place.
type Robot struct {
	Name   string
	Symbol rune
	Kind   string

	Pos    Pos
	Health int
	Ammo   int
	Lives  int
	Alive  bool

	StartHealth int
	StartAmmo   int

	Movement  MovementKind
	JumpsLeft int
	HidesLeft int

	Shooting ShootingKind

	Vision    VisionKind
	ScansLeft int
	Tracked   []*Robot

	UpgradeCount int

	Kills  int
	Deaths int

	// Per-turn state.
	SawTarget   bool
	SeenTargets []*Robot
	Hidden      bool

	hideArmed     bool
	trackAcquired bool
	lastScanTurn  int
	queued        bool
	eliminated    bool
}

// NewRobot builds a robot of the named roster kind. Unknown kinds get the
// generic loadout; ok reports whether the kind was recognised.
func NewRobot(kind, name string, symbol rune, pos Pos, prof Profile) (r *Robot, ok bool) {
	up, ok := lookupKind(kind)
	if !ok {
		kind = GenericKind
	}
	r = &Robot{
		Name:         name,
		Symbol:       symbol,
		Kind:         kind,
		Pos:          pos,
		Health:       prof.Health,
		Ammo:         prof.Ammo,
		Lives:        prof.Lives,
		Alive:        true,
		StartHealth:  prof.Health,
		StartAmmo:    prof.Ammo,
		lastScanTurn: -1,
	}
	if up.move != MoveNone {
		r.applyMovement(up.move)
	}
	if up.shoot != ShootNone {
		r.applyShooting(up.shoot)
	}
	if up.vision != VisionNone {
		r.applyVision(up.vision)
	}
	return r, ok
}

func (r *Robot) applyMovement(k MovementKind) {
	r.Movement = k
	switch k {
	case MoveJump:
		r.JumpsLeft = JumpCharges
	case MoveHide:
		r.HidesLeft = HideCharges
	}
	r.UpgradeCount++
}

func (r *Robot) applyShooting(k ShootingKind) {
	r.Shooting = k
	if k == ShootThirtyShot {
		r.Ammo = ThirtyShotAmmo
	}
	r.UpgradeCount++
}

func (r *Robot) applyVision(k VisionKind) {
	r.Vision = k
	if k == VisionScout {
		r.ScansLeft = ScoutCharges
	}
	r.UpgradeCount++
}

// Has reports whether the robot already holds an upgrade in cat.
func (r *Robot) Has(cat Category) bool {
	switch cat {
	case CategoryMovement:
		return r.Movement != MoveNone
	case CategoryShooting:
		return r.Shooting != ShootNone
	case CategoryVision:
		return r.Vision != VisionNone
	}
	return false
}

// TakeHit applies one point of damage from a landed shot.
func (r *Robot) TakeHit() HitOutcome {
	if !r.Alive {
		return HitIgnored
	}
	if r.Hidden {
		return HitShielded
	}
	r.Health--
	if r.Health <= 0 {
		r.Health = 0
		r.die()
		return HitKilled
	}
	return HitDamaged
}

// SelfDestruct kills the robot regardless of health. Used when the last
// shell is spent.
func (r *Robot) SelfDestruct() bool {
	if !r.Alive {
		return false
	}
	r.die()
	return true
}

func (r *Robot) die() {
	r.Alive = false
	r.Hidden = false
	r.hideArmed = false
	r.Deaths++
}

// Respawn puts the robot back on the field at p with starting vitals.
// Upgrades, charges and kill/death tallies carry over.
func (r *Robot) Respawn(p Pos) {
	r.Pos = p
	r.Health = r.StartHealth
	r.Ammo = r.StartAmmo
	if r.Shooting == ShootThirtyShot {
		r.Ammo = ThirtyShotAmmo
	}
	r.Alive = true
	r.Hidden = false
	r.hideArmed = false
	r.SawTarget = false
	r.SeenTargets = nil
	r.Tracked = nil
	r.trackAcquired = false
	r.queued = false
}

// Eliminated reports whether the robot died with no lives left.
func (r *Robot) Eliminated() bool { return r.eliminated }

// Queued reports whether the robot is waiting in the respawn queue.
func (r *Robot) Queued() bool { return r.queued }

func (r *Robot) String() string {
	return fmt.Sprintf("%s(%c)@(%d,%d)", r.Name, r.Symbol, r.Pos.X, r.Pos.Y)
}
