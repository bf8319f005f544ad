package combat

import "fmt"

// Category is one of the three upgrade slots a robot can fill once.
type Category int

const (
	CategoryMovement Category = iota + 1
	CategoryShooting
	CategoryVision
)

func (c Category) String() string {
	switch c {
	case CategoryMovement:
		return "movement"
	case CategoryShooting:
		return "shooting"
	case CategoryVision:
		return "vision"
	}
	return "unknown"
}

// UpgradePolicy decides which confirmed kills earn the shooter an upgrade.
type UpgradePolicy int

const (
	// UpgradeOnAnyKill rewards a kill from every firing kind.
	UpgradeOnAnyKill UpgradePolicy = iota
	// UpgradeOnDefaultKill rewards only kills made by the adjacent
	// fallback shot.
	UpgradeOnDefaultKill
)

func (p UpgradePolicy) String() string {
	if p == UpgradeOnDefaultKill {
		return "default-kill"
	}
	return "any-kill"
}

// ParseUpgradePolicy accepts the String form of a policy.
func ParseUpgradePolicy(s string) (UpgradePolicy, error) {
	switch s {
	case "", "any-kill":
		return UpgradeOnAnyKill, nil
	case "default-kill":
		return UpgradeOnDefaultKill, nil
	}
	return UpgradeOnAnyKill, fmt.Errorf("unknown upgrade policy %q", s)
}

var (
	movementVariants = []MovementKind{MoveJump, MoveHide}
	shootingVariants = []ShootingKind{ShootLongShot, ShootSemiAuto, ShootThirtyShot, ShootPlus, ShootCross, ShootDoubleRow}
	visionVariants   = []VisionKind{VisionScout, VisionTrack}
)

// GrantUpgrade gives r one variant from a category it does not hold yet.
// It returns false when the robot is already fully upgraded.
func (b *Battle) GrantUpgrade(r *Robot) bool {
	if r.UpgradeCount >= MaxUpgrades {
		return false
	}
	var open []Category
	for _, c := range []Category{CategoryMovement, CategoryShooting, CategoryVision} {
		if !r.Has(c) {
			open = append(open, c)
		}
	}
	if len(open) == 0 {
		return false
	}
	cat := open[b.Dice.Pick(len(open))]
	var variant string
	switch cat {
	case CategoryMovement:
		k := movementVariants[b.Dice.Pick(len(movementVariants))]
		r.applyMovement(k)
		variant = k.String()
	case CategoryShooting:
		k := shootingVariants[b.Dice.Pick(len(shootingVariants))]
		r.applyShooting(k)
		variant = k.String()
	case CategoryVision:
		k := visionVariants[b.Dice.Pick(len(visionVariants))]
		r.applyVision(k)
		variant = k.String()
	}
	b.emit(Event{Type: EvUpgrade, Actor: r.Name, Payload: map[string]any{
		"category": cat.String(), "variant": variant, "count": r.UpgradeCount,
	}})
	return true
}

// creditKill records a confirmed kill and applies the upgrade policy.
func (b *Battle) creditKill(shooter, victim *Robot, defaultPath bool) {
	shooter.Kills++
	b.emit(Event{Type: EvDestroyed, Actor: shooter.Name, Target: victim.Name})
	if b.Policy == UpgradeOnDefaultKill && !defaultPath {
		return
	}
	b.GrantUpgrade(shooter)
}
