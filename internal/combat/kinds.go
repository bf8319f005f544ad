package combat

import "strings"

type MovementKind int

const (
	MoveNone MovementKind = iota
	MoveJump
	MoveHide
)

func (k MovementKind) String() string {
	switch k {
	case MoveJump:
		return "JumpBot"
	case MoveHide:
		return "HideBot"
	}
	return ""
}

type ShootingKind int

const (
	ShootNone ShootingKind = iota
	ShootSemiAuto
	ShootLongShot
	ShootThirtyShot
	ShootPlus
	ShootCross
	ShootDoubleRow
)

func (k ShootingKind) String() string {
	switch k {
	case ShootSemiAuto:
		return "SemiAutoBot"
	case ShootLongShot:
		return "LongShotBot"
	case ShootThirtyShot:
		return "ThirtyShotBot"
	case ShootPlus:
		return "PlusShooter"
	case ShootCross:
		return "CrossShooter"
	case ShootDoubleRow:
		return "DoubleRowShooter"
	}
	return ""
}

type VisionKind int

const (
	VisionNone VisionKind = iota
	VisionScout
	VisionTrack
)

func (k VisionKind) String() string {
	switch k {
	case VisionScout:
		return "ScoutBot"
	case VisionTrack:
		return "TrackBot"
	}
	return ""
}

// Upgrade counters granted with a variant.
const (
	JumpCharges    = 3
	HideCharges    = 3
	ScoutCharges   = 3
	ThirtyShotAmmo = 30
	MaxUpgrades    = 3
	TrackLimit     = 3
	LongShotRange  = 3
)

// GenericKind is the roster name of the base robot.
const GenericKind = "GenericRobot"

// upgradeOf is the single upgrade a named roster kind starts with.
type upgradeOf struct {
	move   MovementKind
	shoot  ShootingKind
	vision VisionKind
}

var kindTable = map[string]upgradeOf{
	GenericKind:              {},
	MoveJump.String():        {move: MoveJump},
	MoveHide.String():        {move: MoveHide},
	ShootSemiAuto.String():   {shoot: ShootSemiAuto},
	ShootLongShot.String():   {shoot: ShootLongShot},
	ShootThirtyShot.String(): {shoot: ShootThirtyShot},
	ShootPlus.String():       {shoot: ShootPlus},
	ShootCross.String():      {shoot: ShootCross},
	ShootDoubleRow.String():  {shoot: ShootDoubleRow},
	VisionScout.String():     {vision: VisionScout},
	VisionTrack.String():     {vision: VisionTrack},
}

// KnownKind reports whether name is a roster kind, ignoring case.
func KnownKind(name string) bool {
	_, ok := lookupKind(name)
	return ok
}

// Kinds lists the roster kind names.
func Kinds() []string {
	return []string{
		GenericKind,
		MoveHide.String(), MoveJump.String(),
		ShootLongShot.String(), ShootSemiAuto.String(), ShootThirtyShot.String(),
		VisionScout.String(), VisionTrack.String(),
		ShootPlus.String(), ShootCross.String(), ShootDoubleRow.String(),
	}
}

func lookupKind(name string) (upgradeOf, bool) {
	if u, ok := kindTable[name]; ok {
		return u, true
	}
	for k, u := range kindTable {
		if strings.EqualFold(k, name) {
			return u, true
		}
	}
	return upgradeOf{}, false
}
