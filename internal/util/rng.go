package util

import "math/rand"

// Source is the slice of *rand.Rand the simulation draws from. Tests swap in
// a scripted implementation to pin down every roll.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

// Dice is the single random policy shared by every resolver in a run.
type Dice struct {
	src Source
	// HitChance is the percent chance (0..100) that a shot lands.
	HitChance int
}

const DefaultHitChance = 70

func NewDice(src Source, hitChance int) *Dice {
	if src == nil {
		src = New(1)
	}
	if hitChance < 0 {
		hitChance = 0
	}
	if hitChance > 100 {
		hitChance = 100
	}
	return &Dice{src: src, HitChance: hitChance}
}

// Hit rolls one independent shot.
func (d *Dice) Hit() bool { return d.src.Intn(100) < d.HitChance }

// Pick returns a uniform index in [0,n). n must be positive.
func (d *Dice) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	return d.src.Intn(n)
}

func (d *Dice) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	d.src.Shuffle(n, swap)
}
