package config

// ProfileConfig overrides starting vitals. Nil fields keep the value from
// the layer below (run settings, then setup defaults, then per-kind).
type ProfileConfig struct {
	Health *int `yaml:"health"`
	Ammo   *int `yaml:"ammo"`
	Lives  *int `yaml:"lives"`
}

// Vitals is a resolved starting profile.
type Vitals struct {
	Health int
	Ammo   int
	Lives  int
}

// Apply layers p over base.
func (p ProfileConfig) Apply(base Vitals) Vitals {
	if p.Health != nil {
		base.Health = *p.Health
	}
	if p.Ammo != nil {
		base.Ammo = *p.Ammo
	}
	if p.Lives != nil {
		base.Lives = *p.Lives
	}
	return base
}

// VitalsFor resolves the starting profile for a roster kind.
func (s *Setup) VitalsFor(kind string, base Vitals) Vitals {
	v := s.Defaults.Apply(base)
	if p, ok := s.Profiles[kind]; ok {
		v = p.Apply(v)
	}
	return v
}

func (v Vitals) validate() error {
	if v.Health <= 0 {
		return configErrorf("health must be positive, got %d", v.Health)
	}
	if v.Ammo <= 0 {
		return configErrorf("ammo must be positive, got %d", v.Ammo)
	}
	if v.Lives < 0 {
		return configErrorf("lives must not be negative, got %d", v.Lives)
	}
	return nil
}
