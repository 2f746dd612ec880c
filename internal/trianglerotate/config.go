package trianglerotate

import "strconv"

// Config controls how a TriangleSystem is constructed.
type Config struct {
	SideLength int
	SetCenter  bool
	Seed       int64
}

// DefaultConfig returns the standard configuration: a side-7 triangle
// (sideLength = 3*2+1) discovering its own center.
func DefaultConfig() Config {
	return Config{
		SideLength: 7,
		SetCenter:  false,
		Seed:       1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value
// pairs), leaving unspecified fields at their default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["side_length"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.SideLength = parsed
		}
	}
	if v, ok := cfg["set_center"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.SetCenter = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// New builds the TriangleSystem described by c. Fatal if c.SideLength is not
// of the form 3k+1 (§3, §6).
func (c Config) New() *TriangleSystem {
	return NewTriangleSystem(c.SideLength, c.SetCenter, c.Seed)
}
