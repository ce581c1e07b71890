package config

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display   DisplayConfig   `yaml:"display" json:"display"`
	Map       MapConfig       `yaml:"map" json:"map"`
	Hero      HeroConfig      `yaml:"hero" json:"hero"`
	Enemy     EnemyConfig     `yaml:"enemy" json:"enemy"`
	Animation AnimationConfig `yaml:"animation" json:"animation"`
	Rules     RulesConfig     `yaml:"rules" json:"rules"`
	Audio     AudioConfig     `yaml:"audio" json:"audio"`
	Telemetry TelemetryConfig `yaml:"telemetry" json:"telemetry"`
}

type DisplayConfig struct {
	Title     string `yaml:"title" json:"title"`
	Scale     int    `yaml:"scale" json:"scale"`
	Framerate int    `yaml:"framerate" json:"framerate"`
}

// MapConfig controls tile map generation
type MapConfig struct {
	Rows             int     `yaml:"rows" json:"rows"`
	Cols             int     `yaml:"cols" json:"cols"`
	TileSize         int     `yaml:"tileSize" json:"tileSize"`
	GrassProbability float64 `yaml:"grassProbability" json:"grassProbability"`
	CarveCross       bool    `yaml:"carveCross" json:"carveCross"`
	// Seed 0 means a time-based seed is picked at startup
	Seed int64 `yaml:"seed" json:"seed"`
	// ReuseOnRestart keeps the same map across restarts instead of regenerating
	ReuseOnRestart bool `yaml:"reuseOnRestart" json:"reuseOnRestart"`
}

// ScreenWidth returns the logical screen width (the whole map is visible)
func (m MapConfig) ScreenWidth() int {
	return m.Cols * m.TileSize
}

// ScreenHeight returns the logical screen height
func (m MapConfig) ScreenHeight() int {
	return m.Rows * m.TileSize
}

type HeroConfig struct {
	Speed  float64 `yaml:"speed" json:"speed"`
	Health int     `yaml:"health" json:"health"`
	Frames int     `yaml:"frames" json:"frames"`
	// ProbeOffsetY moves the collision probe from the sprite center down to the feet
	ProbeOffsetY float64 `yaml:"probeOffsetY" json:"probeOffsetY"`
}

type EnemyConfig struct {
	Speed       float64      `yaml:"speed" json:"speed"`
	Frames      int          `yaml:"frames" json:"frames"`
	PatrolAreas []RectConfig `yaml:"patrolAreas" json:"patrolAreas"`
}

type RectConfig struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
	W int `yaml:"w" json:"w"`
	H int `yaml:"h" json:"h"`
}

type AnimationConfig struct {
	IdlePeriod float64 `yaml:"idlePeriod" json:"idlePeriod"`
	MovePeriod float64 `yaml:"movePeriod" json:"movePeriod"`
}

// RulesConfig holds the proximity thresholds in world units
type RulesConfig struct {
	CatchDistance   float64 `yaml:"catchDistance" json:"catchDistance"`
	CollectDistance float64 `yaml:"collectDistance" json:"collectDistance"`
}

type AudioConfig struct {
	SoundEnabled bool    `yaml:"soundEnabled" json:"soundEnabled"`
	Volume       float64 `yaml:"volume" json:"volume"`
	SampleRate   int     `yaml:"sampleRate" json:"sampleRate"`
}

type TelemetryConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

// Default returns the built-in configuration. Loaded files override it field by field.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			Title:     "Hero Tiles",
			Scale:     2,
			Framerate: 60,
		},
		Map: MapConfig{
			Rows:             15,
			Cols:             25,
			TileSize:         16,
			GrassProbability: 0.15,
			CarveCross:       true,
		},
		Hero: HeroConfig{
			Speed:        1.5,
			Health:       100,
			Frames:       3,
			ProbeOffsetY: 7,
		},
		Enemy: EnemyConfig{
			Speed:  1,
			Frames: 3,
			PatrolAreas: []RectConfig{
				{X: 40, Y: 40, W: 64, H: 32},
				{X: 280, Y: 40, W: 64, H: 32},
				{X: 40, Y: 160, W: 64, H: 32},
				{X: 280, Y: 160, W: 64, H: 32},
			},
		},
		Animation: AnimationConfig{
			IdlePeriod: 0.5,
			MovePeriod: 0.1,
		},
		Rules: RulesConfig{
			CatchDistance:   20,
			CollectDistance: 20,
		},
		Audio: AudioConfig{
			SoundEnabled: true,
			Volume:       0.3,
			SampleRate:   44100,
		},
	}
}
