// Package config handles terrain generator configuration loading and management.
package config

// Config holds all generator and viewer settings.
type Config struct {
	Terrain  TerrainConfig  `yaml:"terrain"`
	Noise    NoiseConfig    `yaml:"noise"`
	Props    PropsConfig    `yaml:"props"`
	Atlas    AtlasConfig    `yaml:"atlas"`
	Graphics GraphicsConfig `yaml:"graphics"`
	Output   OutputConfig   `yaml:"output"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// TerrainConfig holds grid and mesh settings.
type TerrainConfig struct {
	TilesWide           int     `yaml:"tiles_wide"`
	TilesDeep           int     `yaml:"tiles_deep"`
	TileWidth           float32 `yaml:"tile_width"`
	TileHeight          float32 `yaml:"tile_height"`
	PlaneOffsetX        float32 `yaml:"plane_offset_x"`
	PlaneOffsetZ        float32 `yaml:"plane_offset_z"`
	HeightScale         float32 `yaml:"height_scale"`
	Normals             string  `yaml:"normals"` // smoothed or flat
	Bins                string  `yaml:"bins"`    // fine or coarse
	PerTriangleTextures bool    `yaml:"per_triangle_textures"`
	Workers             int     `yaml:"workers"`
	Seed                int64   `yaml:"seed"` // 0 picks a seed from the clock
}

// NoiseConfig holds heightmap noise settings.
type NoiseConfig struct {
	Scale   float32 `yaml:"scale"`
	Alpha   float64 `yaml:"alpha"`
	Beta    float64 `yaml:"beta"`
	Octaves int32   `yaml:"octaves"`
}

// PropsConfig holds prop scattering settings.
type PropsConfig struct {
	Enabled    bool   `yaml:"enabled"`
	TargetBand int    `yaml:"target_band"`
	Threshold  int    `yaml:"threshold"`
	Template   string `yaml:"template"`
}

// AtlasConfig holds texture atlas settings.
type AtlasConfig struct {
	NumTextures int    `yaml:"num_textures"`
	Texture     string `yaml:"texture"`   // atlas image; empty uses the generated swatch
	SlotSize    int    `yaml:"slot_size"` // pixel size of one slot in the generated swatch
}

// GraphicsConfig holds viewer display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	Wireframe  bool `yaml:"wireframe"`
}

// OutputConfig holds headless preview settings.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Heightmap bool   `yaml:"heightmap"`
	Bands     bool   `yaml:"bands"`
	Atlas     bool   `yaml:"atlas"`
	Legend    bool   `yaml:"legend"`
	CellSize  int    `yaml:"cell_size"` // band map pixels per tile
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			TilesWide:   64,
			TilesDeep:   64,
			TileWidth:   1,
			TileHeight:  1,
			HeightScale: 10,
			Normals:     "smoothed",
			Bins:        "fine",
			Workers:     1,
		},
		Noise: NoiseConfig{
			Scale:   3,
			Alpha:   2,
			Beta:    2,
			Octaves: 3,
		},
		Props: PropsConfig{
			Enabled:    true,
			TargetBand: 4,
			Threshold:  8,
			Template:   "tree",
		},
		Atlas: AtlasConfig{
			NumTextures: 8,
			SlotSize:    64,
		},
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Output: OutputConfig{
			Dir:       "out",
			Heightmap: true,
			Bands:     true,
			Atlas:     true,
			Legend:    true,
			CellSize:  4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
