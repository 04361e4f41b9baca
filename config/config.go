package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iamNilotpal/sumstream/internal/adapters/compression"
	"github.com/iamNilotpal/sumstream/internal/core/domain"
)

type Config struct {
	Checksum     ChecksumConfig    `yaml:"checksum"`
	Compression  CompressionConfig `yaml:"compression"`
	ManifestPath string            `yaml:"manifest_path"` // Path to the token manifest file
}

// Holds checksum-specific configuration
type ChecksumConfig struct {
	Algorithm  string `yaml:"algorithm"`   // Digest algorithm for new tokens
	BufferSize int    `yaml:"buffer_size"` // Chunk size for streaming reads
}

// Holds archive compression configuration
type CompressionConfig struct {
	Enable bool  `yaml:"enable"` // Compress packed archives
	Level  uint8 `yaml:"level"`  // zstd level (1-4)
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		ManifestPath: "sumstream.manifest.json",
		Checksum: ChecksumConfig{
			Algorithm:  string(domain.MD5),
			BufferSize: 32 * 1024, // 32KB
		},
		Compression: CompressionConfig{
			Enable: true,
			Level:  compression.DefaultLevel,
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.ManifestPath == "" {
		return fmt.Errorf("manifest_path is required")
	}

	if _, err := domain.AlgorithmID(domain.Algorithm(config.Checksum.Algorithm)); err != nil {
		return err
	}

	if config.Checksum.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be greater than 0")
	}

	if config.Compression.Level < compression.FastestLevel || config.Compression.Level > compression.BestLevel {
		return fmt.Errorf(
			"compression level must be between %d and %d", compression.FastestLevel, compression.BestLevel,
		)
	}

	return nil
}
