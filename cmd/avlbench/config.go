package main

import (
	"os"
	"slices"

	"github.com/g-m-twostay/avltrees/Trees/compare"
	"github.com/g-m-twostay/avltrees/Trees/workload"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Size       int      `yaml:"size"`
	Seed       int64    `yaml:"seed"` // 0 picks a time based seed
	Workloads  []string `yaml:"workloads"`
	Containers []string `yaml:"containers"`
	LogLevel   string   `yaml:"log_level"`
}

func defaultConfig() *Config {
	return &Config{
		Size:       10000,
		Workloads:  []string{workload.NameRandom, workload.NameSorted},
		Containers: []string{compare.NameBST, compare.NameAVL, compare.NameAVLIter},
		LogLevel:   "info",
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path or
// a missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}
	if err = yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Size <= 0 {
		return errors.Errorf("size must be positive, got %d", c.Size)
	}
	for _, w := range c.Workloads {
		if !slices.Contains(workload.Names, w) {
			return errors.Errorf("unknown workload %q", w)
		}
	}
	known := compare.Names()
	for _, name := range c.Containers {
		if !slices.Contains(known, name) {
			return errors.Errorf("unknown container %q", name)
		}
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log_level")
	}
	return nil
}
