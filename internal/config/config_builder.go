package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type desktopBuilder struct {
	configs []*DesktopConfig
	err     error
}

func newDesktopBuilder() *desktopBuilder {
	return &desktopBuilder{
		configs: make([]*DesktopConfig, 0, 4),
	}
}

func (b *desktopBuilder) build() (*DesktopConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(DesktopConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()
	return config, config.validate()
}

func (b *desktopBuilder) withEnv() *desktopBuilder {
	envCfg := &DesktopConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *desktopBuilder) withFlags() *desktopBuilder {
	b.configs = append(b.configs, parseDesktopFlags())
	return b
}

func (b *desktopBuilder) withJSON() *desktopBuilder {
	jsonPath := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseDesktopJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

type mobileBuilder struct {
	configs []*MobileConfig
	err     error
}

func newMobileBuilder() *mobileBuilder {
	return &mobileBuilder{
		configs: make([]*MobileConfig, 0, 4),
	}
}

func (b *mobileBuilder) build() (*MobileConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(MobileConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()
	return config, config.validate()
}

func (b *mobileBuilder) withEnv() *mobileBuilder {
	envCfg := &MobileConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *mobileBuilder) withFlags() *mobileBuilder {
	b.configs = append(b.configs, parseMobileFlags())
	return b
}

func (b *mobileBuilder) withJSON() *mobileBuilder {
	jsonPath := ""
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseMobileJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}
