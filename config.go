package comaster

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config groups the settings of a master, usually loaded from an ini file :
//
//	[can]
//	interface = can0
//
//	[master]
//	node_id         = 10
//	boot_timeout_ms = 3000
//	sdo_timeout_ms  = 1000
//
//	[sync]
//	counter = false
type Config struct {
	Interface     string // socketcan interface name
	NodeId        uint8  // node the application talks to
	BootTimeoutMs uint32
	SDOTimeoutMs  uint32
	SyncCounter   bool // counted SYNC variant
}

func DefaultConfig() Config {
	return Config{
		Interface:     "can0",
		NodeId:        1,
		BootTimeoutMs: DefaultBootTimeoutMs,
		SDOTimeoutMs:  DefaultSDOTimeoutMs,
	}
}

// LoadConfig reads a configuration file. Missing keys keep their defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	file, err := ini.Load(path)
	if err != nil {
		return config, fmt.Errorf("failed to load configuration : %w", err)
	}
	can := file.Section("can")
	config.Interface = can.Key("interface").MustString(config.Interface)

	master := file.Section("master")
	nodeId := master.Key("node_id").MustUint(uint(config.NodeId))
	if nodeId < 1 || nodeId > 127 {
		return config, fmt.Errorf("node_id should be between 1 and 127, value given : %v", nodeId)
	}
	config.NodeId = uint8(nodeId)
	config.BootTimeoutMs = uint32(master.Key("boot_timeout_ms").MustUint(uint(config.BootTimeoutMs)))
	config.SDOTimeoutMs = uint32(master.Key("sdo_timeout_ms").MustUint(uint(config.SDOTimeoutMs)))

	config.SyncCounter = file.Section("sync").Key("counter").MustBool(config.SyncCounter)
	return config, nil
}

// MasterOptions converts the configuration into options for NewMaster.
func (c Config) MasterOptions() []Option {
	opts := []Option{
		WithBootTimeout(c.BootTimeoutMs),
		WithSDOTimeout(c.SDOTimeoutMs),
	}
	if c.SyncCounter {
		opts = append(opts, WithSyncCounter())
	}
	return opts
}
