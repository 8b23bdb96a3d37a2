package comaster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "comaster.ini")
	assert.Nil(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `
[can]
interface = vcan0

[master]
node_id         = 10
boot_timeout_ms = 5000
sdo_timeout_ms  = 250

[sync]
counter = true
`)
	config, err := LoadConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, "vcan0", config.Interface)
	assert.Equal(t, uint8(10), config.NodeId)
	assert.Equal(t, uint32(5000), config.BootTimeoutMs)
	assert.Equal(t, uint32(250), config.SDOTimeoutMs)
	assert.True(t, config.SyncCounter)
}

func TestLoadConfigMissingKeysKeepDefaults(t *testing.T) {
	path := writeConfigFile(t, `
[master]
node_id = 3
`)
	config, err := LoadConfig(path)
	assert.Nil(t, err)
	assert.Equal(t, "can0", config.Interface)
	assert.Equal(t, uint8(3), config.NodeId)
	assert.Equal(t, DefaultBootTimeoutMs, config.BootTimeoutMs)
	assert.Equal(t, DefaultSDOTimeoutMs, config.SDOTimeoutMs)
	assert.False(t, config.SyncCounter)
}

func TestLoadConfigNodeIdOutOfRange(t *testing.T) {
	path := writeConfigFile(t, `
[master]
node_id = 200
`)
	_, err := LoadConfig(path)
	assert.NotNil(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.ini"))
	assert.NotNil(t, err)
}

func TestMasterOptions(t *testing.T) {
	config := Config{BootTimeoutMs: 700, SDOTimeoutMs: 300, SyncCounter: true}
	master, err := NewMaster(NewLoopback(), config.MasterOptions()...)
	assert.Nil(t, err)
	assert.Equal(t, uint32(700), master.bootTimeoutMs)
	assert.Equal(t, uint32(300), master.sdoTimeoutMs)
	assert.True(t, master.syncCounterEnabled)
}
