package comaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeFrame(t *testing.T) {
	loopback := NewLoopback()
	master, _ := NewMaster(loopback)

	assert.Nil(t, master.Time(0x123456))
	sent := loopback.Sent()
	assert.Len(t, sent, 1)
	assert.Equal(t, uint16(FuncTime), sent[0].ID)
	assert.Equal(t, uint8(6), sent[0].DLC)
	// 24-bit little-endian milliseconds, reserved byte and day field zero
	assert.Equal(t, [8]byte{0x56, 0x34, 0x12, 0, 0, 0, 0, 0}, sent[0].Data)
}

func TestTimeFromClock(t *testing.T) {
	loopback := NewLoopback()
	master, _ := NewMaster(loopback)

	loopback.Advance(5000)
	assert.Nil(t, master.Time(TimeFromClock))
	sent := loopback.Sent()
	assert.Equal(t, [8]byte{0x88, 0x13, 0, 0, 0, 0, 0, 0}, sent[0].Data) // 5000 = 0x1388
}

func TestTimeMasksTo24Bits(t *testing.T) {
	loopback := NewLoopback()
	master, _ := NewMaster(loopback)

	assert.Nil(t, master.Time(0x12345678))
	sent := loopback.Sent()
	assert.Equal(t, [8]byte{0x78, 0x56, 0x34, 0, 0, 0, 0, 0}, sent[0].Data)
}
