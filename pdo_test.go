package comaster

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendPDOFrame(t *testing.T) {
	loopback := NewLoopback()
	master, _ := NewMaster(loopback)

	assert.Nil(t, master.SendPDO(5, []byte{0x11, 0x22, 0x33}))
	sent := loopback.Sent()
	assert.Len(t, sent, 1)
	assert.Equal(t, uint16(FuncRPDO1)+5, sent[0].ID)
	assert.Equal(t, uint8(3), sent[0].DLC)
	assert.Equal(t, [8]byte{0x11, 0x22, 0x33, 0, 0, 0, 0, 0}, sent[0].Data)
}

func TestSendPDOIllegalArguments(t *testing.T) {
	master, _ := NewMaster(NewLoopback())
	assert.Equal(t, ErrIllegalArgument, master.SendPDO(0, []byte{1}))
	assert.Equal(t, ErrIllegalArgument, master.SendPDO(128, []byte{1}))
	assert.Equal(t, ErrIllegalArgument, master.SendPDO(5, nil))
	assert.Equal(t, ErrIllegalArgument, master.SendPDO(5, make([]byte, 9)))
}

func TestReceivePDOMatch(t *testing.T) {
	loopback := NewLoopback()
	master, _ := NewMaster(loopback)

	frame := NewFrame(uint16(FuncTPDO1)+5, 4)
	copy(frame.Data[:], []byte{0xDE, 0xAD, 0xBE, 0xEF})
	loopback.Queue(frame)

	data, err := master.ReceivePDO(5)
	assert.Nil(t, err)
	assert.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, data)
}

func TestReceivePDONothingPending(t *testing.T) {
	master, _ := NewMaster(NewLoopback())
	data, err := master.ReceivePDO(5)
	assert.Equal(t, ErrRxEmpty, err)
	assert.Nil(t, data)
}

func TestReceivePDODiscardsUnusableFrames(t *testing.T) {
	loopback := NewLoopback()
	master, _ := NewMaster(loopback)

	// Wrong node, then unrelated service : one attempt each, both discarded
	loopback.Queue(NewFrame(uint16(FuncTPDO1)+6, 8))
	_, err := master.ReceivePDO(5)
	assert.Equal(t, ErrRxEmpty, err)

	loopback.Queue(NewFrame(uint16(FuncSDOResponse)+5, 8))
	_, err = master.ReceivePDO(5)
	assert.Equal(t, ErrRxEmpty, err)
}

func TestReceivePDOTransportError(t *testing.T) {
	loopback := NewLoopback()
	master, _ := NewMaster(loopback)

	transportErr := errors.New("controller in bus-off state")
	loopback.FailRecv(transportErr)
	_, err := master.ReceivePDO(5)
	assert.Equal(t, transportErr, err)
}

func TestReceivePDOForwardsEmergency(t *testing.T) {
	loopback := NewLoopback()

	var gotNodeId uint8
	var gotCode uint16
	var gotRegister uint8
	var gotManufacturer [5]byte
	calls := 0
	master, _ := NewMaster(loopback, WithEMCYCallback(
		func(nodeId uint8, errorCode uint16, errorRegister uint8, manufacturer [5]byte) {
			gotNodeId = nodeId
			gotCode = errorCode
			gotRegister = errorRegister
			gotManufacturer = manufacturer
			calls++
		}))

	emcy := NewFrame(uint16(FuncEMCY)+12, 8)
	copy(emcy.Data[:], []byte{0x20, 0x31, 0x04, 0xA1, 0xA2, 0xA3, 0xA4, 0xA5})
	loopback.Queue(emcy)

	// EMCY frames are forwarded regardless of the node the PDO is awaited from
	data, err := master.ReceivePDO(5)
	assert.Equal(t, ErrRxEmpty, err)
	assert.Nil(t, data)
	assert.Equal(t, 1, calls)
	assert.Equal(t, uint8(12), gotNodeId)
	assert.Equal(t, uint16(0x3120), gotCode)
	assert.Equal(t, uint8(0x04), gotRegister)
	assert.Equal(t, [5]byte{0xA1, 0xA2, 0xA3, 0xA4, 0xA5}, gotManufacturer)
}

func TestReceivePDOEmergencyWithoutCallback(t *testing.T) {
	loopback := NewLoopback()
	master, _ := NewMaster(loopback)

	emcy := NewFrame(uint16(FuncEMCY)+12, 8)
	loopback.Queue(emcy)
	_, err := master.ReceivePDO(5)
	assert.Equal(t, ErrRxEmpty, err)
}
