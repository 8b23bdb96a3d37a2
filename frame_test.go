package comaster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunctionCodeAndNodeId(t *testing.T) {
	bases := []FunctionCode{
		FuncNMT,
		FuncSync,
		FuncTime,
		FuncTPDO1,
		FuncRPDO1,
		FuncSDOResponse,
		FuncSDORequest,
		FuncHeartbeat,
	}
	for _, base := range bases {
		for nodeId := uint16(0); nodeId <= 127; nodeId++ {
			frame := NewFrame(uint16(base)+nodeId, 0)
			assert.Equal(t, base, frame.FunctionCode())
			assert.Equal(t, uint8(nodeId), frame.NodeId())
		}
	}
}

func TestFunctionCodeUsesTopBitsOnly(t *testing.T) {
	// Two ids differing only in their low 7 bits share the function code
	assert.Equal(t, NewFrame(0x581, 0).FunctionCode(), NewFrame(0x5FF, 0).FunctionCode())
	// And differing top bits give different codes
	assert.NotEqual(t, NewFrame(0x181, 0).FunctionCode(), NewFrame(0x201, 0).FunctionCode())
}

func TestNewFrameMasksTo11Bits(t *testing.T) {
	frame := NewFrame(0xF705, 2)
	assert.Equal(t, uint16(0x705), frame.ID)
	assert.Equal(t, uint8(2), frame.DLC)
}
