package comaster

import (
	"encoding/binary"

	log "github.com/sirupsen/logrus"
)

// Byte offsets of the fields inside an EMCY frame
const (
	emcyOffsetErrorCode    = 0 // 2 bytes, little endian
	emcyOffsetRegister     = 2 // 1 byte
	emcyOffsetManufacturer = 3 // 5 bytes
)

// SendPDO sends process data to a node on its first receive PDO channel.
// data must be 1 to 8 bytes, in network byte order (LSB first).
func (m *Master) SendPDO(nodeId uint8, data []byte) error {
	if nodeId < 1 || nodeId > 127 || len(data) == 0 || len(data) > 8 {
		return ErrIllegalArgument
	}
	frame := NewFrame(uint16(FuncRPDO1)+uint16(nodeId), uint8(len(data)))
	copy(frame.Data[:], data)
	return m.channel.Send(frame)
}

// ReceivePDO makes one non-blocking attempt to receive process data from
// the node's first transmit PDO channel. It examines at most one frame per
// call, it is meant to be driven by a frame arrival notification.
//
// Outcomes :
//   - a matching PDO frame arrived : its payload is returned
//   - an EMCY frame arrived : it is forwarded to the EMCY callback and
//     ErrRxEmpty is returned, the frame was handled but is not process data
//   - nothing pending, or a frame this master cannot use (wrong node,
//     unrelated service) : ErrRxEmpty, try again on the next notification
//   - receive failure : the transport error, unchanged
func (m *Master) ReceivePDO(nodeId uint8) ([]byte, error) {
	if nodeId < 1 || nodeId > 127 {
		return nil, ErrIllegalArgument
	}
	frame, err := m.channel.Recv()
	if err != nil {
		// either no data or a transport error, forward to application
		return nil, err
	}
	switch {
	case frame.FunctionCode() == FuncEMCY:
		m.handleEMCY(frame)
		return nil, ErrRxEmpty
	case frame.FunctionCode() == FuncTPDO1 && frame.NodeId() == nodeId:
		data := make([]byte, frame.DLC)
		copy(data, frame.Data[:frame.DLC])
		return data, nil
	}
	// not something we can handle, silently discard
	return nil, ErrRxEmpty
}

func (m *Master) handleEMCY(frame Frame) {
	errorCode := binary.LittleEndian.Uint16(frame.Data[emcyOffsetErrorCode:])
	errorRegister := frame.Data[emcyOffsetRegister]
	var manufacturer [5]byte
	copy(manufacturer[:], frame.Data[emcyOffsetManufacturer:])
	log.Warnf("[EMCY] node x%x reported x%04x (%v), register x%02x, manufacturer %v",
		frame.NodeId(), errorCode, EMCYDescription(errorCode), errorRegister, manufacturer)
	if m.emcy != nil {
		m.emcy(frame.NodeId(), errorCode, errorRegister, manufacturer)
	}
}
