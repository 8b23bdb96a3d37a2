package comaster

import (
	"encoding/binary"

	log "github.com/sirupsen/logrus"
)

// SDO command bytes and header bit fields, expedited transfers only
const (
	sdoDownloadInitiate uint8 = 0x23 // ccs=1, expedited, size indicated
	sdoUploadInitiate   uint8 = 0x40 // ccs=2

	sdoStatusMask        uint8 = 0xF0 // command specifier nibble of a response
	sdoNFieldMask        uint8 = 0x0C // n[3:2], count of unused data bytes
	sdoExpeditedSizeMask uint8 = 0x03 // e[1] expedited, s[0] size indicated
)

// SDOWrite writes a value of size 1 to 4 bytes to an entry of a node.
// value is truncated to size bytes.
//
// The call blocks, polling the receive channel, until the node confirms or
// aborts the download, the SDO timeout elapses (ErrTimeout), or the
// transport fails. Frames that are not the awaited response are discarded.
func (m *Master) SDOWrite(nodeId uint8, index uint16, subIndex uint8, value uint32, size uint8) error {
	if nodeId < 1 || nodeId > 127 || size < 1 || size > 4 {
		return ErrIllegalArgument
	}
	nField := (4 - size) << 2 // count of unused bytes of the data part
	frame := NewFrame(uint16(FuncSDORequest)+uint16(nodeId), 8)
	frame.Data[0] = sdoDownloadInitiate | nField
	binary.LittleEndian.PutUint16(frame.Data[1:3], index)
	frame.Data[3] = subIndex
	var raw [4]byte
	binary.LittleEndian.PutUint32(raw[:], value)
	copy(frame.Data[4:4+size], raw[:size])

	log.Debugf("[SDO] write x%x|x%x @ node x%x, size %v, value x%x", index, subIndex, nodeId, size, value)
	if err := m.channel.Send(frame); err != nil {
		return err
	}
	response, err := m.waitResponse(nodeId, func(f Frame) bool {
		return m.responseMatches(f, nodeId, index, subIndex)
	})
	if err != nil {
		return err
	}
	switch response.Data[0] & sdoStatusMask {
	case 0x20, 0x60:
		return nil
	default: // 0x80 abort or anything unexpected
		log.Warnf("[SDO] write x%x|x%x @ node x%x aborted, status x%02x", index, subIndex, nodeId, response.Data[0])
		return ErrSDOAbort
	}
}

// SDORead reads a value of size 1 to 4 bytes from an entry of a node.
//
// Same blocking behavior as SDOWrite. A response whose declared data width
// does not match size is not accepted, the call keeps waiting.
func (m *Master) SDORead(nodeId uint8, index uint16, subIndex uint8, size uint8) (uint32, error) {
	if nodeId < 1 || nodeId > 127 || size < 1 || size > 4 {
		return 0, ErrIllegalArgument
	}
	frame := NewFrame(uint16(FuncSDORequest)+uint16(nodeId), 8)
	frame.Data[0] = sdoUploadInitiate
	binary.LittleEndian.PutUint16(frame.Data[1:3], index)
	frame.Data[3] = subIndex

	log.Debugf("[SDO] read x%x|x%x @ node x%x, size %v", index, subIndex, nodeId, size)
	if err := m.channel.Send(frame); err != nil {
		return 0, err
	}
	nField := (4 - size) << 2
	response, err := m.waitResponse(nodeId, func(f Frame) bool {
		return m.responseMatches(f, nodeId, index, subIndex) &&
			f.Data[0]&sdoExpeditedSizeMask == sdoExpeditedSizeMask &&
			f.Data[0]&sdoNFieldMask == nField
	})
	if err != nil {
		return 0, err
	}
	switch response.Data[0] & sdoStatusMask {
	case 0x40, 0x60:
		var raw [4]byte
		copy(raw[:size], response.Data[4:4+size])
		return binary.LittleEndian.Uint32(raw[:]), nil
	default:
		log.Warnf("[SDO] read x%x|x%x @ node x%x aborted, status x%02x", index, subIndex, nodeId, response.Data[0])
		return 0, ErrSDOAbort
	}
}

// responseMatches checks the fields every expedited response must carry :
// the node's SDO response channel, a full 8-byte frame, and the echoed
// index/subindex of the request.
func (m *Master) responseMatches(f Frame, nodeId uint8, index uint16, subIndex uint8) bool {
	return f.FunctionCode() == FuncSDOResponse &&
		f.NodeId() == nodeId &&
		f.DLC == 8 &&
		f.Data[1] == uint8(index) &&
		f.Data[2] == uint8(index>>8) &&
		f.Data[3] == subIndex
}

// waitResponse polls the receive channel until a frame accepted by match
// arrives, the SDO timeout elapses, or the transport fails. The first
// matching frame wins, everything else is dropped without buffering.
func (m *Master) waitResponse(nodeId uint8, match func(Frame) bool) (Frame, error) {
	start := m.channel.Clock()
	for {
		frame, err := m.channel.Recv()
		switch {
		case err == nil:
			if match(frame) {
				return frame, nil
			}
		case err == ErrRxEmpty:
			// nothing pending, keep polling until the deadline
		default:
			return Frame{}, err
		}
		if m.timedOut(start, m.sdoTimeoutMs) {
			log.Warnf("[SDO] timed out waiting for response of node x%x", nodeId)
			return Frame{}, ErrTimeout
		}
	}
}
