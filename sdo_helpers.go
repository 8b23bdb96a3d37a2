package comaster

// Typed wrappers around SDORead / SDOWrite for the supported container
// widths. Signed values are carried in their two's complement form.

func (m *Master) SDOWriteUint8(nodeId uint8, index uint16, subIndex uint8, value uint8) error {
	return m.SDOWrite(nodeId, index, subIndex, uint32(value), 1)
}

func (m *Master) SDOWriteUint16(nodeId uint8, index uint16, subIndex uint8, value uint16) error {
	return m.SDOWrite(nodeId, index, subIndex, uint32(value), 2)
}

func (m *Master) SDOWriteUint32(nodeId uint8, index uint16, subIndex uint8, value uint32) error {
	return m.SDOWrite(nodeId, index, subIndex, value, 4)
}

func (m *Master) SDOWriteInt8(nodeId uint8, index uint16, subIndex uint8, value int8) error {
	return m.SDOWrite(nodeId, index, subIndex, uint32(uint8(value)), 1)
}

func (m *Master) SDOWriteInt16(nodeId uint8, index uint16, subIndex uint8, value int16) error {
	return m.SDOWrite(nodeId, index, subIndex, uint32(uint16(value)), 2)
}

func (m *Master) SDOWriteInt32(nodeId uint8, index uint16, subIndex uint8, value int32) error {
	return m.SDOWrite(nodeId, index, subIndex, uint32(value), 4)
}

func (m *Master) SDOReadUint8(nodeId uint8, index uint16, subIndex uint8) (uint8, error) {
	value, err := m.SDORead(nodeId, index, subIndex, 1)
	return uint8(value), err
}

func (m *Master) SDOReadUint16(nodeId uint8, index uint16, subIndex uint8) (uint16, error) {
	value, err := m.SDORead(nodeId, index, subIndex, 2)
	return uint16(value), err
}

func (m *Master) SDOReadUint32(nodeId uint8, index uint16, subIndex uint8) (uint32, error) {
	return m.SDORead(nodeId, index, subIndex, 4)
}

func (m *Master) SDOReadInt8(nodeId uint8, index uint16, subIndex uint8) (int8, error) {
	value, err := m.SDORead(nodeId, index, subIndex, 1)
	return int8(uint8(value)), err
}

func (m *Master) SDOReadInt16(nodeId uint8, index uint16, subIndex uint8) (int16, error) {
	value, err := m.SDORead(nodeId, index, subIndex, 2)
	return int16(uint16(value)), err
}

func (m *Master) SDOReadInt32(nodeId uint8, index uint16, subIndex uint8) (int32, error) {
	value, err := m.SDORead(nodeId, index, subIndex, 4)
	return int32(value), err
}
