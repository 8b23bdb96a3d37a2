package comaster

// Sync sends a SYNC frame on the bus.
//
// In the default variant the frame carries no data. With the counted
// variant (see WithSyncCounter) it carries a 1-byte counter that
// increments after every call and wraps at the 8-bit boundary, which is
// intentional and not an error.
func (m *Master) Sync() error {
	if !m.syncCounterEnabled {
		return m.channel.Send(NewFrame(uint16(FuncSync), 0))
	}
	frame := NewFrame(uint16(FuncSync), 1)
	frame.Data[0] = m.syncCounter
	m.syncCounter++
	return m.channel.Send(frame)
}

// ResetSyncCounter resets the SYNC counter to 1.
//
// With the counted variant this needs to be called once before the first
// Sync and again after communication has been stopped and started again.
// It has no effect on the default variant.
func (m *Master) ResetSyncCounter() {
	m.syncCounter = 1
}
