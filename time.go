package comaster

// TimeFromClock can be passed to Time to use the channel clock for the
// millisecond value instead of an explicit one.
const TimeFromClock uint32 = 0xFFFFFFFF

// The millisecond field of the timestamp is 24 bits wide and wraps after
// roughly 4.66 hours. The wrap is not compensated here, callers that run
// longer have to deal with it.
const timeMsMask uint32 = 0xFFFFFF

// Time sends a timestamp broadcast carrying ms as the milliseconds field.
// If ms is TimeFromClock the value is taken from the channel clock.
// Only the millisecond part of the TIME_OF_DAY type is implemented, the
// day field is always zero.
func (m *Master) Time(ms uint32) error {
	if ms == TimeFromClock {
		ms = m.channel.Clock()
	}
	ms &= timeMsMask
	frame := NewFrame(uint16(FuncTime), 6)
	frame.Data[0] = uint8(ms)
	frame.Data[1] = uint8(ms >> 8)
	frame.Data[2] = uint8(ms >> 16)
	// Data[3] reserved, Data[4:6] days, all zero
	return m.channel.Send(frame)
}
