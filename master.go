package comaster

// Default timeouts for the blocking operations, in milliseconds.
const (
	DefaultBootTimeoutMs uint32 = 3000
	DefaultSDOTimeoutMs  uint32 = 1000
)

// A Master drives remote CANopen nodes over a single Channel.
//
// All operations share the one inbound frame stream of the channel. The
// blocking operations (WaitForBoot, SDORead, SDOWrite) and ReceivePDO
// consume from that stream, so at most one of them may run at a time.
// The Master carries no lock, this mutual exclusion is up to the caller.
type Master struct {
	channel Channel
	emcy    EMCYCallback

	bootTimeoutMs uint32
	sdoTimeoutMs  uint32

	// SYNC counter, only used when the counted variant is enabled
	syncCounterEnabled bool
	syncCounter        uint8
}

// Option configures a Master at construction.
type Option func(*Master)

// WithBootTimeout sets the timeout for WaitForBoot in milliseconds.
// Must stay below half the 32-bit millisecond range.
func WithBootTimeout(ms uint32) Option {
	return func(m *Master) {
		m.bootTimeoutMs = ms
	}
}

// WithSDOTimeout sets the timeout for SDO transactions in milliseconds.
// Must stay below half the 32-bit millisecond range.
func WithSDOTimeout(ms uint32) Option {
	return func(m *Master) {
		m.sdoTimeoutMs = ms
	}
}

// WithSyncCounter enables the counted SYNC variant : Sync sends a 1-byte
// incrementing counter instead of an empty frame. ResetSyncCounter must be
// called once before the first Sync and again after a communication
// restart.
func WithSyncCounter() Option {
	return func(m *Master) {
		m.syncCounterEnabled = true
	}
}

// WithEMCYCallback sets the callback EMCY reports are forwarded to.
func WithEMCYCallback(callback EMCYCallback) Option {
	return func(m *Master) {
		m.emcy = callback
	}
}

// NewMaster creates a master on the given channel.
func NewMaster(channel Channel, opts ...Option) (*Master, error) {
	if channel == nil {
		return nil, ErrIllegalArgument
	}
	master := &Master{
		channel:       channel,
		bootTimeoutMs: DefaultBootTimeoutMs,
		sdoTimeoutMs:  DefaultSDOTimeoutMs,
	}
	for _, opt := range opts {
		opt(master)
	}
	return master, nil
}

// timedOut reports whether timeoutMs milliseconds have elapsed since
// start. Safe across clock wraparound as long as the timeout is below
// half the counter range.
func (m *Master) timedOut(start uint32, timeoutMs uint32) bool {
	delta := int32(m.channel.Clock() - start)
	if delta < 0 {
		delta = -delta
	}
	return uint32(delta) >= timeoutMs
}
