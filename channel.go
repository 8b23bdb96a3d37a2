package comaster

// A Channel is the link between the master and the CAN hardware.
// It is implemented by the host application, or by one of the bundled
// implementations ([SocketcanChannel], [Loopback]).
type Channel interface {
	// Recv returns the next pending frame. It must not block : when no
	// frame is pending it returns ErrRxEmpty. Any other error is a
	// transport failure and is forwarded as is to the caller of the
	// master operation that was receiving.
	Recv() (Frame, error)

	// Send transmits a frame on the bus. A nil return must mean the frame
	// was actually put on the medium, not only queued. Reporting success
	// for a dropped frame can deadlock the cyclic phase, e.g. a lost SYNC
	// with a node that only answers on SYNC.
	Send(frame Frame) error

	// Clock returns a monotonically non-decreasing millisecond counter.
	// The epoch is arbitrary, it is only used to measure timeouts.
	Clock() uint32
}

// EMCYCallback is invoked for every EMCY frame seen by ReceivePDO.
// The callback must not block, it runs on the receive path.
type EMCYCallback func(nodeId uint8, errorCode uint16, errorRegister uint8, manufacturer [5]byte)
