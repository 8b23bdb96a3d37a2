package comaster

import (
	"time"

	"github.com/brutella/can"
	log "github.com/sirupsen/logrus"
)

// Frames received while nobody polls are buffered up to this depth,
// further frames are dropped.
const socketcanRxQueueSize = 64

// SocketcanChannel is a Channel backed by a socketcan interface, using
// brutella/can underneath. Received frames are queued internally so that
// Recv never blocks.
type SocketcanChannel struct {
	bus   *can.Bus
	rx    chan Frame
	epoch time.Time
}

// NewSocketcanChannel opens the given socketcan interface (e.g. "can0")
// and starts receiving.
func NewSocketcanChannel(name string) (*SocketcanChannel, error) {
	bus, err := can.NewBusForInterfaceWithName(name)
	if err != nil {
		return nil, err
	}
	channel := &SocketcanChannel{
		bus:   bus,
		rx:    make(chan Frame, socketcanRxQueueSize),
		epoch: time.Now(),
	}
	bus.Subscribe(channel)
	go func() {
		if err := bus.ConnectAndPublish(); err != nil {
			log.Errorf("[SOCKETCAN] receive routine has closed because : %v", err)
		}
	}()
	return channel, nil
}

// Handle implements the brutella/can handler interface, it queues every
// received standard data frame.
func (c *SocketcanChannel) Handle(frame can.Frame) {
	if frame.ID&^uint32(maskCobId) != 0 {
		// extended, RTR or error frame, not used by this stack
		return
	}
	select {
	case c.rx <- Frame{ID: uint16(frame.ID), DLC: frame.Length, Data: frame.Data}:
	default:
		log.Warnf("[SOCKETCAN] receive queue full, frame x%x dropped", frame.ID)
	}
}

// Recv implements Channel, it never blocks.
func (c *SocketcanChannel) Recv() (Frame, error) {
	select {
	case frame := <-c.rx:
		return frame, nil
	default:
		return Frame{}, ErrRxEmpty
	}
}

// Send implements Channel.
func (c *SocketcanChannel) Send(frame Frame) error {
	return c.bus.Publish(can.Frame{
		ID:     uint32(frame.ID),
		Length: frame.DLC,
		Data:   frame.Data,
	})
}

// Clock implements Channel, milliseconds since the channel was opened.
func (c *SocketcanChannel) Clock() uint32 {
	return uint32(time.Since(c.epoch).Milliseconds())
}

// Disconnect closes the underlying socketcan interface.
func (c *SocketcanChannel) Disconnect() error {
	return c.bus.Disconnect()
}
