package comaster

import "sync"

// Loopback is an in-process Channel with a scriptable peer side. It plays
// the role a virtual CAN bus would : the test suite runs the master
// against it, and applications can use it for dry runs without hardware.
//
// The clock advances by one tick on every Recv attempt, so blocking
// operations make progress towards their deadline even when no frame
// ever arrives.
type Loopback struct {
	mu      sync.Mutex
	now     uint32
	tickMs  uint32
	rx      []Frame
	sent    []Frame
	peer    func(Frame) []Frame
	recvErr error
	sendErr error
}

func NewLoopback() *Loopback {
	return &Loopback{tickMs: 1}
}

// Recv implements Channel.
func (l *Loopback) Recv() (Frame, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now += l.tickMs
	if l.recvErr != nil {
		return Frame{}, l.recvErr
	}
	if len(l.rx) == 0 {
		return Frame{}, ErrRxEmpty
	}
	frame := l.rx[0]
	l.rx = l.rx[1:]
	return frame, nil
}

// Send implements Channel. The frame is recorded and, if a peer script is
// set, its replies are queued for reception.
func (l *Loopback) Send(frame Frame) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.sendErr != nil {
		return l.sendErr
	}
	l.sent = append(l.sent, frame)
	if l.peer != nil {
		l.rx = append(l.rx, l.peer(frame)...)
	}
	return nil
}

// Clock implements Channel.
func (l *Loopback) Clock() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

// Queue adds frames to be received by the master.
func (l *Loopback) Queue(frames ...Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rx = append(l.rx, frames...)
}

// SetPeer installs a script invoked for every sent frame, its return
// frames are queued for reception. A nil return means no reply.
func (l *Loopback) SetPeer(peer func(Frame) []Frame) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.peer = peer
}

// Sent returns a copy of all frames sent so far.
func (l *Loopback) Sent() []Frame {
	l.mu.Lock()
	defer l.mu.Unlock()
	sent := make([]Frame, len(l.sent))
	copy(sent, l.sent)
	return sent
}

// Advance moves the clock forward by ms milliseconds.
func (l *Loopback) Advance(ms uint32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now += ms
}

// FailRecv makes every following Recv fail with err (nil restores
// normal operation).
func (l *Loopback) FailRecv(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recvErr = err
}

// FailSend makes every following Send fail with err (nil restores
// normal operation).
func (l *Loopback) FailSend(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sendErr = err
}
