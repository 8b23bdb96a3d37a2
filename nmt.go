package comaster

import (
	log "github.com/sirupsen/logrus"
)

// Available NMT commands.
// They can be sent to individual nodes or broadcasted to all nodes.
type NMTCommand uint8

const (
	NMTEnterOperational    NMTCommand = 0x01
	NMTEnterStopped        NMTCommand = 0x02
	NMTEnterPreOperational NMTCommand = 0x80
	NMTResetNode           NMTCommand = 0x81
	NMTResetCommunication  NMTCommand = 0x82
)

var nmtCommandDescription = map[NMTCommand]string{
	NMTEnterOperational:    "ENTER-OPERATIONAL",
	NMTEnterStopped:        "ENTER-STOPPED",
	NMTEnterPreOperational: "ENTER-PREOPERATIONAL",
	NMTResetNode:           "RESET-NODE",
	NMTResetCommunication:  "RESET-COMMUNICATION",
}

// Boot-up message : heartbeat frame carrying the initializing state
const nmtStateBootUp uint8 = 0x00

// Command sends an NMT state change request to a node.
// nodeId 0 is used as a broadcast, i.e. affects all nodes on the network.
func (m *Master) Command(nodeId uint8, command NMTCommand) error {
	if nodeId > 127 {
		return ErrIllegalArgument
	}
	switch command {
	case NMTEnterOperational, NMTEnterStopped, NMTEnterPreOperational,
		NMTResetNode, NMTResetCommunication:
	default:
		return ErrIllegalArgument
	}
	frame := NewFrame(uint16(FuncNMT), 2)
	frame.Data[0] = uint8(command)
	frame.Data[1] = nodeId
	log.Debugf("[NMT] sending command %v to node(s) %v (x%x)", nmtCommandDescription[command], nodeId, nodeId)
	return m.channel.Send(frame)
}

// WaitForBoot blocks until the node sends its boot-up message, polling the
// receive channel. It fails with ErrTimeout once the boot timeout elapses,
// and forwards any receive error immediately. Frames that are not the
// awaited boot-up message are discarded.
func (m *Master) WaitForBoot(nodeId uint8) error {
	if nodeId < 1 || nodeId > 127 {
		return ErrIllegalArgument
	}
	start := m.channel.Clock()
	for {
		frame, err := m.channel.Recv()
		switch {
		case err == nil:
			if frame.FunctionCode() == FuncHeartbeat &&
				frame.NodeId() == nodeId &&
				frame.DLC == 1 &&
				frame.Data[0] == nmtStateBootUp {
				log.Debugf("[NMT] node x%x sent boot-up message", nodeId)
				return nil
			}
		case err == ErrRxEmpty:
			// nothing pending, keep polling until the deadline
		default:
			return err
		}
		if m.timedOut(start, m.bootTimeoutMs) {
			log.Warnf("[NMT] timed out waiting for boot-up of node x%x", nodeId)
			return ErrTimeout
		}
	}
}
