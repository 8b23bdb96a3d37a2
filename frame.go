package comaster

// Masks for splitting the 11-bit COB-ID into its two parts
const (
	maskCobId        uint16 = 0x7FF
	maskFunctionCode uint16 = 0x780 // top 4 bits
	maskNodeId       uint16 = 0x07F // low 7 bits
)

// FunctionCode is the 4-bit service part of a COB-ID.
type FunctionCode uint16

// COB-IDs for the default communication channels.
// Only the first PDO pair is supported.
const (
	FuncNMT         FunctionCode = 0x000 // NMT node control
	FuncSync        FunctionCode = 0x080 // SYNC broadcast, master to nodes
	FuncEMCY        FunctionCode = 0x080 // Emergency (+ node id), nodes to master
	FuncTime        FunctionCode = 0x100 // Timestamp
	FuncTPDO1       FunctionCode = 0x180 // first transmit PDO (+ node id), node to master
	FuncRPDO1       FunctionCode = 0x200 // first receive PDO (+ node id), master to node
	FuncSDOResponse FunctionCode = 0x580 // SDO server response (+ node id)
	FuncSDORequest  FunctionCode = 0x600 // SDO client request (+ node id)
	FuncHeartbeat   FunctionCode = 0x700 // heartbeat / boot-up (+ node id)
)

// FuncSync and FuncEMCY share the same base. A master is the only SYNC
// producer on the bus and never receives its own frames, so anything
// received at 0x080 is an EMCY.

// A Frame is the minimal representation of a CAN frame used by this stack.
// Identifiers are standard 11-bit, RTR is always assumed to be 0.
type Frame struct {
	ID   uint16  // CAN object identifier, 4-bit function code + 7-bit node id
	DLC  uint8   // length of data, 0 to 8
	Data [8]byte // frame data, only the first DLC bytes are meaningful
}

func NewFrame(id uint16, dlc uint8) Frame {
	return Frame{ID: id & maskCobId, DLC: dlc}
}

// FunctionCode returns the service part of the frame COB-ID.
func (f Frame) FunctionCode() FunctionCode {
	return FunctionCode(f.ID & maskFunctionCode)
}

// NodeId returns the node id part of the frame COB-ID. It is only
// meaningful for EMCY, PDO, SDO and heartbeat frames.
func (f Frame) NodeId() uint8 {
	return uint8(f.ID & maskNodeId)
}
