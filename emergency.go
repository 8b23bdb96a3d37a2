package comaster

// Error register bits carried in an EMCY frame
const (
	ErrRegGeneric       uint8 = 0x01 // bit 0 - generic error
	ErrRegCurrent       uint8 = 0x02 // bit 1 - current
	ErrRegVoltage       uint8 = 0x04 // bit 2 - voltage
	ErrRegTemperature   uint8 = 0x08 // bit 3 - temperature
	ErrRegCommunication uint8 = 0x10 // bit 4 - communication error
	ErrRegDevProfile    uint8 = 0x20 // bit 5 - device profile specific
	ErrRegManufacturer  uint8 = 0x80 // bit 7 - manufacturer specific
)

// Common emergency error codes
const (
	EmcyNoError        uint16 = 0x0000
	EmcyGeneric        uint16 = 0x1000
	EmcyCurrent        uint16 = 0x2000
	EmcyVoltage        uint16 = 0x3000
	EmcyTemperature    uint16 = 0x4000
	EmcyHardware       uint16 = 0x5000
	EmcySoftware       uint16 = 0x6000
	EmcyMonitoring     uint16 = 0x8000
	EmcyCommunication  uint16 = 0x8100
	EmcyProtocol       uint16 = 0x8200
	EmcyExternal       uint16 = 0x9000
	EmcyDeviceSpecific uint16 = 0xFF00
)

var emcyDescription = map[uint16]string{
	EmcyNoError:        "Reset or No Error",
	EmcyGeneric:        "Generic Error",
	EmcyCurrent:        "Current",
	EmcyVoltage:        "Voltage",
	EmcyTemperature:    "Temperature",
	EmcyHardware:       "Device Hardware",
	EmcySoftware:       "Device Software",
	EmcyMonitoring:     "Monitoring",
	EmcyCommunication:  "Communication",
	EmcyProtocol:       "Protocol Error",
	EmcyExternal:       "External Error",
	EmcyDeviceSpecific: "Device specific",
}

// EMCYDescription returns a readable description for an emergency error
// code. Unknown codes fall back to their 0xXX00 class.
func EMCYDescription(errorCode uint16) string {
	if description, ok := emcyDescription[errorCode]; ok {
		return description
	}
	if description, ok := emcyDescription[errorCode&0xFF00]; ok {
		return description
	}
	if description, ok := emcyDescription[errorCode&0xF000]; ok {
		return description
	}
	return "Unknown"
}
