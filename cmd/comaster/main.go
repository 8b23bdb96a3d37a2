package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/nwaldispuehl/comaster"
)

var DEFAULT_INTERFACE = "can0"
var DEFAULT_NODE_ID = 10

// Demo master. It resets the bus, waits for the node to boot, reads its
// identity object, configures the first PDO pair as synchronous, brings
// the node operational and runs the cyclic SYNC + PDO exchange.
func main() {
	configPath := flag.String("config", "", "path to ini configuration file")
	channelName := flag.String("interface", DEFAULT_INTERFACE, "socketcan interface, e.g. can0")
	nodeIdFlag := flag.Int("id", DEFAULT_NODE_ID, "node id to control (1-127)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	config := comaster.DefaultConfig()
	config.Interface = *channelName
	config.NodeId = uint8(*nodeIdFlag)
	if *configPath != "" {
		var err error
		config, err = comaster.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	channel, err := comaster.NewSocketcanChannel(config.Interface)
	if err != nil {
		log.Fatalf("failed to open %v : %v", config.Interface, err)
	}
	defer channel.Disconnect()

	opts := append(config.MasterOptions(), comaster.WithEMCYCallback(onEmergency))
	master, err := comaster.NewMaster(channel, opts...)
	if err != nil {
		log.Fatalf("failed to create master : %v", err)
	}
	nodeId := config.NodeId

	// Reset all nodes and wait for ours to come back up
	if err := master.Command(0, comaster.NMTResetNode); err != nil {
		log.Fatalf("reset failed : %v", err)
	}
	if err := master.WaitForBoot(nodeId); err != nil {
		log.Fatalf("node x%x did not boot : %v", nodeId, err)
	}

	// Read the identity object (0x1018)
	vendorId, err := master.SDOReadUint32(nodeId, 0x1018, 0x01)
	if err != nil {
		log.Fatalf("reading vendor id failed : %v", err)
	}
	productCode, _ := master.SDOReadUint32(nodeId, 0x1018, 0x02)
	revision, _ := master.SDOReadUint32(nodeId, 0x1018, 0x03)
	serial, _ := master.SDOReadUint32(nodeId, 0x1018, 0x04)
	log.Infof("node x%x : vendor x%x, product x%x, revision x%x, serial %v",
		nodeId, vendorId, productCode, revision, serial)

	// Make the first PDO pair synchronous, exchanged on every SYNC
	if err := master.SDOWriteUint8(nodeId, 0x1800, 0x02, 1); err != nil {
		log.Warnf("configuring TPDO1 failed : %v", err)
	}
	if err := master.SDOWriteUint8(nodeId, 0x1400, 0x02, 1); err != nil {
		log.Warnf("configuring RPDO1 failed : %v", err)
	}

	// Go cyclic
	master.ResetSyncCounter()
	if err := master.Command(nodeId, comaster.NMTEnterOperational); err != nil {
		log.Fatalf("entering operational failed : %v", err)
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	outData := make([]byte, 8)
	for {
		select {
		case <-interrupt:
			log.Infof("stopping node x%x", nodeId)
			master.Command(nodeId, comaster.NMTEnterPreOperational)
			return
		case <-ticker.C:
			if err := master.SendPDO(nodeId, outData); err != nil {
				log.Errorf("PDO send failed : %v", err)
				continue
			}
			if err := master.Sync(); err != nil {
				log.Errorf("SYNC failed : %v", err)
				continue
			}
			data, err := master.ReceivePDO(nodeId)
			switch err {
			case nil:
				log.Debugf("node x%x process data : %v", nodeId, data)
			case comaster.ErrRxEmpty:
				// nothing usable this cycle
			default:
				log.Errorf("PDO receive failed : %v", err)
			}
		}
	}
}

func onEmergency(nodeId uint8, errorCode uint16, errorRegister uint8, manufacturer [5]byte) {
	log.Errorf("EMCY from node x%x : x%04x (%v), register x%02x, manufacturer %v",
		nodeId, errorCode, comaster.EMCYDescription(errorCode), errorRegister, manufacturer)
}
