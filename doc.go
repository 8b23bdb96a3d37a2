// Package comaster is a minimal master-side implementation of the CANopen
// protocol for driving remote nodes from a controller.
//
// It implements no object dictionary and is not CiA 301 compliant, but it
// is enough to control CANopen nodes from constrained environments :
//
//   - NMT master
//   - SYNC producer (with optional counter)
//   - TIME producer
//   - EMCY receiver
//   - PDO receive/transmit, one PDO in each direction
//   - SDO client, expedited transfers only, on default channels,
//     1 to 4 byte values
//
// Mode of operation :
//
//   - reset/reboot nodes with an NMT command
//   - configure the node with the SDO client
//   - bring the node to operational state with an NMT command
//   - cyclically : send a PDO, issue a SYNC, receive a PDO
//
// EMCY messages received during cyclic operation are forwarded to the
// application. SDO transactions are not supported during cyclic operation :
// the blocking calls and ReceivePDO consume from the same receive channel,
// so the caller must make sure only one of them runs at a time.
package comaster
