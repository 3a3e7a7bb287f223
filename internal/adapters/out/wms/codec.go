package wms

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MessageType identifies a WMS frame. Request and response codes come in
// adjacent pairs.
type MessageType uint32

const (
	PackageReceived      MessageType = 0x01
	PackageStatusReq     MessageType = 0x04
	PackageStatusResp    MessageType = 0x05
	WarehouseStatusReq   MessageType = 0x06
	WarehouseStatusResp  MessageType = 0x07
	PackageUpdateReq     MessageType = 0x08
	PackageUpdateResp    MessageType = 0x09
	HealthCheckReq       MessageType = 0x10
	HealthCheckResp      MessageType = 0x11
	CancelPackageReq     MessageType = 0x12
	CancelPackageResp    MessageType = 0x13
)

// maxPayloadLen bounds a frame payload. Anything larger (or empty) marks a
// desynchronized stream and the conversation is abandoned.
const maxPayloadLen = 10000

const headerLen = 8

// Frame is one WMS protocol message: an 8-byte big-endian header (type,
// payload length) followed by a JSON payload.
type Frame struct {
	Type    MessageType
	Payload []byte
}

// WriteFrame encodes the frame and writes header and payload in a single
// Write call.
func WriteFrame(w io.Writer, f Frame) error {
	if len(f.Payload) == 0 || len(f.Payload) >= maxPayloadLen {
		return fmt.Errorf("wms: payload length %d out of range", len(f.Payload))
	}

	buf := make([]byte, headerLen+len(f.Payload))
	binary.BigEndian.PutUint32(buf[0:4], uint32(f.Type))
	binary.BigEndian.PutUint32(buf[4:8], uint32(len(f.Payload)))
	copy(buf[headerLen:], f.Payload)

	_, err := w.Write(buf)
	return err
}

// ReadFrame reads one full frame from the stream. A payload length outside
// (0, maxPayloadLen) means the stream is desynchronized.
func ReadFrame(r io.Reader) (Frame, error) {
	header := make([]byte, headerLen)
	if _, err := io.ReadFull(r, header); err != nil {
		return Frame{}, fmt.Errorf("wms: read header: %w", err)
	}

	msgType := MessageType(binary.BigEndian.Uint32(header[0:4]))
	payloadLen := binary.BigEndian.Uint32(header[4:8])
	if payloadLen == 0 || payloadLen >= maxPayloadLen {
		return Frame{}, fmt.Errorf("wms: implausible payload length %d, stream desynchronized", payloadLen)
	}

	payload := make([]byte, payloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Frame{}, fmt.Errorf("wms: read payload: %w", err)
	}
	return Frame{Type: msgType, Payload: payload}, nil
}
