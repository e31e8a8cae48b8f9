package wal

import "time"

type RecordType uint8

const (
	// RecordSubmit journals one accepted order submission.
	RecordSubmit RecordType = iota
	// RecordCycle marks a completed clearing cycle. Its payload carries
	// the drained watermark; replay drops submissions at or below it.
	RecordCycle
)

// Record is one framed journal entry. Data is opaque here; the service
// layer owns the payload format.
type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().UnixNano(),
		Data: data,
	}
}
