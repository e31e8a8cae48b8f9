package outbox

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"

	"freyr/infra/sequence"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

// Record is one broadcast event waiting in the outbox. Payload is an
// encoded event; Kind names its type for topic routing.
type Record struct {
	State       State
	Retries     uint32
	LastAttempt int64
	Kind        string
	Payload     []byte
}

// binary encoding: [state:1][retries:4][lastAttempt:8][kindLen:1][kind][payload]
func encodeRecord(r Record) []byte {
	buf := make([]byte, 14+len(r.Kind)+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	buf[13] = byte(len(r.Kind))
	copy(buf[14:], r.Kind)
	copy(buf[14+len(r.Kind):], r.Payload)
	return buf
}

func decodeRecord(b []byte) (Record, error) {
	if len(b) < 14 {
		return Record{}, errors.New("invalid outbox record length")
	}
	kindLen := int(b[13])
	if len(b) < 14+kindLen {
		return Record{}, errors.New("invalid outbox kind length")
	}
	return Record{
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Kind:        string(b[14 : 14+kindLen]),
		Payload:     b[14+kindLen:],
	}, nil
}

// -------------------- Outbox --------------------

// Outbox is the durable staging area between settlement and the
// broadcaster. Settlement writes events as NEW; the broadcaster walks
// them NEW -> SENT -> ACKED and eventually garbage-collects.
type Outbox struct {
	db  *pebble.DB
	seq *sequence.Sequencer
}

func Open(dir string, seq *sequence.Sequencer) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // durability wanted
	})
	if err != nil {
		return nil, err
	}
	return &Outbox{db: db, seq: seq}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// -------------------- API --------------------

// Put stages a new event for broadcast.
func (o *Outbox) Put(kind string, payload []byte) error {
	rec := Record{
		State:   StateNew,
		Kind:    kind,
		Payload: payload,
	}
	return o.db.Set(keyFor(o.seq.Next()), encodeRecord(rec), pebble.Sync)
}

func (o *Outbox) markState(seq uint64, state State) error {
	rec, err := o.Get(seq)
	if err != nil {
		return err
	}
	rec.State = state
	// Only a send is an attempt; the ack just confirms one.
	if state == StateSent {
		rec.Retries++
		rec.LastAttempt = time.Now().UnixNano()
	}
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

func (o *Outbox) MarkSent(seq uint64) error  { return o.markState(seq, StateSent) }
func (o *Outbox) MarkAcked(seq uint64) error { return o.markState(seq, StateAcked) }

// Get returns the record stored under seq.
func (o *Outbox) Get(seq uint64) (Record, error) {
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return Record{}, err
	}
	defer closer.Close()
	return decodeRecord(val)
}

// ScanPending iterates events not yet acknowledged, in sequence order.
func (o *Outbox) ScanPending(fn func(seq uint64, rec Record) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			continue
		}
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if err := fn(seq, rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// TruncateAcked deletes acknowledged events.
func (o *Outbox) TruncateAcked() error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State != StateAcked {
			continue
		}
		key := append([]byte(nil), iter.Key()...)
		if err := o.db.Delete(key, pebble.NoSync); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("event/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("event/"))), "%d", &seq)
	return seq, err
}
