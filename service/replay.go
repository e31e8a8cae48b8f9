package service

import (
	"go.uber.org/zap"

	"freyr/domain/auction"
	"freyr/infra/wal"
)

/*
ReplayJournal rebuilds the pending buffer from the submission journal.

IMPORTANT:
- This MUST run before accepting traffic.
- Cycle markers trail the submissions they cover, so restore decisions
  wait until the full journal has been scanned.
- The outbox is NOT replayed here; the broadcaster owns its recovery.
*/
func ReplayJournal(walDir string, svc *ClearingService) error {
	var pending []auction.Order
	var watermark uint64

	lastSeq, err := wal.Replay(walDir, func(rec *wal.Record) error {
		switch rec.Type {
		case wal.RecordSubmit:
			o, err := decodeSubmit(rec.Data)
			if err != nil {
				return err
			}
			o.SeqID = rec.Seq
			pending = append(pending, o)

		case wal.RecordCycle:
			wm, err := decodeCycleMark(rec.Data)
			if err != nil {
				return err
			}
			watermark = wm
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Submissions at or below the watermark were cleared before the
	// shutdown; re-buffering them would settle them twice.
	for i := range pending {
		if pending[i].SeqID <= watermark {
			continue
		}
		svc.restore(pending[i])
	}
	if watermark > svc.lastDrained {
		svc.lastDrained = watermark
	}

	// Resume sequencing AFTER replay.
	if lastSeq > svc.seq.Current() {
		svc.seq.Reset(lastSeq)
	}

	svc.log.Info("journal replay completed", zap.Uint64("watermark", watermark))
	return nil
}
