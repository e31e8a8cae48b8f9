package ledger

import (
	"testing"

	"freyr/infra/sequence"
)

func TestAppendAndScan(t *testing.T) {
	lgr, err := Open(t.TempDir(), sequence.New(0))
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	defer lgr.Close()

	// The two legs of one settled trade.
	if err := lgr.Append("seller", 7, -10, 50); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := lgr.Append("buyer", 7, 10, -50); err != nil {
		t.Fatalf("append: %v", err)
	}

	var got []Transaction
	var seqs []uint64
	err = lgr.Scan(func(seq uint64, txn Transaction) error {
		seqs = append(seqs, seq)
		got = append(got, txn)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
	if seqs[0] != 1 || seqs[1] != 2 {
		t.Errorf("expected seqs [1 2], got %v", seqs)
	}
	if got[0].Participant != "seller" || got[0].Quantity != -10 || got[0].UnitPrice != 50 {
		t.Errorf("unexpected seller leg %+v", got[0])
	}
	if got[1].Participant != "buyer" || got[1].Quantity != 10 || got[1].UnitPrice != -50 {
		t.Errorf("unexpected buyer leg %+v", got[1])
	}
	if got[0].Period != 7 || got[0].At == 0 {
		t.Error("period or timestamp missing")
	}
}

func TestTxnCodecRoundTrip(t *testing.T) {
	in := Transaction{
		Participant: "broker-42",
		Period:      360,
		Quantity:    -22.5,
		UnitPrice:   17.83,
		At:          1234567890,
	}
	out, err := decodeTxn(encodeTxn(in))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out != in {
		t.Errorf("round trip mismatch: %+v vs %+v", in, out)
	}
}

func TestDecodeTxnRejectsShortRecord(t *testing.T) {
	if _, err := decodeTxn([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for truncated record")
	}
}
