package core

import "testing"

func TestDecodeActionCoversEveryID(t *testing.T) {
	seen := map[ActionKind]int{}
	for a := int16(0); a < NumActions; a++ {
		d := decodeAction(a)
		seen[d.Kind]++
	}
	if seen[KindTravel] != 6 {
		t.Fatalf("expected 6 travel actions, got %d", seen[KindTravel])
	}
	if seen[KindSelect] != 16 {
		t.Fatalf("expected 16 select actions, got %d", seen[KindSelect])
	}
	if seen[KindMine] != 3 {
		t.Fatalf("expected 3 mine actions, got %d", seen[KindMine])
	}
	if seen[KindJettison] != 6 {
		t.Fatalf("expected 6 jettison actions, got %d", seen[KindJettison])
	}
	if seen[KindSell] != 18 {
		t.Fatalf("expected 18 sell actions, got %d", seen[KindSell])
	}
	if seen[KindBuyFuel] != 3 {
		t.Fatalf("expected 3 buy-fuel actions, got %d", seen[KindBuyFuel])
	}
}

func TestNormalizeActionIDClampsOutOfRangeToHold(t *testing.T) {
	cases := []int{-1, 69, 70, 1000}
	for _, c := range cases {
		if got := normalizeActionID(c); got != actHold {
			t.Fatalf("normalizeActionID(%d) = %d, want %d", c, got, actHold)
		}
	}
	if got := normalizeActionID(6); got != actHold {
		t.Fatalf("normalizeActionID(6) = %d, want %d", got, actHold)
	}
}

func TestSellBucketDecoding(t *testing.T) {
	d := decodeAction(43)
	if d.Kind != KindSell || d.Slot != 0 || d.SellBucket != 0.25 {
		t.Fatalf("unexpected decode for action 43: %+v", d)
	}
	d = decodeAction(60)
	if d.Kind != KindSell || d.Slot != 5 || d.SellBucket != 1.0 {
		t.Fatalf("unexpected decode for action 60: %+v", d)
	}
}
