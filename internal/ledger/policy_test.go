package ledger

import "testing"

func intPtr(v int) *int { return &v }

func TestRequiresWatermark(t *testing.T) {
	cases := []struct {
		name    string
		balance *int
		want    bool
	}{
		{"unknown balance", nil, true},
		{"zero", intPtr(0), true},
		{"negative", intPtr(-1), true},
		{"one credit", intPtr(1), false},
		{"many credits", intPtr(50), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RequiresWatermark(tc.balance); got != tc.want {
				t.Errorf("RequiresWatermark(%v) = %v, want %v", tc.balance, got, tc.want)
			}
		})
	}
}

func TestMayDownload(t *testing.T) {
	cases := []struct {
		name    string
		balance *int
		want    bool
	}{
		{"unknown balance", nil, false},
		{"zero", intPtr(0), false},
		{"one credit", intPtr(1), true},
		{"many credits", intPtr(50), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MayDownload(tc.balance); got != tc.want {
				t.Errorf("MayDownload(%v) = %v, want %v", tc.balance, got, tc.want)
			}
		})
	}
}

func TestPredicatesArePartition(t *testing.T) {
	// For every known non-negative balance exactly one of the two holds.
	for b := 0; b <= 100; b++ {
		balance := b
		if RequiresWatermark(&balance) == MayDownload(&balance) {
			t.Fatalf("balance %d: watermark=%v download=%v must disagree", b, RequiresWatermark(&balance), MayDownload(&balance))
		}
	}
}
