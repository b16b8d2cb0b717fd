package synscall

import (
	"testing"

	"sysfuzz/rng"
)

func TestEligible(t *testing.T) {
	tests := []struct {
		name string
		d    Descriptor
		want bool
	}{
		{"active no args", Descriptor{Flags: FlagActive, NumArgs: 0}, false},
		{"active with args", Descriptor{Flags: FlagActive, NumArgs: 1}, true},
		{"avoid", Descriptor{Flags: FlagActive | FlagAvoid, NumArgs: 1}, false},
		{"ni", Descriptor{Flags: FlagActive | FlagNI, NumArgs: 1}, false},
		{"not active", Descriptor{Flags: 0, NumArgs: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Eligible(tt.d); got != tt.want {
				t.Errorf("Eligible(%+v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}

func TestTables_HaveEligibleEntries(t *testing.T) {
	if !anyEligible(Table64) {
		t.Error("Table64 has no eligible entries")
	}
	if !anyEligible(Table32) {
		t.Error("Table32 has no eligible entries")
	}
}

func TestTables_NumArgsMatchesArgTypes(t *testing.T) {
	for _, table := range [][]Descriptor{Table64, Table32} {
		for _, d := range table {
			for i := 0; i < d.NumArgs; i++ {
				if d.ArgTypes[i] == ArgNone {
					t.Errorf("%s: NumArgs=%d but ArgTypes[%d] is ArgNone", d.Name, d.NumArgs, i)
				}
			}
		}
	}
}

func TestActiveTable_ForcedABI(t *testing.T) {
	r := rng.New(1)

	table, use32 := ActiveTable(true, ABIForce64, 10, r)
	if use32 {
		t.Error("ABIForce64 should not select the 32-bit table")
	}
	if len(table) == 0 {
		t.Error("expected a non-empty table")
	}

	table, use32 = ActiveTable(true, ABIForce32, 10, r)
	if !use32 {
		t.Error("ABIForce32 should select the 32-bit table when biarch")
	}
	if len(table) == 0 {
		t.Error("expected a non-empty table")
	}
}

func TestActiveTable_NotBiarch(t *testing.T) {
	r := rng.New(1)

	// Even forcing 32-bit, a non-biarch host has no 32-bit table to fall
	// back to other than 64-bit.
	_, use32 := ActiveTable(false, ABIForce32, 10, r)
	if use32 {
		t.Error("non-biarch host should never select the 32-bit table")
	}
}

func TestActiveTable_ForcedPopulatedABIHasEligibleEntries(t *testing.T) {
	// Forcing an ABI whose table is populated should always return a table
	// with eligible entries, even with a zero 32-bit probability.
	r := rng.New(2)
	table, _ := ActiveTable(true, ABIForce64, 0, r)
	if !anyEligible(table) {
		t.Error("ActiveTable should return a table with eligible entries")
	}
}
