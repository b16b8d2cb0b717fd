package worker

import (
	"testing"

	"sysfuzz/config"
	"sysfuzz/rng"
	"sysfuzz/synscall"
)

func TestPickEligible_FindsAnEligibleEntry(t *testing.T) {
	table := []synscall.Descriptor{
		{Name: "ni", NumArgs: 1, Flags: synscall.FlagNI},
		{Name: "active", NumArgs: 1, Flags: synscall.FlagActive},
	}
	d, ok := pickEligible(table, rng.New(1))
	if !ok {
		t.Fatal("expected to find the eligible entry")
	}
	if d.Name != "active" {
		t.Errorf("picked %q, want active", d.Name)
	}
}

func TestPickEligible_GivesUpOnAllIneligible(t *testing.T) {
	table := []synscall.Descriptor{
		{Name: "ni", NumArgs: 1, Flags: synscall.FlagNI},
	}
	_, ok := pickEligible(table, rng.New(1))
	if ok {
		t.Error("expected no eligible entry to be found")
	}
}

func TestTableABI_Mapping(t *testing.T) {
	cases := map[config.ABIChoice]synscall.ABIChoice{
		config.ABIAuto: synscall.ABIAuto,
		config.ABI32:   synscall.ABIForce32,
		config.ABI64:   synscall.ABIForce64,
	}
	for in, want := range cases {
		if got := tableABI(in); got != want {
			t.Errorf("tableABI(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestParentAlive_ZeroPidIsAlive(t *testing.T) {
	if !parentAlive(0) {
		t.Error("zero pid should be treated as alive (not yet recorded)")
	}
}

func TestParentAlive_NonexistentPid(t *testing.T) {
	// A pid this large is vanishingly unlikely to be in use.
	if parentAlive(1 << 29) {
		t.Error("expected a nonexistent pid to report not alive")
	}
}
