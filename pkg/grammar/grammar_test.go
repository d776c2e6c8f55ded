package grammar

import "testing"

func TestDictZeroEntryIsNil(t *testing.T) {
	if Dict[0].Tok != "NIL" || Dict[0].Fe != 0 {
		t.Fatalf("Dict[0] = %+v, want {NIL 0}", Dict[0])
	}
}

func TestDictEveryFeatureClassHasAnEntry(t *testing.T) {
	classes := []uint32{FING, FINF, FMOTION, FNS, FNPL, FMASS, FAMB,
		FTIMED, FTIMEY, FAT, FON, FIN, FPREP, FADJ, FOP}
	for _, fe := range classes {
		found := false
		for _, e := range Dict {
			if e.Fe&fe != 0 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no dictionary entry carries feature %#x", fe)
		}
	}
}

func TestFramesHaveMaxHSlots(t *testing.T) {
	for i, f := range Frames {
		sawZero := false
		for _, slot := range f {
			if slot == 0 {
				sawZero = true
			}
		}
		_ = sawZero // not all frames need a zero slot; MaxH may be fully used
		if len(f) != MaxH {
			t.Errorf("frame %d has %d slots, want %d", i, len(f), MaxH)
		}
	}
}

func TestLiteralSelectorsAreDistinct(t *testing.T) {
	seen := map[uint32]bool{}
	for _, s := range []uint32{SNL, SCO, SMD, SLIKE, SA, STHE, SOF, SNO, SS,
		SAFTER, SBEFORE, SAT, SIN, SON, SUNDER, SABOVE, SBELOW} {
		if seen[s] {
			t.Fatalf("duplicate literal selector value %#x", s)
		}
		seen[s] = true
		if s&FXLIT == 0 {
			t.Fatalf("selector %#x missing FXLIT bit", s)
		}
	}
}
