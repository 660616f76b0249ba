package booking

import "testing"

func TestGenerateTimeSlots(t *testing.T) {
	slots := GenerateTimeSlots()
	if len(slots) != 8 {
		t.Fatalf("got %d slots, want 8", len(slots))
	}

	wantLabels := map[string]string{
		"09:00": "9:00 AM",
		"10:00": "10:00 AM",
		"11:00": "11:00 AM",
		"12:00": "12:00 PM",
		"13:00": "1:00 PM",
		"14:00": "2:00 PM",
		"15:00": "3:00 PM",
		"16:00": "4:00 PM",
	}

	seen := make(map[string]bool)
	for _, slot := range slots {
		if seen[slot.Label] {
			t.Errorf("duplicate label %q", slot.Label)
		}
		seen[slot.Label] = true

		want, ok := wantLabels[slot.Value]
		if !ok {
			t.Errorf("unexpected slot value %q", slot.Value)
			continue
		}
		if slot.Label != want {
			t.Errorf("label for %s = %q, want %q", slot.Value, slot.Label, want)
		}
	}
}

func TestSlotByValue(t *testing.T) {
	slot, ok := SlotByValue("13:00")
	if !ok {
		t.Fatal("13:00 should be a valid slot")
	}
	if slot.Label != "1:00 PM" {
		t.Errorf("label = %q, want %q", slot.Label, "1:00 PM")
	}

	if _, ok := SlotByValue("17:00"); ok {
		t.Error("17:00 should not be a valid slot")
	}
	if _, ok := SlotByValue("08:00"); ok {
		t.Error("08:00 should not be a valid slot")
	}
}

func TestCompactLabel(t *testing.T) {
	if got := CompactLabel("9:00 AM"); got != "9:00AM" {
		t.Errorf("CompactLabel = %q, want %q", got, "9:00AM")
	}
	if got := CompactLabel("1:00 PM"); got != "1:00PM" {
		t.Errorf("CompactLabel = %q, want %q", got, "1:00PM")
	}
}
