package bind

import "testing"

func TestScancodeNames(t *testing.T) {
	tests := []struct {
		name string
		want Scancode
	}{
		{"A", 4},
		{"Z", 29},
		{"1", 30},
		{"0", 39},
		{"RETURN", 40},
		{"SPACE", 44},
		{"F1", 58},
		{"UP", 82},
		{"KP_0", 98},
		{"F24", 115},
		{"VOLUMEDOWN", 129},
		{"KP_COMMA", 133},
		{"EXSEL", 164},
		{"KP_00", 176},
		{"KP_HEXADECIMAL", 221},
		{"LCTRL", 224},
		{"RGUI", 231},
		{"MODE", 257},
		{"SLEEP", 282},
		{"APP2", 284},
	}
	for _, tt := range tests {
		got, ok := LookupScancode(tt.name)
		if !ok || got != tt.want {
			t.Errorf("LookupScancode(%q) = %d,%v, want %d", tt.name, got, ok, tt.want)
		}
		if got.String() != tt.name {
			t.Errorf("Scancode(%d).String() = %q, want %q", got, got.String(), tt.name)
		}
	}

	if _, ok := LookupScancode("a"); ok {
		t.Error("Expected lowercase scancode name to fail")
	}
	if got := Scancode(500).String(); got != "SCANCODE_500" {
		t.Errorf("Expected numeric fallback, got %q", got)
	}
}

func TestKeycodeNames(t *testing.T) {
	tests := []struct {
		name string
		want Keycode
	}{
		{"a", 'a'},
		{"z", 'z'},
		{"7", '7'},
		{"SPACE", ' '},
		{"EXCLAIM", '!'},
		{"BACKQUOTE", '`'},
		{"DELETE", 127},
		{"F1", KeycodeFromScancode(ScancodeF1)},
		{"LSHIFT", KeycodeFromScancode(ScancodeLShift)},
		{"KP_ENTER", KeycodeFromScancode(ScancodeKPEnter)},
	}
	for _, tt := range tests {
		got, ok := LookupKeycode(tt.name)
		if !ok || got != tt.want {
			t.Errorf("LookupKeycode(%q) = %d,%v, want %d", tt.name, got, ok, tt.want)
		}
		if got.String() != tt.name {
			t.Errorf("Keycode(%d).String() = %q, want %q", got, got.String(), tt.name)
		}
	}
}

// TestUSLayout verifies the default resolver
func TestUSLayout(t *testing.T) {
	tests := []struct {
		k    Keycode
		want Scancode
	}{
		{'a', ScancodeA},
		{'m', ScancodeM},
		{'1', Scancode1},
		{'9', Scancode9},
		{'0', Scancode0},
		{'\r', ScancodeReturn},
		{'/', ScancodeSlash},
		{KeycodeFromScancode(ScancodeF5), ScancodeF5},
		{'!', ScancodeUnknown},
		{'A', ScancodeUnknown},
		{keycodeScancodeMask, ScancodeUnknown},
	}
	for _, tt := range tests {
		if got := USLayout.ScancodeFromKey(tt.k); got != tt.want {
			t.Errorf("ScancodeFromKey(%d) = %d, want %d", tt.k, got, tt.want)
		}
	}
}

// TestInputNames verifies every bind-file table contains its members
func TestInputNames(t *testing.T) {
	if len(mouseButtonNames) != numMouseButtons {
		t.Errorf("Expected %d mouse button names, got %d", numMouseButtons, len(mouseButtonNames))
	}
	if len(axisDirectionNames) != numAxisDirections {
		t.Errorf("Expected %d axis names, got %d", numAxisDirections, len(axisDirectionNames))
	}
	if len(controllerButtonNames) != int(ButtonTouchpad)+1 {
		t.Errorf("Expected %d controller button names, got %d", ButtonTouchpad+1, len(controllerButtonNames))
	}

	for d := AxisDirection(0); d < numAxisDirections; d++ {
		got, ok := LookupAxisDirection(d.String())
		if !ok || got != d {
			t.Errorf("axis %d does not round-trip through %q", d, d.String())
		}
	}
	if btn, ok := LookupMouseButton("X1"); !ok || btn != MouseX1 {
		t.Errorf("Expected X1 = MouseX1, got %d", btn)
	}
	if btn, ok := LookupControllerButton("PADDLE3"); !ok || btn != ButtonPaddle3 {
		t.Errorf("Expected PADDLE3 = ButtonPaddle3, got %d", btn)
	}
}
