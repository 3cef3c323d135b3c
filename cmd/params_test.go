package cmd

import "testing"

func TestStringParam(t *testing.T) {
	params := map[string]interface{}{
		"direction": "up",
		"amount":    float64(3),
	}

	if got := StringParam(params, "direction", "down"); got != "up" {
		t.Errorf("StringParam = %q, want %q", got, "up")
	}
	if got := StringParam(params, "missing", "down"); got != "down" {
		t.Errorf("StringParam default = %q, want %q", got, "down")
	}
	if got := StringParam(params, "amount", "down"); got != "down" {
		t.Errorf("StringParam wrong type = %q, want default %q", got, "down")
	}
}

func TestIntParam(t *testing.T) {
	params := map[string]interface{}{
		"x":     float64(120),
		"y":     42,
		"label": "hello",
	}

	if got := IntParam(params, "x", 0); got != 120 {
		t.Errorf("IntParam float64 = %d, want 120", got)
	}
	if got := IntParam(params, "y", 0); got != 42 {
		t.Errorf("IntParam int = %d, want 42", got)
	}
	if got := IntParam(params, "missing", 7); got != 7 {
		t.Errorf("IntParam default = %d, want 7", got)
	}
	if got := IntParam(params, "label", 7); got != 7 {
		t.Errorf("IntParam wrong type = %d, want default 7", got)
	}
}

func TestBoolParam(t *testing.T) {
	params := map[string]interface{}{
		"double": true,
		"triple": "yes",
	}

	if got := BoolParam(params, "double", false); !got {
		t.Error("BoolParam = false, want true")
	}
	if got := BoolParam(params, "missing", true); !got {
		t.Error("BoolParam default = false, want true")
	}
	if got := BoolParam(params, "triple", false); got {
		t.Error("BoolParam wrong type = true, want default false")
	}
}
