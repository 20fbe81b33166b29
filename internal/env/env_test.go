package env

import "testing"

func TestGetString(t *testing.T) {
	t.Setenv("BITES_TEST_STR", "value")

	if got := GetString("BITES_TEST_STR", "fallback"); got != "value" {
		t.Errorf("Expected value, got %s", got)
	}
	if got := GetString("BITES_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %s", got)
	}
}

func TestGetInt(t *testing.T) {
	t.Setenv("BITES_TEST_INT", "42")
	t.Setenv("BITES_TEST_BAD_INT", "not-a-number")

	if got := GetInt("BITES_TEST_INT", 7); got != 42 {
		t.Errorf("Expected 42, got %d", got)
	}
	if got := GetInt("BITES_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
	if got := GetInt("BITES_TEST_MISSING", 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("BITES_TEST_BOOL", "true")

	if got := GetBool("BITES_TEST_BOOL", false); !got {
		t.Error("Expected true")
	}
	if got := GetBool("BITES_TEST_MISSING", true); !got {
		t.Error("Expected fallback true")
	}
}
