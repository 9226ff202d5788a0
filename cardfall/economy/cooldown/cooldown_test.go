package cooldown

import (
	"testing"
	"time"
)

func TestManager_Try(t *testing.T) {
	m := NewManager(time.Minute)

	ok, _ := m.Try("42", "slots", 50*time.Millisecond)
	if !ok {
		t.Fatal("first Try() should succeed")
	}

	ok, remaining := m.Try("42", "slots", 50*time.Millisecond)
	if ok {
		t.Fatal("second Try() within the period should fail")
	}
	if remaining <= 0 || remaining > 50*time.Millisecond {
		t.Errorf("remaining = %v, want within (0, 50ms]", remaining)
	}

	// different key and different user are independent
	if ok, _ := m.Try("42", "basket", time.Minute); !ok {
		t.Error("different key should not share a cooldown")
	}
	if ok, _ := m.Try("7", "slots", time.Minute); !ok {
		t.Error("different user should not share a cooldown")
	}

	time.Sleep(60 * time.Millisecond)
	if ok, _ := m.Try("42", "slots", time.Minute); !ok {
		t.Error("Try() after expiry should succeed")
	}
}

func TestManager_Clear(t *testing.T) {
	m := NewManager(time.Minute)
	m.Try("42", "wheel", time.Hour)
	m.Clear("42", "wheel")

	if ok, _ := m.Try("42", "wheel", time.Hour); !ok {
		t.Error("Try() after Clear() should succeed")
	}
}

func TestManager_Remaining(t *testing.T) {
	m := NewManager(time.Minute)
	if m.Remaining("42", "catch") != 0 {
		t.Error("Remaining() without a cooldown should be zero")
	}
	m.Try("42", "catch", time.Hour)
	if m.Remaining("42", "catch") <= 0 {
		t.Error("Remaining() during a cooldown should be positive")
	}
}

func TestManager_Pending(t *testing.T) {
	m := NewManager(time.Minute)

	if _, ok := m.TakePending("42", "reset"); ok {
		t.Fatal("TakePending() with nothing staged should miss")
	}

	m.SetPending("42", "reset", "confirm-token")
	v, ok := m.TakePending("42", "reset")
	if !ok || v.(string) != "confirm-token" {
		t.Fatalf("TakePending() = %v, %v, want confirm-token", v, ok)
	}

	// single use
	if _, ok := m.TakePending("42", "reset"); ok {
		t.Error("TakePending() should consume the value")
	}
}

func TestManager_PendingExpiry(t *testing.T) {
	m := NewManager(20 * time.Millisecond)
	m.SetPending("42", "upload", 123)
	time.Sleep(40 * time.Millisecond)

	if _, ok := m.TakePending("42", "upload"); ok {
		t.Error("expired pending value should read as absent")
	}
}

func TestManager_DropPending(t *testing.T) {
	m := NewManager(time.Minute)
	m.SetPending("42", "upload", 1)
	m.DropPending("42", "upload")
	if _, ok := m.TakePending("42", "upload"); ok {
		t.Error("dropped pending value should be gone")
	}
}
