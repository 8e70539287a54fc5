package status

import "testing"

func walkTo(t *testing.T, m *Machine, states ...State) {
	t.Helper()
	for _, s := range states {
		if err := m.Transition(s); err != nil {
			t.Fatalf("transition to %s failed: %v", s, err)
		}
	}
}

func TestStartsInBooting(t *testing.T) {
	if got := NewMachine().Current(); got != Booting {
		t.Errorf("initial state = %s, want BOOTING", got)
	}
}

func TestPairingFlow(t *testing.T) {
	m := NewMachine()
	walkTo(t, m, AuthRequired, Pairing, Connected)
	if m.Current() != Connected {
		t.Errorf("state = %s, want CONNECTED", m.Current())
	}
}

func TestReconnectFlow(t *testing.T) {
	m := NewMachine()
	walkTo(t, m, Connecting, Connected, Disconnected, Connecting, Connected)
}

func TestRemoteLogoutFromConnected(t *testing.T) {
	m := NewMachine()
	walkTo(t, m, Connecting, Connected, LoggedOut, AuthRequired)
}

func TestInvalidTransition(t *testing.T) {
	m := NewMachine()
	if err := m.Transition(Connected); err == nil {
		t.Error("BOOTING -> CONNECTED should be invalid")
	}
	if m.Current() != Booting {
		t.Errorf("state changed on invalid transition: %s", m.Current())
	}
}

func TestSelfTransitionIsNoop(t *testing.T) {
	m := NewMachine()
	walkTo(t, m, Connecting, Connected)
	if err := m.Transition(Connected); err != nil {
		t.Errorf("self transition should succeed: %v", err)
	}
}
