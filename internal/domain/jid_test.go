package domain

import "testing"

func TestParseJID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    JID
		wantErr bool
	}{
		{"user", "5511999990000@s.whatsapp.net", JID{User: "5511999990000", Server: "s.whatsapp.net"}, false},
		{"group", "12036304@g.us", JID{User: "12036304", Server: "g.us"}, false},
		{"device suffix", "5511999990000.3@s.whatsapp.net", JID{User: "5511999990000", Server: "s.whatsapp.net", Device: 3}, false},
		{"no server", "5511999990000", JID{}, true},
		{"empty server", "5511999990000@", JID{}, true},
		{"empty user", "@s.whatsapp.net", JID{}, true},
		{"bad device", "user.x@s.whatsapp.net", JID{}, true},
		{"empty", "", JID{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseJID(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseJID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseJID(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJIDString(t *testing.T) {
	if got := (JID{User: "u", Server: "s.whatsapp.net"}).String(); got != "u@s.whatsapp.net" {
		t.Errorf("String() = %q", got)
	}
	if got := (JID{User: "u", Server: "s.whatsapp.net", Device: 7}).String(); got != "u.7@s.whatsapp.net" {
		t.Errorf("String() with device = %q", got)
	}
}

func TestJIDPrimary(t *testing.T) {
	j := JID{User: "u", Server: "s.whatsapp.net", Device: 5}
	if got := j.Primary(); got.Device != 0 || got.User != "u" {
		t.Errorf("Primary() = %+v", got)
	}
	// Receiver is untouched.
	if j.Device != 5 {
		t.Errorf("receiver mutated: %+v", j)
	}
}

func TestJIDIsGroup(t *testing.T) {
	if !(JID{User: "g", Server: "g.us"}).IsGroup() {
		t.Error("g.us must be a group")
	}
	if (JID{User: "u", Server: "s.whatsapp.net"}).IsGroup() {
		t.Error("s.whatsapp.net must not be a group")
	}
}
