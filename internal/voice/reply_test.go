package voice

import "testing"

func TestParseReplyWithoutSentinel(t *testing.T) {
	reply := ParseReply("We're open Tuesday through Saturday, nine to six.")
	if reply.HasBooking {
		t.Fatal("plain reply should not record a booking")
	}
	if reply.Speech != "We're open Tuesday through Saturday, nine to six." {
		t.Errorf("unexpected speech %q", reply.Speech)
	}
	if reply.Detail != "" {
		t.Errorf("unexpected detail %q", reply.Detail)
	}
}

func TestParseReplyWithSentinel(t *testing.T) {
	reply := ParseReply("Sure! CONFIRMATION: Haircut, Friday, 3pm")
	if !reply.HasBooking {
		t.Fatal("expected booking")
	}
	if reply.Speech != "Sure!" {
		t.Errorf("unexpected speech %q", reply.Speech)
	}
	if reply.Detail != "Haircut, Friday, 3pm" {
		t.Errorf("unexpected detail %q", reply.Detail)
	}
}

func TestParseReplyEmptySpeechUsesAcknowledgement(t *testing.T) {
	reply := ParseReply("CONFIRMATION: Massage, Monday, 10am")
	if !reply.HasBooking {
		t.Fatal("expected booking")
	}
	if reply.Speech != defaultAcknowledgement {
		t.Errorf("unexpected speech %q", reply.Speech)
	}
	if reply.Detail != "Massage, Monday, 10am" {
		t.Errorf("unexpected detail %q", reply.Detail)
	}
}

func TestParseReplySentinelWithoutColon(t *testing.T) {
	reply := ParseReply("Great. CONFIRMATION Haircut tomorrow at noon")
	if !reply.HasBooking {
		t.Fatal("expected booking")
	}
	if reply.Detail != "Haircut tomorrow at noon" {
		t.Errorf("unexpected detail %q", reply.Detail)
	}
}

func TestParseReplyEmptyDetailStillBooks(t *testing.T) {
	reply := ParseReply("All set. CONFIRMATION:")
	if !reply.HasBooking {
		t.Fatal("expected booking despite empty detail")
	}
	if reply.Detail != "" {
		t.Errorf("unexpected detail %q", reply.Detail)
	}
	if reply.Speech != "All set." {
		t.Errorf("unexpected speech %q", reply.Speech)
	}
}

func TestParseReplyRepeatedSentinelStaysLiteral(t *testing.T) {
	reply := ParseReply("Done. CONFIRMATION: Facial, Saturday. Say CONFIRMATION to confirm.")
	if !reply.HasBooking {
		t.Fatal("expected booking")
	}
	if reply.Detail != "Facial, Saturday. Say CONFIRMATION to confirm." {
		t.Errorf("unexpected detail %q", reply.Detail)
	}
}

func TestParseReplyEmptyInput(t *testing.T) {
	reply := ParseReply("   ")
	if reply.HasBooking {
		t.Fatal("whitespace is not a booking")
	}
	if reply.Speech != "" {
		t.Errorf("unexpected speech %q", reply.Speech)
	}
}
