package voice

import "strings"

// defaultAcknowledgement is spoken when the model confirmed a booking but
// put nothing before the sentinel.
const defaultAcknowledgement = "Perfect, your booking is confirmed."

// Reply is the parsed form of one completion: either a plain spoken reply,
// or a spoken reply plus an agreed booking detail.
type Reply struct {
	Speech     string
	Detail     string
	HasBooking bool
}

// ParseReply splits raw completion text on the first sentinel occurrence.
// Without the sentinel the whole text is speech and no booking happened.
// With it, the pre-token text (trimmed) is spoken and the post-token text,
// minus the immediate colon, is the booking detail. Repeated sentinels
// inside the detail are literal content; only the first is honored. An
// empty detail still counts as a booking: under-recording a likely-real
// booking is worse than over-recording.
func ParseReply(raw string) Reply {
	idx := strings.Index(raw, SentinelToken)
	if idx < 0 {
		return Reply{Speech: strings.TrimSpace(raw)}
	}

	speech := strings.TrimSpace(raw[:idx])
	if speech == "" {
		speech = defaultAcknowledgement
	}

	detail := strings.TrimSpace(raw[idx+len(SentinelToken):])
	detail = strings.TrimSpace(strings.TrimPrefix(detail, ":"))

	return Reply{Speech: speech, Detail: detail, HasBooking: true}
}
