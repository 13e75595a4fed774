package telephony

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// VoiceWebhookRequest represents an inbound voice turn from the gateway.
type VoiceWebhookRequest struct {
	CallSid      string
	From         string
	To           string
	CallStatus   string
	SpeechResult string
	// HasSpeech distinguishes "call just connected" from an empty transcript.
	HasSpeech bool
}

// ParseVoiceWebhook parses a Twilio-style voice webhook form.
func ParseVoiceWebhook(r *http.Request) (*VoiceWebhookRequest, error) {
	if err := r.ParseForm(); err != nil {
		return nil, fmt.Errorf("telephony: parse voice form: %w", err)
	}

	_, hasSpeech := r.PostForm["SpeechResult"]
	return &VoiceWebhookRequest{
		CallSid:      strings.TrimSpace(r.PostFormValue("CallSid")),
		From:         strings.TrimSpace(r.PostFormValue("From")),
		To:           strings.TrimSpace(r.PostFormValue("To")),
		CallStatus:   strings.ToLower(strings.TrimSpace(r.PostFormValue("CallStatus"))),
		SpeechResult: strings.TrimSpace(r.PostFormValue("SpeechResult")),
		HasSpeech:    hasSpeech,
	}, nil
}

// ValidateSignature validates that a request came from the telephony gateway.
func ValidateSignature(r *http.Request, authToken, webhookURL string) bool {
	signature := r.Header.Get("X-Twilio-Signature")
	if signature == "" {
		return false
	}
	if err := r.ParseForm(); err != nil {
		return false
	}

	payload := buildSignaturePayload(webhookURL, r.PostForm)
	return hmac.Equal([]byte(signature), []byte(computeSignature(payload, authToken)))
}

// buildSignaturePayload concatenates the URL with the sorted form parameters.
func buildSignaturePayload(url string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var payload strings.Builder
	payload.WriteString(url)
	for _, key := range keys {
		for _, value := range params[key] {
			payload.WriteString(key)
			payload.WriteString(value)
		}
	}
	return payload.String()
}

func computeSignature(data, key string) string {
	h := hmac.New(sha1.New, []byte(key))
	h.Write([]byte(data))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// AbsoluteURL reconstructs the public URL of the request for signature
// validation behind proxies and API gateways.
func AbsoluteURL(r *http.Request) string {
	if r.URL == nil {
		return ""
	}
	if r.URL.Scheme != "" {
		return r.URL.String()
	}
	scheme := r.Header.Get("X-Forwarded-Proto")
	if scheme == "" {
		scheme = "https"
		if r.TLS == nil {
			scheme = "http"
		}
	}
	host := r.Header.Get("X-Forwarded-Host")
	if host == "" {
		host = r.Host
	}
	return fmt.Sprintf("%s://%s%s", scheme, host, r.URL.RequestURI())
}

// MaskPhone redacts a caller number for logs, keeping the last four digits.
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if len(phone) <= 4 {
		return "****"
	}
	return "***" + phone[len(phone)-4:]
}
