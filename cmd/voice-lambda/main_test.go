package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

func newEvent(method, path, body string) events.APIGatewayV2HTTPRequest {
	evt := events.APIGatewayV2HTTPRequest{
		RawPath: path,
		Body:    body,
		Headers: map[string]string{"content-type": "application/x-www-form-urlencoded"},
	}
	evt.RequestContext.HTTP.Method = method
	evt.RequestContext.DomainName = "voice.example.test"
	return evt
}

func TestHandleForwardsVoiceWebhook(t *testing.T) {
	var gotPath, gotHost, gotProto, gotSignature string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotHost = r.Header.Get("X-Forwarded-Host")
		gotProto = r.Header.Get("X-Forwarded-Proto")
		gotSignature = r.Header.Get("X-Twilio-Signature")
		w.Header().Set("Content-Type", "text/xml")
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	cfg := config{upstreamBaseURL: upstream.URL, upstreamTimeout: 2 * time.Second}
	evt := newEvent(http.MethodPost, "/voice/tenant-1", "SpeechResult=hello")
	evt.Headers["x-twilio-signature"] = "sig-value"

	resp, err := handle(context.Background(), cfg, upstream.Client(), evt)
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
	if gotPath != "/voice/tenant-1" {
		t.Errorf("forwarded to %q", gotPath)
	}
	if gotHost != "voice.example.test" || gotProto != "https" {
		t.Errorf("forwarded host/proto %q %q", gotHost, gotProto)
	}
	if gotSignature != "sig-value" {
		t.Errorf("signature header not preserved: %q", gotSignature)
	}
	if resp.Headers["content-type"] != "text/xml" {
		t.Errorf("content type not propagated: %v", resp.Headers)
	}
}

func TestHandleRejectsOtherPaths(t *testing.T) {
	cfg := config{upstreamBaseURL: "http://127.0.0.1:1", upstreamTimeout: time.Second}
	resp, err := handle(context.Background(), cfg, http.DefaultClient, newEvent(http.MethodPost, "/admin", ""))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status %d", resp.StatusCode)
	}
}

func TestHandleHealth(t *testing.T) {
	cfg := config{upstreamBaseURL: "http://127.0.0.1:1", upstreamTimeout: time.Second}
	resp, err := handle(context.Background(), cfg, http.DefaultClient, newEvent(http.MethodGet, "/health", ""))
	if err != nil {
		t.Fatalf("handle: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}
}
