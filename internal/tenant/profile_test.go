package tenant

import "testing"

func TestProfileFallbacks(t *testing.T) {
	var p Profile

	if p.DisplayName() == "" {
		t.Error("expected non-empty display name for empty profile")
	}
	if p.PromptHours() == "" {
		t.Error("expected non-empty hours for empty profile")
	}
	if p.PromptPriceCatalog() == "" {
		t.Error("expected non-empty price catalog for empty profile")
	}
	if p.SpeechLanguage() != "en-US" {
		t.Errorf("expected default language en-US, got %s", p.SpeechLanguage())
	}
}

func TestProfileConfiguredFieldsWin(t *testing.T) {
	p := Profile{
		Name:     "Salon Lumière",
		Hours:    "Tuesday to Saturday, 10am to 7pm",
		Voice:    "Polly.Lea-Neural",
		Language: "fr-FR",
	}

	if p.DisplayName() != "Salon Lumière" {
		t.Errorf("expected configured name, got %s", p.DisplayName())
	}
	if p.PromptHours() != "Tuesday to Saturday, 10am to 7pm" {
		t.Errorf("expected configured hours, got %s", p.PromptHours())
	}
	if p.SpeechVoice() != "Polly.Lea-Neural" {
		t.Errorf("expected configured voice, got %s", p.SpeechVoice())
	}
	if p.SpeechLanguage() != "fr-FR" {
		t.Errorf("expected configured language, got %s", p.SpeechLanguage())
	}
}
