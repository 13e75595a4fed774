// Package tenant exposes the read side of the tenant profile store.
//
// Profiles are owned by the administrative platform; the voice engine only
// ever reads them, once per turn. Every field a prompt depends on has a
// fallback so a half-configured tenant still gets a working agent.
package tenant

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no profile exists for the requested id.
var ErrNotFound = errors.New("tenant: profile not found")

// Profile is a business account configuring one voice agent instance.
type Profile struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	// NotifyEmail receives booking confirmation emails; empty disables them.
	NotifyEmail     string    `json:"notify_email,omitempty"`
	Hours           string    `json:"hours,omitempty"`
	PriceCatalog    string    `json:"price_catalog,omitempty"`
	ServiceDuration string    `json:"service_duration,omitempty"`
	Address         string    `json:"address,omitempty"`
	// PersonaInstructions is free text appended to the system prompt.
	PersonaInstructions string    `json:"persona_instructions,omitempty"`
	Tone                string    `json:"tone,omitempty"`
	Voice               string    `json:"voice,omitempty"`
	Language            string    `json:"language,omitempty"`
	CreatedAt           time.Time `json:"created_at,omitempty"`
}

// Fallbacks used when a profile field is empty. Prompt composition must
// never fail a turn because of a blank field.
const (
	defaultName            = "our business"
	defaultIndustry        = "professional services"
	defaultHours           = "Monday to Friday, 9am to 6pm"
	defaultPriceCatalog    = "pricing available on request"
	defaultServiceDuration = "45 minutes"
	defaultAddress         = "address available on request"
	defaultPersona         = "You are a courteous, efficient receptionist. Help the caller."
	defaultTone            = "professional"
	defaultVoice           = "Polly.Joanna-Neural"
	defaultLanguage        = "en-US"
)

// DisplayName returns the business name with a fallback.
func (p Profile) DisplayName() string {
	return orDefault(p.Name, defaultName)
}

// PromptIndustry returns the industry with a fallback.
func (p Profile) PromptIndustry() string { return orDefault(p.Industry, defaultIndustry) }

// PromptHours returns the operating hours with a fallback.
func (p Profile) PromptHours() string { return orDefault(p.Hours, defaultHours) }

// PromptPriceCatalog returns the price list with a fallback.
func (p Profile) PromptPriceCatalog() string { return orDefault(p.PriceCatalog, defaultPriceCatalog) }

// PromptServiceDuration returns the average service duration with a fallback.
func (p Profile) PromptServiceDuration() string {
	return orDefault(p.ServiceDuration, defaultServiceDuration)
}

// PromptAddress returns the address with a fallback.
func (p Profile) PromptAddress() string { return orDefault(p.Address, defaultAddress) }

// PromptPersona returns the persona instructions with a fallback.
func (p Profile) PromptPersona() string { return orDefault(p.PersonaInstructions, defaultPersona) }

// PromptTone returns the desired tone with a fallback.
func (p Profile) PromptTone() string { return orDefault(p.Tone, defaultTone) }

// SpeechVoice returns the telephony voice with a fallback.
func (p Profile) SpeechVoice() string { return orDefault(p.Voice, defaultVoice) }

// SpeechLanguage returns the telephony language with a fallback.
func (p Profile) SpeechLanguage() string { return orDefault(p.Language, defaultLanguage) }

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
