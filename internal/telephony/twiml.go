// Package telephony implements the wire contract with the telephony gateway:
// TwiML response documents and Twilio-compatible webhook parsing.
package telephony

import (
	"encoding/xml"
	"fmt"
)

// Say speaks text to the caller.
type Say struct {
	Voice    string `xml:"voice,attr,omitempty"`
	Language string `xml:"language,attr,omitempty"`
	Text     string `xml:",chardata"`
}

// Gather collects the caller's next spoken utterance and posts it to Action.
type Gather struct {
	Input         string `xml:"input,attr"`
	Language      string `xml:"language,attr,omitempty"`
	Action        string `xml:"action,attr,omitempty"`
	Method        string `xml:"method,attr,omitempty"`
	Timeout       string `xml:"timeout,attr,omitempty"`
	SpeechTimeout string `xml:"speechTimeout,attr,omitempty"`
	Say           *Say   `xml:"Say,omitempty"`
}

// Redirect re-invokes the webhook when the gather expires without speech.
type Redirect struct {
	Method string `xml:"method,attr,omitempty"`
	URL    string `xml:",chardata"`
}

// Hangup ends the call.
type Hangup struct{}

// Document is a TwiML <Response>. Element order follows field order.
type Document struct {
	XMLName  xml.Name  `xml:"Response"`
	Say      *Say      `xml:"Say,omitempty"`
	Gather   *Gather   `xml:"Gather,omitempty"`
	Redirect *Redirect `xml:"Redirect,omitempty"`
	Hangup   *Hangup   `xml:"Hangup,omitempty"`
}

// TurnParams describes one spoken reply plus the continuation directive.
type TurnParams struct {
	Speech        string
	Voice         string
	Language      string
	ActionURL     string
	Timeout       string // gather silence timeout in seconds, e.g. "2"
	SpeechTimeout string // e.g. "auto"
}

// Turn builds the standard per-turn document: speak the reply inside a
// speech gather, then redirect back to the webhook so the conversation
// continues. The call only ends when the caller hangs up.
func Turn(p TurnParams) Document {
	return Document{
		Gather: &Gather{
			Input:         "speech",
			Language:      p.Language,
			Action:        p.ActionURL,
			Method:        "POST",
			Timeout:       p.Timeout,
			SpeechTimeout: p.SpeechTimeout,
			Say: &Say{
				Voice:    p.Voice,
				Language: p.Language,
				Text:     p.Speech,
			},
		},
		Redirect: &Redirect{Method: "POST", URL: p.ActionURL},
	}
}

// Terminal builds a document that speaks a final message and hangs up,
// with no continuation directive.
func Terminal(speech, voice, language string) Document {
	return Document{
		Say:    &Say{Voice: voice, Language: language, Text: speech},
		Hangup: &Hangup{},
	}
}

// Encode renders the document with the XML declaration the gateway expects.
func (d Document) Encode() ([]byte, error) {
	body, err := xml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("telephony: marshal twiml: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
