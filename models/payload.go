package models

import (
	"encoding/json"
	"strconv"
)

// PayloadKind tags the closed set of notification payload variants.
type PayloadKind string

const (
	KindGeneric  PayloadKind = "generic"
	KindMessage  PayloadKind = "message"
	KindDocument PayloadKind = "document"
	KindEvent    PayloadKind = "event"
	KindAgenda   PayloadKind = "agenda"
)

// Screen names the CMS declares in notification payloads.
const (
	ScreenMessageDetails  = "MessageDetails"
	ScreenDocumentDetails = "DocumentDetails"
	ScreenEventDetails    = "EventDetails"
	ScreenAgendaDetail    = "AgendaDetail"
	ScreenNotifications   = "Notifications"
)

// Payload is the structured `data` field carried by a notification. The CMS
// stores it as a free-form map; entity ids may appear at the top level or
// nested under a `params` object, and may arrive as numbers or strings.
type Payload struct {
	Kind           PayloadKind
	Screen         string
	NavigateTo     string
	ConversationID string
	DocumentID     string
	EventID        string
	AgendaID       string
}

// IsEvent reports whether the payload belongs to the event category: it
// carries an eventId or declares EventDetails as its navigation target.
func (p Payload) IsEvent() bool {
	return p.EventID != "" || p.NavigateTo == ScreenEventDetails
}

// IsAgenda reports whether the payload belongs to the agenda category: it
// carries an agendaId or declares AgendaDetail as its navigation target.
// A payload may satisfy both IsEvent and IsAgenda; counters tally it in
// both categories.
func (p Payload) IsAgenda() bool {
	return p.AgendaID != "" || p.NavigateTo == ScreenAgendaDetail
}

// UnmarshalJSON decodes the CMS free-form map into the closed variant.
func (p *Payload) UnmarshalJSON(raw []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return err
	}

	p.Screen = stringField(m, "screen")
	p.NavigateTo = stringField(m, "navigateTo")
	p.ConversationID = stringField(m, "conversationId")
	p.DocumentID = stringField(m, "documentId")
	p.EventID = stringField(m, "eventId")
	p.AgendaID = stringField(m, "agendaId")

	if params, ok := m["params"].(map[string]interface{}); ok {
		if p.ConversationID == "" {
			p.ConversationID = stringField(params, "conversationId")
		}
		if p.DocumentID == "" {
			p.DocumentID = stringField(params, "documentId")
		}
		if p.EventID == "" {
			p.EventID = stringField(params, "eventId")
		}
		if p.AgendaID == "" {
			p.AgendaID = stringField(params, "agendaId")
		}
	}

	p.Kind = deriveKind(*p)
	return nil
}

// deriveKind picks the variant. An explicit screen wins; otherwise the
// category predicates and entity ids decide, so a payload IsEvent or IsAgenda
// reports on never lands in the generic variant. When a screenless payload
// satisfies both category predicates the event variant wins; counters still
// tally such a payload in both categories.
func deriveKind(p Payload) PayloadKind {
	switch p.Screen {
	case ScreenMessageDetails:
		return KindMessage
	case ScreenDocumentDetails:
		return KindDocument
	case ScreenEventDetails:
		return KindEvent
	case ScreenAgendaDetail:
		return KindAgenda
	}
	switch {
	case p.IsEvent():
		return KindEvent
	case p.IsAgenda():
		return KindAgenda
	case p.NavigateTo == ScreenMessageDetails || p.ConversationID != "":
		return KindMessage
	case p.NavigateTo == ScreenDocumentDetails || p.DocumentID != "":
		return KindDocument
	}
	return KindGeneric
}

// MarshalJSON writes the payload back in the map shape the CMS and the push
// transports expect.
func (p Payload) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Map())
}

// Map renders the payload as the wire-level free-form map.
func (p Payload) Map() map[string]interface{} {
	m := map[string]interface{}{}
	if p.Screen != "" {
		m["screen"] = p.Screen
	}
	if p.NavigateTo != "" {
		m["navigateTo"] = p.NavigateTo
	}
	if p.ConversationID != "" {
		m["conversationId"] = p.ConversationID
	}
	if p.DocumentID != "" {
		m["documentId"] = p.DocumentID
	}
	if p.EventID != "" {
		m["eventId"] = p.EventID
	}
	if p.AgendaID != "" {
		m["agendaId"] = p.AgendaID
	}
	return m
}

// StringMap renders the payload with string values only, as required by the
// FCM data field.
func (p Payload) StringMap() map[string]string {
	out := map[string]string{}
	for k, v := range p.Map() {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

func stringField(m map[string]interface{}, key string) string {
	switch v := m[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return ""
	}
}
