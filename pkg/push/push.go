package push

import "encoding/json"

// EndpointArn identifies a single registered device on SNS.
// It is opaque to this package; values only ever originate from a
// successful RegisterDevice call.
type EndpointArn = string

// Push is a push notification to be sent to a device.
// Construct values with NewAlert or NewSilent; the zero value is a
// silent push with no badge.
type Push struct {
	alert bool
	text  string
	badge *int
}

// NewAlert creates a normal alert-style push showing text on screen.
// The badge count is optional; pass nil to leave it unset.
func NewAlert(text string, badge *int) Push {
	return Push{alert: true, text: text, badge: badge}
}

// NewSilent creates a silent push with no visible alert.
// Useful for waking up an app to perform work in the background.
// Android has no native silent-push concept, so the Android payload
// carries no content and wake behavior is up to the app layer.
func NewSilent(badge *int) Push {
	return Push{badge: badge}
}

// Badge is a convenience helper for the optional badge count.
func Badge(n int) *int {
	return &n
}

// snsEnvelope is the top-level document SNS expects when publishing
// with MessageStructure "json": per-platform sub-payloads serialized
// to string-valued fields.
type snsEnvelope struct {
	Default     string `json:"default"`
	APNS        string `json:"APNS"`
	APNSSandbox string `json:"APNS_SANDBOX"`
	GCM         string `json:"GCM"`
}

// SNSMessage builds the platform-keyed JSON envelope for this push.
//
// The iOS and Android sub-payloads are themselves JSON documents
// encoded as strings (SNS requires the double encoding), and the
// sandbox payload is always identical to the production one. Key
// names and nesting are wire contracts with the mobile push
// frameworks and must not change:
//
//	Alert:  {"aps":{"alert":text,"badge":badge}} / {"data":{"message":text,"badge":badge}}
//	Silent: {"aps":{"content-available":1,"badge":badge}} / {"data":{}}
//
// An absent badge encodes as JSON null, not key omission.
func (p Push) SNSMessage() (string, error) {
	var ios, android map[string]any
	if p.alert {
		ios = map[string]any{
			"aps": map[string]any{
				"alert": p.text,
				"badge": p.badge,
			},
		}
		android = map[string]any{
			"data": map[string]any{
				"message": p.text,
				"badge":   p.badge,
			},
		}
	} else {
		ios = map[string]any{
			"aps": map[string]any{
				"content-available": 1,
				"badge":             p.badge,
			},
		}
		android = map[string]any{
			"data": map[string]any{},
		}
	}

	iosJSON, err := json.Marshal(ios)
	if err != nil {
		return "", err
	}
	androidJSON, err := json.Marshal(android)
	if err != nil {
		return "", err
	}

	envelope, err := json.Marshal(snsEnvelope{
		Default:     "",
		APNS:        string(iosJSON),
		APNSSandbox: string(iosJSON),
		GCM:         string(androidJSON),
	})
	if err != nil {
		return "", err
	}

	return string(envelope), nil
}
