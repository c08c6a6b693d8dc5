package identity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const twitterProviderID = "twitter"

// Profile is a normalized provider identity as returned by a credential
// verification endpoint. Subject is the provider-scoped stable user id.
type Profile struct {
	ProviderID string
	Subject    string
	ScreenName string
	Name       string
	Raw        map[string]any
}

// Empty reports whether the profile carries no usable identity. A profile
// without a subject cannot be mapped to an application user.
func (p Profile) Empty() bool {
	return strings.TrimSpace(p.Subject) == ""
}

func (p Profile) Map() map[string]any {
	metadata := map[string]any{
		"provider_id": strings.TrimSpace(p.ProviderID),
		"subject":     strings.TrimSpace(p.Subject),
		"screen_name": strings.TrimSpace(p.ScreenName),
		"name":        strings.TrimSpace(p.Name),
	}
	if len(p.Raw) > 0 {
		metadata["raw"] = copyMap(p.Raw)
	}
	return metadata
}

// NormalizeTwitterProfile maps a raw verify_credentials payload into a
// Profile. Twitter serves the stable id as id_str; the numeric id field is
// only a fallback because large ids lose precision through float decoding.
func NormalizeTwitterProfile(payload map[string]any) Profile {
	subject := readString(payload["id_str"])
	if subject == "" {
		subject = readString(payload["id"])
	}
	return Profile{
		ProviderID: twitterProviderID,
		Subject:    subject,
		ScreenName: readString(payload["screen_name"]),
		Name:       readString(payload["name"]),
		Raw:        copyMap(payload),
	}
}

func copyMap(src map[string]any) map[string]any {
	if len(src) == 0 {
		return map[string]any{}
	}
	dst := make(map[string]any, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}

func readString(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case fmt.Stringer:
		return strings.TrimSpace(typed.String())
	case json.Number:
		return strings.TrimSpace(typed.String())
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case float64:
		return strconv.FormatInt(int64(typed), 10)
	default:
		if value == nil {
			return ""
		}
		return strings.TrimSpace(fmt.Sprint(value))
	}
}
