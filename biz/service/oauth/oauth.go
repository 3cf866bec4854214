package oauth

import (
	"upstagram/be/biz/model/domain"
)

// extractor maps one provider's raw attribute bundle to the common profile
// fields. Providers disagree on field names, nothing else.
type extractor interface {
	Extract(attributes map[string]any) (name, email, picture string)
}

type googleExtractor struct{}

func (googleExtractor) Extract(attributes map[string]any) (string, string, string) {
	return stringAttr(attributes, "name"),
		stringAttr(attributes, "email"),
		stringAttr(attributes, "picture")
}

func stringAttr(attributes map[string]any, key string) string {
	v, _ := attributes[key].(string)
	return v
}

func extractorFor(providerID string) extractor {
	switch providerID {
	default:
		// google attribute names double as the fallback shape
		return googleExtractor{}
	}
}

// Normalize builds the canonical profile from a provider's raw attributes.
// The raw map is carried through untouched so the subject can still be read
// under nameAttributeKey.
func Normalize(providerID, nameAttributeKey string, attributes map[string]any) *domain.OAuthAttributes {
	name, email, picture := extractorFor(providerID).Extract(attributes)
	return &domain.OAuthAttributes{
		Attributes:       attributes,
		NameAttributeKey: nameAttributeKey,
		Name:             name,
		Email:            email,
		Picture:          picture,
	}
}

// Subject returns the provider-side identifier of the profile, read from the
// raw attributes under the configured name attribute key.
func (s *Service) Subject(attrs *domain.OAuthAttributes) string {
	if attrs == nil {
		return ""
	}
	return stringAttr(attrs.Attributes, attrs.NameAttributeKey)
}
