package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"upstagram/be/biz/config"
	"upstagram/be/biz/model/domain"

	"golang.org/x/oauth2"
)

// Service drives the authorization-code flow against the configured provider
// and normalizes the returned profile.
type Service struct {
	providerID       string
	nameAttributeKey string
	userInfoURL      string
	config           *oauth2.Config
}

func New(conf config.OAuthConf) *Service {
	return &Service{
		providerID:       conf.Provider,
		nameAttributeKey: conf.NameAttributes,
		userInfoURL:      conf.UserInfoURL,
		config: &oauth2.Config{
			ClientID:     conf.ClientID,
			ClientSecret: conf.ClientSecret,
			RedirectURL:  conf.RedirectURL,
			Scopes:       conf.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  conf.AuthURL,
				TokenURL: conf.TokenURL,
			},
		},
	}
}

func NewDefault() *Service {
	return New(config.GetOAuthConf())
}

// AuthURL returns the provider authorization URL for the redirect step. The
// state echoes back on the callback and must be verified there.
func (s *Service) AuthURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades the callback code for the provider's userinfo document and
// returns the normalized profile. The exchange is server to server; the access
// token never leaves this call.
func (s *Service) Exchange(ctx context.Context, code string) (*domain.OAuthAttributes, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth: exchanging code: %w", err)
	}

	client := s.config.Client(ctx, token)
	resp, err := client.Get(s.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("oauth: fetching userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("oauth: userinfo returned status %d", resp.StatusCode)
	}

	var attributes map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&attributes); err != nil {
		return nil, fmt.Errorf("oauth: decoding userinfo: %w", err)
	}

	attrs := Normalize(s.providerID, s.nameAttributeKey, attributes)
	if s.Subject(attrs) == "" {
		return nil, fmt.Errorf("oauth: userinfo missing %q", s.nameAttributeKey)
	}
	return attrs, nil
}
