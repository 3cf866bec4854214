package domain

// OAuthAttributes is the canonical shape of a federated provider's attribute
// bundle. The full raw map is retained for downstream identification.
type OAuthAttributes struct {
	Attributes       map[string]any
	NameAttributeKey string
	Name             string
	Email            string
	Picture          string
}

// ToMemberRequest converts the profile into a member-creation request with the
// GUEST role. Password and tel stay empty until collected separately.
func (a *OAuthAttributes) ToMemberRequest() *MemberJoinRequest {
	return &MemberJoinRequest{
		Name:    a.Name,
		Email:   a.Email,
		Picture: a.Picture,
		Role:    RoleGuest,
	}
}
