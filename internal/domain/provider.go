package domain

// ProviderToken is the bearer token returned by the provider's OAuth endpoint.
type ProviderToken struct {
	AccessToken string
	ExpiresIn   string
}

// URLRegistration is the provider's response to a C2B URL registration.
type URLRegistration struct {
	OriginatorConversationID string
	ConversationID           string
	ResponseDescription      string
}

// CredentialCheck summarizes a successful credential verification. The derived
// password is never returned in full.
type CredentialCheck struct {
	AccessToken     string
	Timestamp       string
	PasswordPreview string
}
