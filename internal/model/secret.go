package model

// HiddenValue replaces private key material in redacted credentials.
const HiddenValue = "****"

// GoogleClientSecret is a Google service account key file.
type GoogleClientSecret struct {
	Type                string `json:"type,omitempty"`
	ProjectID           string `json:"project_id,omitempty"`
	PrivateKeyID        string `json:"private_key_id,omitempty"`
	PrivateKey          string `json:"private_key,omitempty"`
	ClientEmail         string `json:"client_email,omitempty"`
	ClientID            string `json:"client_id,omitempty"`
	AuthURI             string `json:"auth_uri,omitempty"`
	TokenURI            string `json:"token_uri,omitempty"`
	AuthProviderCertURL string `json:"auth_provider_x509_cert_url,omitempty"`
	ClientCertURL       string `json:"client_x509_cert_url,omitempty"`
}

// Redacted returns a copy with both private key fields masked. A credential
// without any key material is returned unchanged.
func (s GoogleClientSecret) Redacted() GoogleClientSecret {
	if s.PrivateKey == "" && s.PrivateKeyID == "" {
		return s
	}
	s.PrivateKey = HiddenValue
	s.PrivateKeyID = HiddenValue
	return s
}

func (s GoogleClientSecret) Complete() bool {
	return s.Type != "" &&
		s.ProjectID != "" &&
		s.PrivateKeyID != "" &&
		s.PrivateKey != "" &&
		s.ClientEmail != "" &&
		s.ClientID != "" &&
		s.AuthURI != "" &&
		s.TokenURI != ""
}
