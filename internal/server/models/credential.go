package models

// Credential is the sign-in method of an account. It is one of
// LocalCredential, ExternalCredential or LinkedCredential.
type Credential interface {
	credential()
}

// LocalCredential is a password-only account.
type LocalCredential struct {
	SecretHash string
}

// ExternalCredential is an account created through an identity provider;
// it has no local secret.
type ExternalCredential struct {
	Provider  string
	SubjectID string
}

// LinkedCredential is a password account that was later linked to an
// identity provider, or an external account that later set a secret.
type LinkedCredential struct {
	SecretHash string
	Provider   string
	SubjectID  string
}

func (LocalCredential) credential()    {}
func (ExternalCredential) credential() {}
func (LinkedCredential) credential()   {}

// SecretHash returns the stored secret hash, if the credential has one.
func SecretHash(c Credential) (string, bool) {
	switch v := c.(type) {
	case LocalCredential:
		return v.SecretHash, v.SecretHash != ""
	case LinkedCredential:
		return v.SecretHash, v.SecretHash != ""
	}
	return "", false
}

// ExternalIdentity returns the provider linkage, if the credential has one.
func ExternalIdentity(c Credential) (provider, subjectID string, ok bool) {
	switch v := c.(type) {
	case ExternalCredential:
		return v.Provider, v.SubjectID, true
	case LinkedCredential:
		return v.Provider, v.SubjectID, true
	}
	return "", "", false
}

// LinkExternal attaches a provider identity. Local credentials become
// Linked; credentials already carrying a linkage are returned unchanged
// together with linked=false.
func LinkExternal(c Credential, provider, subjectID string) (next Credential, linked bool) {
	switch v := c.(type) {
	case LocalCredential:
		return LinkedCredential{SecretHash: v.SecretHash, Provider: provider, SubjectID: subjectID}, true
	case nil:
		return ExternalCredential{Provider: provider, SubjectID: subjectID}, true
	}
	return c, false
}

// ReplaceSecret sets a new secret hash. External credentials become Linked
// so the provider linkage survives.
func ReplaceSecret(c Credential, hash string) Credential {
	switch v := c.(type) {
	case ExternalCredential:
		return LinkedCredential{SecretHash: hash, Provider: v.Provider, SubjectID: v.SubjectID}
	case LinkedCredential:
		v.SecretHash = hash
		return v
	}
	return LocalCredential{SecretHash: hash}
}

// CredentialColumns flattens c into nullable storage columns.
func CredentialColumns(c Credential) (secretHash, provider, subjectID *string) {
	if h, ok := SecretHash(c); ok {
		secretHash = &h
	}
	if p, s, ok := ExternalIdentity(c); ok {
		provider, subjectID = &p, &s
	}
	return secretHash, provider, subjectID
}

// CredentialFromColumns rebuilds the variant from nullable storage columns.
// A row with neither a secret nor a linkage yields nil.
func CredentialFromColumns(secretHash, provider, subjectID *string) Credential {
	hasSecret := secretHash != nil && *secretHash != ""
	hasExternal := provider != nil && subjectID != nil && *subjectID != ""

	switch {
	case hasSecret && hasExternal:
		return LinkedCredential{SecretHash: *secretHash, Provider: *provider, SubjectID: *subjectID}
	case hasSecret:
		return LocalCredential{SecretHash: *secretHash}
	case hasExternal:
		return ExternalCredential{Provider: *provider, SubjectID: *subjectID}
	}
	return nil
}
