package models

// TokenPair is the upstream token endpoint response. Refresh may be empty;
// only Access gates the console session.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}
