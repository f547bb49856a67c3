package i

// Operator authenticates operators for the protected routes.
type Operator interface {
	// IssueToken exchanges the shared operator key for a signed token.
	IssueToken(key string) (string, error)
}
