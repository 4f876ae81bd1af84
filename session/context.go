package session

import "context"

type ctxKey struct{}

// NewContext attaches the request's session to ctx.
func NewContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session attached to ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(*Session)
	return sess, ok
}

// TokenSource adapts the store to the API client: the bearer token comes
// from the session riding on the request context, and a 401 tears the
// token down session-wide.
type TokenSource struct {
	Store *Store
}

func (ts TokenSource) Token(ctx context.Context) string {
	sess, ok := FromContext(ctx)
	if !ok {
		return ""
	}

	ts.Store.mu.RLock()
	defer ts.Store.mu.RUnlock()
	return sess.Token
}

func (ts TokenSource) Clear(ctx context.Context) {
	sess, ok := FromContext(ctx)
	if !ok {
		return
	}
	ts.Store.Logout(sess)
}
