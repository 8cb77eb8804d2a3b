package identity

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/NutriFind_Go/internal/domain"
	"github.com/osse101/NutriFind_Go/internal/event"
	"github.com/osse101/NutriFind_Go/internal/live"
	"github.com/osse101/NutriFind_Go/internal/logger"
)

// LocalProvider keeps one in-process session. External credentials are
// verified locally; anonymous users get a fresh random uid.
type LocalProvider struct {
	verifier *Verifier
	bus      event.Bus
	now      func() int64

	mu      sync.RWMutex
	current *domain.User
}

var _ Provider = (*LocalProvider)(nil)

// NewLocalProvider creates a signed-out provider
func NewLocalProvider(verifier *Verifier, bus event.Bus) *LocalProvider {
	return &LocalProvider{
		verifier: verifier,
		bus:      bus,
		now:      func() int64 { return time.Now().UnixMilli() },
	}
}

func (p *LocalProvider) Observe(ctx context.Context) *live.Subscription[*domain.User] {
	return live.NewQuery(p.bus, QueryCurrentUser, func(context.Context) (*domain.User, error) {
		return p.CurrentUser(), nil
	}, event.SessionChanged).Observe(ctx)
}

// CurrentUser returns a copy of the signed-in user, or nil
func (p *LocalProvider) CurrentUser() *domain.User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.current == nil {
		return nil
	}
	user := *p.current
	return &user
}

func (p *LocalProvider) IsLoggedIn() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current != nil
}

func (p *LocalProvider) SignInWithCredential(ctx context.Context, token string) domain.AuthResult {
	log := logger.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return domain.AuthError(ErrMsgCredentialMissing)
	}

	claims, err := p.verifier.Verify(token)
	if err != nil {
		log.Warn(LogMsgSignInRejected, "error", err)
		return domain.AuthError(ErrMsgCredentialRejected)
	}

	return p.signIn(ctx, claims.User(p.now()))
}

func (p *LocalProvider) SignInAnonymously(ctx context.Context) domain.AuthResult {
	return p.signIn(ctx, domain.User{
		UID:         uuid.New().String(),
		IsAnonymous: true,
		CreatedAt:   p.now(),
	})
}

func (p *LocalProvider) signIn(ctx context.Context, user domain.User) domain.AuthResult {
	p.mu.Lock()
	stored := user
	p.current = &stored
	p.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgSignedIn, "uid", user.UID, "anonymous", user.IsAnonymous)
	p.publish(ctx, event.NewSessionEvent(user.UID, true))
	return domain.AuthSuccess(user)
}

// SignOut ends the session. Signing out with no session is a no-op.
func (p *LocalProvider) SignOut(ctx context.Context) {
	p.mu.Lock()
	previous := p.current
	p.current = nil
	p.mu.Unlock()

	if previous == nil {
		return
	}
	logger.FromContext(ctx).Info(LogMsgSignedOut, "uid", previous.UID)
	p.publish(ctx, event.NewSessionEvent(previous.UID, false))
}

func (p *LocalProvider) publish(ctx context.Context, evt event.Event) {
	if err := p.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgSessionPublishErr, "error", err)
	}
}
