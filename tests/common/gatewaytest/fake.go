//go:build unit || e2e

package gatewaytest

import (
	"context"
	"fmt"
	"sync"

	"fitbook/internal/usecase/shared"
)

// Gateway is an in-memory payment processor. Events are only accepted with a
// signature handed out by Sign.
type Gateway struct {
	mu           sync.Mutex
	seq          int
	authorized   []shared.AuthorizeParams
	refunded     []string
	capabilities map[string]shared.AccountCapabilities
	signed       map[string]shared.GatewayEvent

	RefundErr error
}

func New() *Gateway {
	return &Gateway{
		capabilities: make(map[string]shared.AccountCapabilities),
		signed:       make(map[string]shared.GatewayEvent),
	}
}

func (g *Gateway) Authorize(_ context.Context, params shared.AuthorizeParams) (*shared.Authorization, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	g.authorized = append(g.authorized, params)
	ref := fmt.Sprintf("pi_fake_%d", g.seq)
	return &shared.Authorization{Ref: ref, ClientSecret: ref + "_secret"}, nil
}

func (g *Gateway) Refund(_ context.Context, authorizationRef string, _ *string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.RefundErr != nil {
		return "", g.RefundErr
	}
	g.refunded = append(g.refunded, authorizationRef)
	return "re_" + authorizationRef, nil
}

func (g *Gateway) VerifyAndParseEvent(payload []byte, signature string) (*shared.GatewayEvent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	ev, ok := g.signed[signature]
	if !ok {
		return nil, shared.ErrInvalidSignature
	}
	ev.Payload = payload
	return &ev, nil
}

func (g *Gateway) AccountCapabilities(_ context.Context, accountID string) (*shared.AccountCapabilities, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	c := g.capabilities[accountID]
	return &c, nil
}

// Sign registers ev and returns the signature that makes it verifiable.
func (g *Gateway) Sign(ev shared.GatewayEvent) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	sig := "t=0,v1=" + ev.ID
	g.signed[sig] = ev
	return sig
}

func (g *Gateway) SetCapabilities(accountID string, c shared.AccountCapabilities) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.capabilities[accountID] = c
}

func (g *Gateway) Authorized() []shared.AuthorizeParams {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]shared.AuthorizeParams(nil), g.authorized...)
}

func (g *Gateway) Refunded() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.refunded...)
}

func (g *Gateway) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq = 0
	g.authorized = nil
	g.refunded = nil
	g.RefundErr = nil
	clear(g.capabilities)
	clear(g.signed)
}
