// Command tablecore wires the identity store, invitation registry, rate
// limiter, token issuer, and game registry into one running process. It
// does not serve HTTP — routing and transport are an adapter's job,
// outside this repository's scope.
package main

import (
	"log"
	"os"
	"time"

	"github.com/swarm-blackjack/tablecore/internal/authtoken"
	"github.com/swarm-blackjack/tablecore/internal/config"
	"github.com/swarm-blackjack/tablecore/internal/events"
	"github.com/swarm-blackjack/tablecore/internal/gameservice"
	"github.com/swarm-blackjack/tablecore/internal/identity"
	"github.com/swarm-blackjack/tablecore/internal/invitations"
	"github.com/swarm-blackjack/tablecore/internal/ratelimit"
)

// App bundles the wired-up subsystems an adapter (HTTP, CLI, whatever
// fronts this process) would hold on to for the lifetime of the program.
type App struct {
	Identity    *identity.Store
	Invitations *invitations.Registry
	Games       *gameservice.Service
	Limiter     *ratelimit.Limiter
	Issuer      *authtoken.Issuer
	Verifier    *authtoken.Verifier
	Events      *events.Publisher
}

func main() {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("[tablecore] JWT_SECRET must be set")
	}

	log.Printf("[tablecore] starting: max_players=%d min_players=%d rate_limit=%d/min",
		cfg.MaxPlayers, cfg.MinPlayers, cfg.RateLimitPerMinute)

	app := wire(cfg)
	defer app.Events.Close()

	log.Printf("[tablecore] ready — no transport attached in this process")
	select {}
}

func wire(cfg config.Config) *App {
	identityStore := identity.NewStore()
	invitationRegistry := invitations.NewRegistry()

	games := gameservice.NewService(
		identityStore,
		invitationRegistry,
		cfg.InvitationDefaultTimeoutSeconds,
		cfg.InvitationMaxTimeoutSeconds,
	)

	bus := events.NewBus()
	publisher := events.NewPublisher(bus)
	publisher.Connect(getEnv("REDIS_URL", "redis:6379"), 5, 2*time.Second)

	return &App{
		Identity:    identityStore,
		Invitations: invitationRegistry,
		Games:       games,
		Limiter:     ratelimit.New(cfg.RateLimitPerMinute),
		Issuer:      authtoken.NewIssuer(cfg.JWTSecret, cfg.JWTExpiration()),
		Verifier:    authtoken.NewVerifier(cfg.JWTSecret),
		Events:      publisher,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
