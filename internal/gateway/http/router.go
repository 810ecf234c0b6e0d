package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/darkaihq/darkgate/internal/gateway/gate"
	"github.com/darkaihq/darkgate/internal/gateway/service"
	"github.com/darkaihq/darkgate/internal/gateway/upstream"
	"github.com/darkaihq/darkgate/pkg/httpx"
	"github.com/darkaihq/darkgate/pkg/slogx"

	_ "github.com/darkaihq/darkgate/api/gateway" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// ExemptPaths skip authentication entirely: health, docs and the credential
// endpoints themselves. "/" matches exactly, everything else by prefix.
var ExemptPaths = []string{
	"/",
	"/health",
	"/docs",
	"/auth/register",
	"/auth/login",
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	gate         *gate.Gate
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	Upstream      *upstream.Client
	ClientService *service.ClientService
	TokenService  *service.TokenService

	// CheckCache reports replay-backend health for /health. Nil when the
	// in-process backend is in use.
	CheckCache func(r *http.Request) error
}

func NewRouter(g *gate.Gate, buildVersion string, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		gate:         g,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
	}

	// Security headers decorate every response, admitted or denied, so they
	// sit outside the gate.
	r.middlewares = []httpx.Middleware{
		httpx.SecurityHeaders(),
		slogx.HTTPMiddleware(r.logger),
		g.Middleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerChat()
	r.registerImage()
	r.registerVoice()
	r.registerVideo()
	r.registerMusic()
	r.registerSocial()
	r.registerBackground()
	r.registerSystem()

	r.Mux.Handle("/docs/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler and applies the global middleware chain.
//
//	@title			DarkGate API
//	@version		1.0.0
//	@description	Authenticated gateway in front of a multi-model AI service:
//	@description	text, image, voice, video, music, social-media download and
//	@description	background removal.
//
//	@host						localhost:5000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	registerHandler := &RegisterHandler{ClientService: r.ClientService}
	loginHandler := &LoginHandler{ClientService: r.ClientService, TokenService: r.TokenService}
	revokeHandler := &RevokeHandler{TokenService: r.TokenService}
	profileHandler := &ProfileHandler{ClientService: r.ClientService}

	// Credential endpoints get strict per-IP limits to slow brute force.
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(registerHandler, httpx.RateLimitByIP(httpx.StrictLimit)))
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(loginHandler, httpx.RateLimitByIP(httpx.StrictLimit)))

	r.Mux.Handle("POST /auth/revoke", revokeHandler)
	r.Mux.Handle("GET /auth/profile", profileHandler)
}

func (r *Router) registerChat() {
	h := &ChatHandler{Upstream: r.Upstream}
	scoped := func(next http.Handler) http.Handler {
		return httpx.Chain(next, httpx.RequireAnyScope("basic", "chat"))
	}

	r.Mux.Handle("POST /api/ai", scoped(http.HandlerFunc(h.HandleAI)))
	r.Mux.Handle("POST /api/gemini-dark", scoped(http.HandlerFunc(h.HandleGemini)))
	r.Mux.Handle("POST /api/gemma", scoped(http.HandlerFunc(h.HandleGemma)))
	r.Mux.Handle("POST /api/wormgpt", scoped(http.HandlerFunc(h.HandleWormGPT)))
}

func (r *Router) registerImage() {
	h := &ImageHandler{Upstream: r.Upstream}
	scoped := func(next http.Handler) http.Handler {
		return httpx.Chain(next, httpx.RequireAnyScope("basic", "image"))
	}

	r.Mux.Handle("POST /api/gemini-img/edit", scoped(http.HandlerFunc(h.HandleGeminiEdit)))
	r.Mux.Handle("POST /api/gpt-img/edit", scoped(http.HandlerFunc(h.HandleGPTEdit)))
	r.Mux.Handle("POST /api/flux-pro", scoped(http.HandlerFunc(h.HandleFluxPro)))
	r.Mux.Handle("POST /api/img-cv", scoped(http.HandlerFunc(h.HandleImgCV)))
	r.Mux.Handle("POST /api/nano-banana", scoped(http.HandlerFunc(h.HandleNanoBanana)))
}

func (r *Router) registerVoice() {
	h := &VoiceHandler{Upstream: r.Upstream}
	scoped := func(next http.Handler) http.Handler {
		return httpx.Chain(next, httpx.RequireAnyScope("basic", "voice"))
	}

	r.Mux.Handle("POST /api/voice", scoped(http.HandlerFunc(h.HandleDefault)))
	r.Mux.Handle("POST /api/voice/custom", scoped(http.HandlerFunc(h.HandleCustom)))
}

func (r *Router) registerVideo() {
	h := &VideoHandler{Upstream: r.Upstream}
	scoped := func(next http.Handler) http.Handler {
		return httpx.Chain(next, httpx.RequireAnyScope("basic", "video"))
	}

	r.Mux.Handle("POST /api/veo3/text-to-video", scoped(http.HandlerFunc(h.HandleTextToVideo)))
	r.Mux.Handle("POST /api/veo3/image-to-video", scoped(http.HandlerFunc(h.HandleImageToVideo)))
}

func (r *Router) registerMusic() {
	h := &MusicHandler{Upstream: r.Upstream}
	scoped := func(next http.Handler) http.Handler {
		return httpx.Chain(next, httpx.RequireAnyScope("basic", "music"))
	}

	r.Mux.Handle("POST /api/music", scoped(http.HandlerFunc(h.HandleLyrics)))
	r.Mux.Handle("POST /api/create-music", scoped(http.HandlerFunc(h.HandleInstrumental)))
}

func (r *Router) registerSocial() {
	h := &SocialHandler{Upstream: r.Upstream}
	r.Mux.Handle("POST /api/download",
		httpx.Chain(h, httpx.RequireAnyScope("basic", "social")))
}

func (r *Router) registerBackground() {
	h := &BackgroundHandler{Upstream: r.Upstream}
	r.Mux.Handle("POST /api/remove-bg",
		httpx.Chain(h, httpx.RequireAnyScope("basic", "image")))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}",
		httpx.Chain(RootHandler(r.buildVersion), httpx.RateLimitByIP(httpx.LenientLimit)))
	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(r.buildVersion, r.CheckCache), httpx.RateLimitByIP(httpx.LenientLimit)))
}
