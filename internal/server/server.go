package server

import (
	"errors"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/quote"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const handoffPrefix = "/api/v1/handoff/"

// Config wires the server to an engine and product
type Config struct {
	Engine     *quote.Engine
	Bonus      domain.BonusConfig
	Product    string
	HandoffTTL time.Duration
	Logger     *zap.Logger
}

// Server exposes the quote engine over HTTP
type Server struct {
	engine   *quote.Engine
	bonus    domain.BonusConfig
	product  string
	handoffs *HandoffStore
	logger   *zap.Logger
	http     *fasthttp.Server
}

// New creates a server. A nil logger discards logs.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		engine:   cfg.Engine,
		bonus:    cfg.Bonus,
		product:  cfg.Product,
		handoffs: NewHandoffStore(cfg.HandoffTTL),
		logger:   logger,
	}
	s.http = &fasthttp.Server{
		Handler:            s.Handler,
		Name:               "plan733",
		ReadTimeout:        10 * time.Second,
		WriteTimeout:       10 * time.Second,
		MaxRequestBodySize: 64 * 1024,
	}
	return s
}

// ListenAndServe serves until Shutdown is called
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("server listening", zap.String("address", addr), zap.String("product", s.product))
	return s.http.ListenAndServe(addr)
}

// Serve serves on an existing listener until Shutdown is called
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("server listening", zap.String("address", ln.Addr().String()), zap.String("product", s.product))
	return s.http.Serve(ln)
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown() error {
	return s.http.Shutdown()
}

// Handler routes a request
func (s *Server) Handler(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	path := string(ctx.Path())

	switch {
	case path == "/healthz":
		s.handleHealth(ctx)
	case path == "/api/v1/ages":
		s.handleAges(ctx)
	case path == "/api/v1/terms":
		s.handleTerms(ctx)
	case path == "/api/v1/table":
		s.handleTable(ctx)
	case path == "/api/v1/quote":
		s.handleQuote(ctx)
	case path == "/api/v1/payload":
		s.handlePayload(ctx)
	case strings.HasPrefix(path, handoffPrefix):
		s.handleHandoff(ctx, strings.TrimPrefix(path, handoffPrefix))
	default:
		writeError(ctx, fasthttp.StatusNotFound, "", "no route for "+path)
	}

	s.logger.Debug("request",
		zap.ByteString("method", ctx.Method()),
		zap.String("path", path),
		zap.Int("status", ctx.Response.StatusCode()),
		zap.Duration("elapsed", time.Since(start)))
}

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	if !requireMethod(ctx, fasthttp.MethodGet) {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok", "product": s.product})
}

func (s *Server) handleAges(ctx *fasthttp.RequestCtx) {
	if !requireMethod(ctx, fasthttp.MethodGet) {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, AgesResponse{Ages: s.engine.Table.AvailableAges()})
}

func (s *Server) handleTerms(ctx *fasthttp.RequestCtx) {
	if !requireMethod(ctx, fasthttp.MethodGet) {
		return
	}
	raw := ctx.QueryArgs().Peek("age")
	age, err := strconv.Atoi(string(raw))
	if err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "", "query parameter age must be an integer")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, TermsResponse{Age: age, Terms: s.engine.Table.TermsForAge(age)})
}

func (s *Server) handleTable(ctx *fasthttp.RequestCtx) {
	if !requireMethod(ctx, fasthttp.MethodGet) {
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, s.engine.PremiumGrid())
}

func (s *Server) handleQuote(ctx *fasthttp.RequestCtx) {
	if !requireMethod(ctx, fasthttp.MethodPost) {
		return
	}
	var req QuoteRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "", "Invalid request body: "+err.Error())
		return
	}

	q, err := s.engine.BuildQuote(req.Age, req.Term, s.bonus)
	if err != nil {
		s.writeEngineError(ctx, err)
		return
	}
	display, err := s.engine.Display(req.Age, req.Term, s.bonus)
	if err != nil {
		s.writeEngineError(ctx, err)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, QuoteResponse{Quote: q, Display: display})
}

func (s *Server) handlePayload(ctx *fasthttp.RequestCtx) {
	if !requireMethod(ctx, fasthttp.MethodPost) {
		return
	}
	var req PayloadRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "", "Invalid request body: "+err.Error())
		return
	}

	payload, err := s.engine.BuildPayload(req.GoalID, req.Age, req.Term, s.bonus)
	if err != nil {
		s.writeEngineError(ctx, err)
		return
	}
	token, expires, err := s.handoffs.Put(payload)
	if err != nil {
		s.logger.Error("hand-off store failed", zap.Error(err))
		writeError(ctx, fasthttp.StatusInternalServerError, "", "could not store payload")
		return
	}
	writeJSON(ctx, fasthttp.StatusCreated, PayloadResponse{Token: token, ExpiresAt: expires, Payload: payload})
}

func (s *Server) handleHandoff(ctx *fasthttp.RequestCtx, token string) {
	if !requireMethod(ctx, fasthttp.MethodGet) {
		return
	}
	payload, ok := s.handoffs.Take(token)
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "", "hand-off token unknown or expired")
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, payload)
}

// writeEngineError maps selection errors to 422 and everything else to 500
func (s *Server) writeEngineError(ctx *fasthttp.RequestCtx, err error) {
	var qe *domain.QuoteError
	if errors.As(err, &qe) && qe.Kind.IsSelectionError() {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, string(qe.Kind), qe.Message)
		return
	}

	s.logger.Error("engine failure", zap.Error(err))
	kind := ""
	if qe != nil {
		kind = string(qe.Kind)
	}
	writeError(ctx, fasthttp.StatusInternalServerError, kind, err.Error())
}

func requireMethod(ctx *fasthttp.RequestCtx, method string) bool {
	if string(ctx.Method()) == method {
		return true
	}
	ctx.Response.Header.Set("Allow", method)
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "", "Method not allowed")
	return false
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		ctx.Error(`{"status":500,"message":"encoding failed"}`, fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(data)
}

func writeError(ctx *fasthttp.RequestCtx, status int, kind, message string) {
	writeJSON(ctx, status, ErrorResponse{Status: status, Kind: kind, Message: message})
}
