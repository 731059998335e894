package server

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/jeevanlakshya/plan733/internal/domain"
	"github.com/jeevanlakshya/plan733/internal/premium"
	"github.com/jeevanlakshya/plan733/internal/quote"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newTestServer(bonus domain.BonusConfig) *Server {
	return New(Config{
		Engine:     quote.NewEngine(premium.Brochure()),
		Bonus:      bonus,
		Product:    "test",
		HandoffTTL: time.Minute,
	})
}

func do(s *Server, method, uri, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != "" {
		ctx.Request.SetBodyString(body)
	}
	s.Handler(ctx)
	return ctx
}

func decodeError(t *testing.T, ctx *fasthttp.RequestCtx) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	ctx := do(newTestServer(domain.DefaultBonusConfig()), fasthttp.MethodGet, "/healthz", "")

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
	assert.JSONEq(t, `{"status":"ok","product":"test"}`, string(ctx.Response.Body()))
}

func TestAges(t *testing.T) {
	ctx := do(newTestServer(domain.DefaultBonusConfig()), fasthttp.MethodGet, "/api/v1/ages", "")

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var resp AgesResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, []int{18, 20, 25, 30, 35, 40, 45, 50}, resp.Ages)
}

func TestTerms(t *testing.T) {
	s := newTestServer(domain.DefaultBonusConfig())

	ctx := do(s, fasthttp.MethodGet, "/api/v1/terms?age=50", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var resp TermsResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 50, resp.Age)
	assert.Equal(t, []int{13, 15}, resp.Terms)

	ctx = do(s, fasthttp.MethodGet, "/api/v1/terms?age=17", "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"age":17,"terms":[]}`, string(ctx.Response.Body()))

	ctx = do(s, fasthttp.MethodGet, "/api/v1/terms?age=old", "")
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestTable(t *testing.T) {
	ctx := do(newTestServer(domain.DefaultBonusConfig()), fasthttp.MethodGet, "/api/v1/table", "")

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var grid quote.Grid
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &grid))
	assert.Equal(t, []int{13, 15, 16, 18, 20, 21, 25}, grid.Terms)
	assert.Len(t, grid.Rows, 8)
}

func TestQuote(t *testing.T) {
	ctx := do(newTestServer(domain.DefaultBonusConfig()), fasthttp.MethodPost, "/api/v1/quote", `{"age":25,"term":20}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	var resp QuoteResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, 17, resp.Quote.PremiumPayingTerm)
	assert.True(t, resp.Quote.AnnualPremium.Equal(decimal.NewFromInt(11428)))
	assert.True(t, resp.Quote.EstimatedMaturity.TotalMaturity.Equal(decimal.NewFromInt(390000)))
	assert.Equal(t, "computed", resp.Display.Source)
}

func TestQuote_Errors(t *testing.T) {
	s := newTestServer(domain.DefaultBonusConfig())

	tests := []struct {
		name   string
		method string
		body   string
		status int
		kind   string
	}{
		{"unknown age", fasthttp.MethodPost, `{"age":17,"term":20}`, fasthttp.StatusUnprocessableEntity, "UnknownAge"},
		{"unknown term", fasthttp.MethodPost, `{"age":50,"term":25}`, fasthttp.StatusUnprocessableEntity, "UnknownTerm"},
		{"bad body", fasthttp.MethodPost, `{"age":`, fasthttp.StatusBadRequest, ""},
		{"wrong method", fasthttp.MethodGet, "", fasthttp.StatusMethodNotAllowed, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := do(s, tt.method, "/api/v1/quote", tt.body)
			assert.Equal(t, tt.status, ctx.Response.StatusCode())
			resp := decodeError(t, ctx)
			assert.Equal(t, tt.status, resp.Status)
			assert.Equal(t, tt.kind, resp.Kind)
		})
	}
}

func TestQuote_ConfigErrorIsServerError(t *testing.T) {
	s := newTestServer(domain.BonusConfig{ReversionaryBonusRatePerThousandPerYear: decimal.NewFromInt(-1)})

	ctx := do(s, fasthttp.MethodPost, "/api/v1/quote", `{"age":25,"term":20}`)
	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, "InvalidBonusConfig", decodeError(t, ctx).Kind)
}

func TestPayloadHandoff(t *testing.T) {
	s := newTestServer(domain.DefaultBonusConfig())

	ctx := do(s, fasthttp.MethodPost, "/api/v1/payload", `{"goalId":"study","age":30,"term":20}`)
	require.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	var created PayloadResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &created))
	require.NotEmpty(t, created.Token)
	assert.Equal(t, "JeevanLakshya733", created.Payload.PlanID)
	assert.Equal(t, "study", created.Payload.GoalID)

	ctx = do(s, fasthttp.MethodGet, "/api/v1/handoff/"+created.Token, "")
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var fetched domain.GoalPlanPayload
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &fetched))
	assert.Equal(t, created.Payload.Age, fetched.Age)
	assert.True(t, created.Payload.TotalPaid.Equal(fetched.TotalPaid))

	ctx = do(s, fasthttp.MethodGet, "/api/v1/handoff/"+created.Token, "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode(), "token is single use")
}

func TestPayloadHandoff_ZeroTTLServer(t *testing.T) {
	s := New(Config{Engine: quote.NewEngine(premium.Brochure()), Bonus: domain.DefaultBonusConfig()})

	ctx := do(s, fasthttp.MethodPost, "/api/v1/payload", `{"goalId":"career","age":25,"term":20}`)
	require.Equal(t, fasthttp.StatusCreated, ctx.Response.StatusCode(), string(ctx.Response.Body()))
	var created PayloadResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &created))

	ctx = do(s, fasthttp.MethodGet, "/api/v1/handoff/"+created.Token, "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
}

func TestPayload_UnknownGoal(t *testing.T) {
	ctx := do(newTestServer(domain.DefaultBonusConfig()), fasthttp.MethodPost, "/api/v1/payload", `{"goalId":"travel","age":30,"term":20}`)

	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
	assert.Equal(t, "UnknownGoal", decodeError(t, ctx).Kind)
}

func TestUnknownRoute(t *testing.T) {
	ctx := do(newTestServer(domain.DefaultBonusConfig()), fasthttp.MethodGet, "/api/v2/quote", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}
