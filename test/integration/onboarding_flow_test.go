package integration

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"brandlaunch-be/internal/bootstrap"
	"brandlaunch-be/internal/config"
	"brandlaunch-be/internal/dto"
	"brandlaunch-be/internal/pkg/serverutils"
	"brandlaunch-be/internal/server"
	"brandlaunch-be/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end walk over the HTTP surface: demo chat, claim, checklist, flow
// advancement. Needs a reachable Postgres; NATS and Redis are optional (the
// container degrades without them).
func TestOnboardingFlow(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: Could not load ../../.env: %v", err)
		os.Setenv("JWT_SECRET", "default_secret")
	}
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		t.Skip("DB_CONNECTION_STRING not set; skipping integration test")
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	container := bootstrap.NewContainer(db, cfg)
	srv := server.New(cfg, container)
	app := srv.GetApp()

	ownerId := uuid.New()
	token := mintToken(t, ownerId, "flow-test@example.com")

	defer func() {
		db.Exec("DELETE FROM drafts WHERE owner_id = ?", ownerId)
		db.Exec("DELETE FROM consultations WHERE owner_id = ?", ownerId)
		db.Exec("DELETE FROM demo_sessions WHERE claimed_by = ?", ownerId)
	}()

	// 1. Anonymous demo session
	var sessionRes serverutils.ApiResponse[dto.CreateDemoSessionResponse]
	resp := doJSON(t, app, "POST", "/api/demo/v1/session", "", nil, &sessionRes)
	require.Equal(t, 200, resp)
	require.NotEmpty(t, sessionRes.Data.Token)
	demoToken := sessionRes.Data.Token

	var msgRes serverutils.ApiResponse[dto.DemoMessageResponse]
	resp = doJSON(t, app, "POST", "/api/demo/v1/session/"+demoToken+"/message", "",
		dto.DemoMessageRequest{Content: "I run a small bookkeeping practice for dental clinics"}, &msgRes)
	require.Equal(t, 200, resp)
	assert.Equal(t, 1, msgRes.Data.MessageCount)

	// 2. Claim after signup
	var claimRes serverutils.ApiResponse[dto.ClaimDemoSessionResponse]
	resp = doJSON(t, app, "POST", "/api/demo/v1/claim", token,
		dto.ClaimDemoSessionRequest{Token: demoToken}, &claimRes)
	require.Equal(t, 200, resp)
	require.True(t, claimRes.Data.Claimed)
	require.NotNil(t, claimRes.Data.ConsultationId)

	// A second claim of the same token loses quietly.
	var claimAgain serverutils.ApiResponse[dto.ClaimDemoSessionResponse]
	resp = doJSON(t, app, "POST", "/api/demo/v1/claim", token,
		dto.ClaimDemoSessionRequest{Token: demoToken}, &claimAgain)
	require.Equal(t, 200, resp)
	assert.False(t, claimAgain.Data.Claimed)

	// 3. Start resolves to the claimed attempt
	var startRes serverutils.ApiResponse[dto.ConsultationResponse]
	resp = doJSON(t, app, "POST", "/api/onboarding/v1/start", token,
		dto.StartAttemptRequest{DemoToken: &demoToken}, &startRes)
	require.Equal(t, 200, resp)
	assert.Equal(t, *claimRes.Data.ConsultationId, startRes.Data.Id)
	assert.Equal(t, "signed_up", startRes.Data.FlowState)

	// 4. Checklist answers
	answers := []dto.SubmitAnswerRequest{
		{Field: "industry", Value: "Professional Services"},
		{Field: "goal", Value: "Generate qualified leads"},
		{Field: "audience", Value: "Independent dental clinics"},
		{Field: "service_type", Value: "Bookkeeping and payroll"},
		{Field: "challenge", Value: "Owners do not trust their monthly numbers"},
		{Field: "unique_value", Value: "Dental-industry benchmarks in every report"},
		{Field: "offer", Value: "Free first-month close"},
	}
	var answerRes serverutils.ApiResponse[dto.SubmitAnswerResponse]
	for _, a := range answers {
		resp = doJSON(t, app, "POST", "/api/onboarding/v1/answer", token, a, &answerRes)
		require.Equal(t, 200, resp, "answer %s", a.Field)
	}
	assert.True(t, answerRes.Data.Complete)
	require.NotNil(t, answerRes.Data.NextStep)

	// 5. Flow advancement is monotonic
	var advRes serverutils.ApiResponse[dto.AdvanceFlowResponse]
	resp = doJSON(t, app, "POST", "/api/onboarding/v1/advance", token,
		dto.AdvanceFlowRequest{State: "brand_captured"}, &advRes)
	require.Equal(t, 200, resp)
	assert.Equal(t, "brand_captured", advRes.Data.FlowState)

	// Backward advancement is a programming error, surfaced as 500.
	var errRes serverutils.ApiResponse[any]
	resp = doJSON(t, app, "POST", "/api/onboarding/v1/advance", token,
		dto.AdvanceFlowRequest{State: "signed_up"}, &errRes)
	assert.Equal(t, 500, resp)
	assert.False(t, errRes.Success)

	// 6. The persisted state survived the rejected transition
	var currentRes serverutils.ApiResponse[dto.ConsultationResponse]
	resp = doJSON(t, app, "GET", "/api/onboarding/v1/current", token, nil, &currentRes)
	require.Equal(t, 200, resp)
	assert.Equal(t, "brand_captured", currentRes.Data.FlowState)
}

func mintToken(t *testing.T, userId uuid.UUID, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"email":   email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		t.Fatalf("Failed to sign test token: %v", err)
	}
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}, out interface{}) int {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode response: %v", method, path, err)
		}
	}
	return resp.StatusCode
}
