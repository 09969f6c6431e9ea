package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Walks the happy path end to end against a running server: demo chat,
// claim, checklist answers, brand capture, routing, flow advancement.
// Needs a valid JWT in SIM_ACCESS_TOKEN.

func prettyPrint(v interface{}) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(b))
}

func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

func step(name string) {
	color.Cyan("\n=== %s ===", name)
}

func check(resp *http.Response, body []byte, err error) map[string]interface{} {
	if err != nil {
		color.Red("Request failed: %v", err)
		os.Exit(1)
	}
	var parsed map[string]interface{}
	_ = json.Unmarshal(body, &parsed)
	if resp.StatusCode >= 300 {
		color.Red("HTTP %d", resp.StatusCode)
		prettyPrint(parsed)
		os.Exit(1)
	}
	color.Green("HTTP %d", resp.StatusCode)
	prettyPrint(parsed)
	return parsed
}

func dataField(parsed map[string]interface{}, key string) string {
	data, _ := parsed["data"].(map[string]interface{})
	v, _ := data[key].(string)
	return v
}

func main() {
	token := os.Getenv("SIM_ACCESS_TOKEN")
	if token == "" {
		color.Red("SIM_ACCESS_TOKEN is not set")
		os.Exit(1)
	}

	color.Yellow("=== Onboarding Flow Simulation ===")

	step("Create demo session")
	resp, body, err := sendRequest("POST", "/demo/v1/session", "", nil)
	parsed := check(resp, body, err)
	demoToken := dataField(parsed, "token")

	step("Demo chat")
	resp, body, err = sendRequest("POST", "/demo/v1/session/"+demoToken+"/message", "", map[string]string{
		"content": "I run a bookkeeping practice for dental clinics and want more qualified leads",
	})
	check(resp, body, err)

	step("Claim demo session")
	resp, body, err = sendRequest("POST", "/demo/v1/claim", token, map[string]string{"token": demoToken})
	check(resp, body, err)

	step("Start onboarding")
	resp, body, err = sendRequest("POST", "/onboarding/v1/start", token, map[string]interface{}{
		"demo_token": demoToken,
	})
	check(resp, body, err)

	step("Answer checklist")
	answers := []map[string]string{
		{"field": "industry", "value": "Professional Services"},
		{"field": "goal", "value": "Generate qualified leads"},
		{"field": "audience", "value": "Dental clinic owners"},
		{"field": "service_type", "value": "Bookkeeping and CFO services"},
		{"field": "challenge", "value": "Clients do not understand their margins"},
		{"field": "unique_value", "value": "Dental-industry benchmarks built in"},
		{"field": "offer", "value": "Free margin health check"},
	}
	for _, a := range answers {
		resp, body, err = sendRequest("POST", "/onboarding/v1/answer", token, a)
		check(resp, body, err)
	}

	step("Capture brand")
	resp, body, err = sendRequest("POST", "/onboarding/v1/brand", token, map[string]interface{}{
		"colors":     []string{"#1A2B3C", "#FFD700", "#FFFFFF"},
		"fonts":      []string{"Inter", "Lora"},
		"skip_guide": true,
	})
	check(resp, body, err)

	step("Next step")
	resp, body, err = sendRequest("GET", "/onboarding/v1/next-step", token, nil)
	check(resp, body, err)

	step("Advance to brand_captured")
	resp, body, err = sendRequest("POST", "/onboarding/v1/advance", token, map[string]string{"state": "brand_captured"})
	check(resp, body, err)

	step("Store brief")
	resp, body, err = sendRequest("POST", "/onboarding/v1/brief", token, map[string]interface{}{
		"brief": map[string]interface{}{"positioning": "Dental bookkeeping specialists"},
	})
	check(resp, body, err)

	step("Advance to brief_generated")
	resp, body, err = sendRequest("POST", "/onboarding/v1/advance", token, map[string]string{"state": "brief_generated"})
	check(resp, body, err)

	step("Backward advance must fail")
	resp, body, err = sendRequest("POST", "/onboarding/v1/advance", token, map[string]string{"state": "signed_up"})
	if err == nil && resp.StatusCode == http.StatusInternalServerError {
		color.Green("Backward transition rejected as expected")
	} else {
		color.Red("Expected rejection, got HTTP %d", resp.StatusCode)
	}
	var parsedErr map[string]interface{}
	_ = json.Unmarshal(body, &parsedErr)
	prettyPrint(parsedErr)

	color.Yellow("\n=== Simulation finished ===")
}
