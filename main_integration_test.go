package main_test

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	testAppBinary  = "./estate_test_app"
	testAppPort    = "8089"
	testAppURL     = "http://localhost:" + testAppPort
	testDbName     = "estate_integration_test"
	startupTimeout = 15 * time.Second
	pingEndpoint   = testAppURL + "/ping"
)

const testFixture = `
properties:
  - name: Integration Heights
    address: 1-1-1 Chiyoda, Tokyo
    type: MANSION
    rooms:
      - roomNumber: "201"
        rent: 90000
        managementFee: 6000
`

// noRedirect keeps 303 responses visible to the test.
var noRedirect = &http.Client{
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	},
	Timeout: 10 * time.Second,
}

// TestMain builds the binary, seeds a fixture through the seed command and
// runs the API against a throwaway database. Skipped without MONGO_URI_TEST.
func TestMain(m *testing.M) {
	_ = godotenv.Load()
	mongoURI := os.Getenv("MONGO_URI_TEST")
	redisAddr := os.Getenv("REDIS_ADDR_TEST")
	if mongoURI == "" || redisAddr == "" {
		log.Println("MONGO_URI_TEST or REDIS_ADDR_TEST not set, skipping integration tests")
		return
	}

	defer func() {
		_ = os.Remove(testAppBinary)
	}()

	log.Println("Integration Test Setup: Building application...")
	buildOutput, err := exec.Command("go", "build", "-o", testAppBinary, ".").CombinedOutput()
	if err != nil {
		log.Printf("Failed to build application: %v\nOutput:\n%s", err, string(buildOutput))
		os.Exit(1)
	}

	env := append(os.Environ(),
		"MONGO_URI="+mongoURI,
		"MONGO_DB_NAME="+testDbName,
		"REDIS_ADDR="+redisAddr,
		"API_PORT="+testAppPort,
		"GIN_MODE=release",
		"RATE_LIMIT_BUCKET_SIZE=100",
		"RATE_LIMIT_REFILL_RATE=100",
	)
	defer dropTestDatabase(mongoURI)

	fixturePath := filepath.Join(os.TempDir(), "estate_integration_fixture.yaml")
	if err := os.WriteFile(fixturePath, []byte(testFixture), 0o600); err != nil {
		log.Printf("Failed to write fixture: %v", err)
		os.Exit(1)
	}
	defer os.Remove(fixturePath)

	seedCmd := exec.Command(testAppBinary, "seed", "--file", fixturePath)
	seedCmd.Env = env
	if out, err := seedCmd.CombinedOutput(); err != nil {
		log.Printf("Failed to seed test data: %v\nOutput:\n%s", err, string(out))
		os.Exit(1)
	}

	apiCmd := exec.Command(testAppBinary, "serve")
	apiCmd.Env = env
	apiCmd.Stderr = os.Stderr
	apiCmd.Stdout = os.Stdout
	if err := apiCmd.Start(); err != nil {
		log.Printf("Failed to start API process: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Println("Integration Test Teardown: Sending SIGTERM to API process...")
		if err := apiCmd.Process.Signal(syscall.SIGTERM); err != nil {
			_ = apiCmd.Process.Kill()
			return
		}
		_, _ = apiCmd.Process.Wait()
	}()

	startTime := time.Now()
	ready := false
	for time.Since(startTime) < startupTimeout {
		resp, err := http.Get(pingEndpoint)
		if err == nil {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK && string(body) == "pong" {
				ready = true
				break
			}
		}
		time.Sleep(200 * time.Millisecond)
	}
	if !ready {
		log.Printf("Application failed to start within %v", startupTimeout)
		return
	}

	exitCode := m.Run()
	log.Printf("Integration Test Teardown: Tests finished with exit code %d.", exitCode)
}

func dropTestDatabase(uri string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Printf("Integration Test Teardown: failed to connect for cleanup: %v", err)
		return
	}
	defer client.Disconnect(ctx)
	if err := client.Database(testDbName).Drop(ctx); err != nil {
		log.Printf("Integration Test Teardown: failed to drop %s: %v", testDbName, err)
	}
}

func postForm(t *testing.T, path string, form url.Values) *http.Response {
	t.Helper()
	resp, err := noRedirect.Post(testAppURL+path, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func getJSON(t *testing.T, path string, out any) {
	t.Helper()
	resp, err := noRedirect.Get(testAppURL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestIntegration_Ping(t *testing.T) {
	resp, err := http.Get(pingEndpoint)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pong", string(body))
}

func TestIntegration_SeededRoomsAreOffered(t *testing.T) {
	var form struct {
		Rooms []struct {
			ID         string `json:"id"`
			RoomNumber string `json:"roomNumber"`
			Property   struct {
				Name string `json:"name"`
			} `json:"property"`
		} `json:"rooms"`
	}
	getJSON(t, "/dashboard/contracts/new", &form)

	require.NotEmpty(t, form.Rooms)
	assert.Equal(t, "201", form.Rooms[0].RoomNumber)
	assert.Equal(t, "Integration Heights", form.Rooms[0].Property.Name)
}

func TestIntegration_CreatePropertyRedirectsAndRefreshesListing(t *testing.T) {
	var before struct {
		Properties []json.RawMessage `json:"properties"`
	}
	getJSON(t, "/dashboard/properties", &before)

	resp := postForm(t, "/dashboard/properties", url.Values{
		"name":    {"Riverside Apartment"},
		"address": {"Koto, Tokyo"},
		"type":    {"APARTMENT"},
	})
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard/properties", resp.Header.Get("Location"))

	var after struct {
		Properties []json.RawMessage `json:"properties"`
	}
	getJSON(t, "/dashboard/properties", &after)
	assert.Len(t, after.Properties, len(before.Properties)+1)
}

func TestIntegration_ContractorThenContract(t *testing.T) {
	resp := postForm(t, "/dashboard/contractors", url.Values{
		"name":    {"Yamada Taro"},
		"contact": {"yamada@example.com"},
		"address": {"Nakano, Tokyo"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.True(t, result.Success)

	var form struct {
		Contractors []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"contractors"`
		Rooms []struct {
			ID string `json:"id"`
		} `json:"rooms"`
	}
	getJSON(t, "/dashboard/contracts/new", &form)
	require.NotEmpty(t, form.Contractors)
	require.NotEmpty(t, form.Rooms)

	contract := url.Values{
		"contractorId":  {form.Contractors[0].ID},
		"roomId":        {form.Rooms[0].ID},
		"startDate":     {"2024-04-01"},
		"endDate":       {"2026-03-31"},
		"rent":          {"90000"},
		"managementFee": {"6000"},
	}
	resp = postForm(t, "/dashboard/contracts", contract)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	var txForm struct {
		Contracts []struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"contracts"`
	}
	getJSON(t, "/dashboard/transactions/new", &txForm)
	require.NotEmpty(t, txForm.Contracts)
	assert.Equal(t, "ACTIVE", txForm.Contracts[0].Status)
}

func TestIntegration_UnknownRoomIsRejected(t *testing.T) {
	resp := postForm(t, "/dashboard/contracts", url.Values{
		"contractorId":  {"missing-contractor"},
		"roomId":        {"missing-room"},
		"startDate":     {"2024-04-01"},
		"endDate":       {"2025-03-31"},
		"rent":          {"1000"},
		"managementFee": {"0"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var result struct {
		Success bool                `json:"success"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.False(t, result.Success)
	assert.Contains(t, result.Errors, "roomId")
}

func TestIntegration_ZeroAmountTransactionIsRejected(t *testing.T) {
	resp := postForm(t, "/dashboard/transactions", url.Values{
		"transactionDate": {"2024-05-01"},
		"type":            {"RENT_INCOME"},
		"amount":          {"0"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
