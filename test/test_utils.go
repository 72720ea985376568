package test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"Mergington-Activities/src/board"
	"Mergington-Activities/src/controllers"
	"Mergington-Activities/src/middleware"
	"Mergington-Activities/src/routes"
	"Mergington-Activities/src/services/activities"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/stretchr/testify/require"
)

// TestTimer is a utility for measuring test execution time
type TestTimer struct {
	start time.Time
	name  string
}

func NewTestTimer(name string) *TestTimer {
	return &TestTimer{start: time.Now(), name: name}
}

func (t *TestTimer) Stop() time.Duration {
	return time.Since(t.start)
}

// TestResult represents the result of a test with timing information
type TestResult struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// TestSuiteResult collects the results of one suite for the summary log.
type TestSuiteResult struct {
	SuiteName   string
	PassedTests int
	FailedTests int
	TotalTime   time.Duration
	Results     []TestResult
}

func NewTestSuiteResult(suiteName string) *TestSuiteResult {
	return &TestSuiteResult{SuiteName: suiteName}
}

func (tsr *TestSuiteResult) AddResult(result TestResult) {
	tsr.Results = append(tsr.Results, result)
	tsr.TotalTime += result.Duration
	if result.Passed {
		tsr.PassedTests++
	} else {
		tsr.FailedTests++
	}
}

// Run runs fn as a subtest, times it and records the outcome in the suite.
func (tsr *TestSuiteResult) Run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		timer := NewTestTimer(name)
		defer func() {
			tsr.AddResult(TestResult{Name: name, Duration: timer.Stop(), Passed: !t.Failed()})
		}()
		fn(t)
	})
}

// PrintSummary logs a summary of the suite through t.
func (tsr *TestSuiteResult) PrintSummary(t *testing.T) {
	t.Logf("📊 Test Suite Summary: %s", tsr.SuiteName)
	t.Logf("   Passed: %d ✅  Failed: %d ❌  Total Time: %v", tsr.PassedTests, tsr.FailedTests, tsr.TotalTime)
	for _, result := range tsr.Results {
		status := "✅"
		if !result.Passed {
			status = "❌"
		}
		t.Logf("   %s %s: %v", status, result.Name, result.Duration)
	}
}

// PerformanceAssertion checks if a test meets performance requirements
func PerformanceAssertion(t *testing.T, testName string, duration time.Duration, maxDuration time.Duration) {
	t.Helper()
	if duration > maxDuration {
		t.Errorf("❌ %s performance test failed: took %v, expected less than %v", testName, duration, maxDuration)
	}
}

// NewTestApp wires the full application on an in-memory store: the activities
// API is served over a real listener so the board reaches it through HTTP.
func NewTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := activities.NewMemoryStore()
	require.NoError(t, activities.SeedDefaults(context.Background(), store))
	service := activities.NewService(store, nil, nil)

	app := fiber.New()
	middleware.Use(app, nil)

	server := httptest.NewUnstartedServer(nil)
	t.Cleanup(server.Close)
	gateway, err := board.NewHTTPGateway("http://"+server.Listener.Addr().String(), 2*time.Second)
	require.NoError(t, err)

	routes.InitRoutes(app, routes.Controllers{
		Activities: controllers.NewActivityController(service),
		Board:      controllers.NewBoardController(gateway),
	})
	server.Config.Handler = adaptor.FiberApp(app)
	server.Start()
	return app
}
