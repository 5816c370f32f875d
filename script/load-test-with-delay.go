package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand/v2"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"
)

// TestResult contains metrics for a single request
type TestResult struct {
	Scenario     string
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// Scenario builds one request against the ledger API
type Scenario struct {
	Name  string
	Build func(baseURL, caller string, accounts []string) (*http.Request, error)
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	accountsStr := flag.String("a", "alice,bob,carol", "Comma-separated accounts to move tokens between")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var accounts []string
	for _, a := range strings.Split(*accountsStr, ",") {
		if a = strings.TrimSpace(a); a != "" {
			accounts = append(accounts, a)
		}
	}
	if len(accounts) < 2 {
		fmt.Println("At least two accounts are required")
		return
	}

	scenarios := []Scenario{
		{"transfer", transferRequest},
		{"batch transfer", batchRequest},
		{"settled read", accountRequest},
		{"locks read", locksRequest},
	}

	fmt.Printf("Load testing ledger across %d accounts: %v\n", len(accounts), accounts)
	fmt.Printf("Concurrency: %d goroutines, %d requests, %d ms delay\n", *concurrency, *totalRequests, *delayMs)

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
	}

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(*baseURL, *delayMs, accounts, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	startTime := time.Now()
	go func() {
		wg.Wait()
		close(results)
	}()

	for result := range results {
		stats.Lock.Lock()
		stats.ScenarioStats[result.Scenario]++
		if result.Success {
			stats.SuccessfulRequests++
		} else {
			stats.FailedRequests++
			errMsg := "unknown"
			if result.Error != nil {
				errMsg = result.Error.Error()
			}
			stats.ErrorCounts[errMsg]++
		}
		stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
		stats.Lock.Unlock()
	}
	stats.TotalTime = time.Since(startTime)

	printResults(stats)
}

func worker(baseURL string, delayMs int, accounts []string, scenarios []Scenario,
	jobs <-chan int, results chan<- TestResult) {

	client := &http.Client{Timeout: 10 * time.Second}

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		scenario := scenarios[rand.IntN(len(scenarios))]
		caller := accounts[rand.IntN(len(accounts))]

		req, err := scenario.Build(baseURL, caller, accounts)
		if err != nil {
			results <- TestResult{Scenario: scenario.Name, Error: err}
			continue
		}

		start := time.Now()
		resp, err := client.Do(req)
		result := TestResult{Scenario: scenario.Name, ResponseTime: time.Since(start)}
		if err != nil {
			result.Error = err
		} else {
			result.StatusCode = resp.StatusCode
			// Rejections for insufficient funds are expected under random load
			result.Success = resp.StatusCode < 300 || resp.StatusCode == http.StatusUnprocessableEntity
			if !result.Success {
				result.Error = fmt.Errorf("%s: HTTP status code %d", scenario.Name, resp.StatusCode)
			}
			resp.Body.Close()
		}
		results <- result
	}
}

func otherAccount(caller string, accounts []string) string {
	for {
		if to := accounts[rand.IntN(len(accounts))]; to != caller {
			return to
		}
	}
}

func postJSON(url, caller string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Caller-Address", caller)
	return req, nil
}

func transferRequest(baseURL, caller string, accounts []string) (*http.Request, error) {
	return postJSON(baseURL+"/transfers", caller, map[string]string{
		"to":     otherAccount(caller, accounts),
		"amount": fmt.Sprint(1 + rand.IntN(50)),
	})
}

func batchRequest(baseURL, caller string, accounts []string) (*http.Request, error) {
	return postJSON(baseURL+"/transfers/batch", caller, map[string][]string{
		"recipients": {otherAccount(caller, accounts), otherAccount(caller, accounts)},
		"amounts":    {fmt.Sprint(1 + rand.IntN(10)), fmt.Sprint(1 + rand.IntN(10))},
	})
}

func accountRequest(baseURL, caller string, _ []string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, baseURL+"/accounts/"+caller, nil)
}

func locksRequest(baseURL, caller string, _ []string) (*http.Request, error) {
	return http.NewRequest(http.MethodGet, baseURL+"/accounts/"+caller+"/locks", nil)
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	sorted := slices.Clone(stats.ResponseTimes)
	slices.Sort(sorted)

	var total time.Duration
	for _, d := range sorted {
		total += d
	}
	var avg time.Duration
	if len(sorted) > 0 {
		avg = total / time.Duration(len(sorted))
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d\n", stats.SuccessfulRequests)
	fmt.Printf("Failed Requests:     %d\n", stats.FailedRequests)
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", float64(stats.TotalRequests)/stats.TotalTime.Seconds())

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avg)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P95 Response:        %v\n", percentile(sorted, 95))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests\n", scenario, count)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-50s: %d\n", errMsg, count)
		}
	}
}
