package main

import (
	"fmt"
	"net/http"
	"time"
)

type HealthCheckCommand struct{}

func (c *HealthCheckCommand) Name() string {
	return "health-check"
}

func (c *HealthCheckCommand) Description() string {
	return "Check application health"
}

func (c *HealthCheckCommand) Run(args []string) error {
	env := envProduction
	if len(args) > 0 {
		env = args[0]
	}

	PrintHeader(fmt.Sprintf("Health Check (%s)", env))

	start := time.Now()
	if err := checkHealth(env); err != nil {
		PrintError("Health check failed: %v", err)
		return err
	}
	duration := time.Since(start)

	if duration > 1*time.Second {
		PrintWarning("Health check warning: slow response time (%v)", duration)
	} else {
		PrintSuccess("Health check passed (response time: %v)", duration)
	}

	return nil
}

// checkHealth hits the /readyz endpoint of the target environment
func checkHealth(env string) error {
	baseURL := getEnv("HEALTH_CHECK_URL", "http://localhost:8080")
	if env == envStaging {
		baseURL = getEnv("STAGING_HEALTH_CHECK_URL", baseURL)
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(baseURL + "/readyz")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s/readyz", resp.StatusCode, baseURL)
	}
	return nil
}
