package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for usability. It returns all problems
// at once so the user can fix them in one pass.
func (c *Config) Validate() error {
	var problems []string

	if err := validateURL("vehicleApi.baseUrl", c.VehicleAPI.BaseURL); err != nil {
		problems = append(problems, err.Error())
	}
	if err := validateURL("assistApi.baseUrl", c.AssistAPI.BaseURL); err != nil {
		problems = append(problems, err.Error())
	}
	if c.Settings.TimeoutSeconds <= 0 {
		problems = append(problems, "settings.timeoutSeconds must be positive")
	}
	if c.Settings.ListenAddr != "" && !strings.Contains(c.Settings.ListenAddr, ":") {
		problems = append(problems, "settings.listenAddr must be host:port")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func validateURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL", field)
	}
	return nil
}
