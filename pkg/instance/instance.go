package instance

import "github.com/angelmondragon/storefront-backend/pkg/env"

// ID names the running process for log correlation. Platform-assigned names
// win over the host name.
func ID() string {
	return env.First("local", "DYNO", "HOSTNAME")
}
