// Package constants holds shared literal values used across layers.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher (development).
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
