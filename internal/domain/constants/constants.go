// Package constants holds string identifiers shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers selectable through configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNoop   = "noop"
)

// Announcement drafter providers.
const (
	DrafterProviderHTTP     = "http"
	DrafterProviderTemplate = "template"
)

// Blob key prefixes.
const (
	PaymentProofPrefix = "payment_screenshots"
	MenuImagePrefix    = "menu_images"
)

// CatalogChannel is the Postgres NOTIFY channel carrying menu item changes.
const CatalogChannel = "menu_items"
