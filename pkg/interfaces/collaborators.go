package interfaces

// SecretStore abstracts credential storage (e.g. an OS keychain). The library
// never persists secrets itself; hosts supply an implementation when a
// component such as the extraction importer needs an API key.
type SecretStore interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}
