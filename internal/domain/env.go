package domain

// LayeredEnv consults each reader in order and returns the first hit.
// Nil readers are skipped.
type LayeredEnv []EnvReader

// Lookup returns the value of key from the first reader that has it.
func (l LayeredEnv) Lookup(key string) (string, bool) {
	for _, r := range l {
		if r == nil {
			continue
		}
		if v, ok := r.Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
