package storage

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/xxh3"
)

// Fingerprint calcula um hash xxh3 da forma serializada de uma coleção.
// A interface usa o valor como ETag para saber se seu snapshot está defasado.
func Fingerprint(value interface{}) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("erro ao serializar para fingerprint: %w", err)
	}
	return fmt.Sprintf("%016x", xxh3.Hash(data)), nil
}
