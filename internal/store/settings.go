package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// SettingsDocument holds values that must survive restarts but are not part
// of the owner and item collections.
const SettingsDocument = "settings.json"

type settings struct {
	JWTSecret string `json:"jwt_secret"`
}

// TokenSecret returns the token signing secret kept in the settings document.
// If none exists yet, a random one is generated and written back.
func (s *Store) TokenSecret(ctx context.Context) (string, error) {
	data, err := s.backend.Read(ctx, SettingsDocument)
	switch {
	case err == nil:
		var st settings
		if err := json.Unmarshal(data, &st); err != nil {
			return "", fmt.Errorf("decoding settings: %w", err)
		}
		if st.JWTSecret != "" {
			return st.JWTSecret, nil
		}
	case !documentMissing(err):
		return "", fmt.Errorf("reading settings: %w", err)
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating jwt secret: %w", err)
	}
	st := settings{JWTSecret: hex.EncodeToString(buf)}

	data, err = json.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("encoding settings: %w", err)
	}
	if err := s.backend.Write(ctx, SettingsDocument, data); err != nil {
		return "", fmt.Errorf("storing jwt secret: %w", err)
	}
	s.logger.Info("generated token signing secret", "document", SettingsDocument)
	return st.JWTSecret, nil
}
