package config

import "fmt"

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Auth.LoginTimeout <= 0 {
		return fmt.Errorf("%w: login timeout must be positive", ErrInvalidAuthConfigs)
	}

	if (cfg.Auth.CertFile == "") != (cfg.Auth.KeyFile == "") {
		return fmt.Errorf("%w: cert and key must be set together", ErrInvalidAuthConfigs)
	}

	return nil
}
