package config

import (
	"encoding/json"
	"fmt"

	"github.com/docker/go-units"
)

// ByteSize is a size in bytes that is configured either as a number or as a
// human readable string such as "512KB" or "1MB" (decimal units).
type ByteSize int64

// UnmarshalText implements encoding.TextUnmarshaler, used for env and flags.
func (s *ByteSize) UnmarshalText(text []byte) error {
	size, err := units.FromHumanSize(string(text))
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", text, err)
	}
	*s = ByteSize(size)
	return nil
}

func (s *ByteSize) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*s = ByteSize(value)
		return nil
	case string:
		return s.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid size %s", string(b))
	}
}

// String returns the size in human readable form.
func (s ByteSize) String() string {
	return units.HumanSize(float64(s))
}

// Set implements flag.Value.
func (s *ByteSize) Set(v string) error {
	return s.UnmarshalText([]byte(v))
}

// Int64 returns the size in bytes.
func (s ByteSize) Int64() int64 {
	return int64(s)
}
