package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		n    int64
		want string
	}{
		{"zero", 0, "0.00 Bytes"},
		{"small", 512, "512.00 Bytes"},
		{"one below kilobyte", 1023, "1023.00 Bytes"},
		{"exact kilobyte", 1024, "1.00 KB"},
		{"fractional kilobyte", 1536, "1.50 KB"},
		{"exact megabyte", 1024 * 1024, "1.00 MB"},
		{"fractional megabyte", 5*1024*1024 + 256*1024, "5.25 MB"},
		{"exact gigabyte", 1024 * 1024 * 1024, "1.00 GB"},
		{"terabyte", 2 * 1024 * 1024 * 1024 * 1024, "2.00 TB"},
		{"petabyte", 1024 * 1024 * 1024 * 1024 * 1024, "1.00 PB"},
		{"exabyte", 1024 * 1024 * 1024 * 1024 * 1024 * 1024, "1.00 EB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Bytes(tt.n))
		})
	}
}

func TestSeconds(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "0.0000 seconds"},
		{"sub second", 351400 * time.Microsecond, "0.3514 seconds"},
		{"whole seconds", 2 * time.Second, "2.0000 seconds"},
		{"mixed", 1*time.Second + 250*time.Millisecond, "1.2500 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Seconds(tt.d))
		})
	}
}
