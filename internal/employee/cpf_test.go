package employee_test

import (
	"testing"

	"hr-backoffice/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCPF(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"formatted", "390.533.447-05", "39053344705"},
		{"bare digits", "39053344705", "39053344705"},
		{"with spaces", " 390 533 447 05 ", "39053344705"},
		{"opaque code kept verbatim", "EMP-001", "EMP-001"},
		{"opaque code only trimmed", "  employee-alpha ", "employee-alpha"},
		{"checksum-failing digits kept", "12345678901", "12345678901"},
		{"short digit run kept", "390.533", "390.533"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, employee.NormalizeCPF(tt.in))
		})
	}
}

func TestValidCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want bool
	}{
		{"valid", "39053344705", true},
		{"wrong check digit", "39053344704", false},
		{"repeated digits pass checksum but are rejected", "11111111111", false},
		{"all zeros", "00000000000", false},
		{"non-digits", "EMP-0000001", false},
		{"too short", "3905334470", false},
		{"too long", "390533447051", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, employee.ValidCPF(tt.cpf))
		})
	}
}
