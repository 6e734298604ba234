package composite

import (
	"errors"
	"testing"
)

func TestParseFiberType(t *testing.T) {
	testCases := []struct {
		input   string
		want    FiberType
		wantErr bool
	}{
		{"Carbon", FiberCarbon, false},
		{"Glass", FiberGlass, false},
		{"Aramid", FiberAramid, false},
		{"Basalt", FiberBasalt, false},
		{"Natural", FiberNatural, false},
		{"carbon", "", true}, // case-sensitive
		{"Kevlar", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseFiberType(tc.input)
			if tc.wantErr {
				assertInvalidField(t, err, "fiber_type")
				return
			}
			if err != nil {
				t.Fatalf("ParseFiberType(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseFiberType(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseMatrixType(t *testing.T) {
	testCases := []struct {
		input   string
		want    MatrixType
		wantErr bool
	}{
		{"Epoxy", MatrixEpoxy, false},
		{"Polyester", MatrixPolyester, false},
		{"Vinyl_ester", MatrixVinylEster, false},
		{"PEEK", MatrixPEEK, false},
		{"PA6", MatrixPA6, false},
		{"Vinyl ester", "", true}, // underscore form only
		{"peek", "", true},
		{"", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseMatrixType(tc.input)
			if tc.wantErr {
				assertInvalidField(t, err, "matrix_type")
				return
			}
			if err != nil {
				t.Fatalf("ParseMatrixType(%q) failed: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseMatrixType(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseLayupConfig(t *testing.T) {
	for _, l := range layupOrder {
		got, err := ParseLayupConfig(string(l))
		if err != nil {
			t.Errorf("ParseLayupConfig(%q) failed: %v", l, err)
		}
		if got != l {
			t.Errorf("ParseLayupConfig(%q) = %q", l, got)
		}
	}

	for _, bad := range []string{"UD 45°", "ud 0°", "[0/90]", ""} {
		_, err := ParseLayupConfig(bad)
		assertInvalidField(t, err, "layup")
	}
}

func TestParseManufacturingProcess(t *testing.T) {
	for _, p := range processOrder {
		got, err := ParseManufacturingProcess(string(p))
		if err != nil {
			t.Errorf("ParseManufacturingProcess(%q) failed: %v", p, err)
		}
		if got != p {
			t.Errorf("ParseManufacturingProcess(%q) = %q", p, got)
		}
	}

	for _, bad := range []string{"Spray_up", "autoclave", "Hand layup", ""} {
		_, err := ParseManufacturingProcess(bad)
		assertInvalidField(t, err, "manufacturing")
	}
}

func assertInvalidField(t *testing.T, err error, field string) {
	t.Helper()

	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, want *InvalidInputError", err)
	}
	if invalid.Field != field {
		t.Errorf("error field = %q, want %q", invalid.Field, field)
	}
	if invalid.Error() == "" {
		t.Error("error message should be descriptive")
	}
}
