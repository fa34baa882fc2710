package api

import "testing"

func TestToNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 7.5, 7.5},
		{"numeric string", "7", 7},
		{"decimal string", " 3.5 ", 3.5},
		{"garbage string", "12px", 0},
		{"empty string", "", 0},
		{"nil", nil, 0},
		{"true", true, 1},
		{"false", false, 0},
		{"object", map[string]any{}, 0},
		{"array", []any{1}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := toNumber(tt.in); got != tt.want {
				t.Errorf("toNumber(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestToString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "hello", "hello"},
		{"number", 42.0, "42"},
		{"decimal", 3.5, "3.5"},
		{"zero collapses to empty", 0.0, ""},
		{"nil", nil, ""},
		{"true", true, "true"},
		{"false", false, ""},
		{"object", map[string]any{"a": 1}, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := toString(tt.in); got != tt.want {
				t.Errorf("toString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNullableStr_PreservesAbsence(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"phone":  nil,
		"email":  "a@b.c",
		"gender": 0.0,
	}

	if got := nullableStr(m, "phone"); got != nil {
		t.Errorf("nullableStr(null) = %q, want nil", *got)
	}
	if got := nullableStr(m, "missing"); got != nil {
		t.Errorf("nullableStr(absent) = %q, want nil", *got)
	}
	if got := nullableStr(m, "gender"); got != nil {
		t.Errorf("nullableStr(0) = %q, want nil", *got)
	}
	if got := nullableStr(m, "email"); got == nil || *got != "a@b.c" {
		t.Errorf("nullableStr(present) = %v, want a@b.c", got)
	}
}

func TestNullableNum(t *testing.T) {
	t.Parallel()

	m := map[string]any{"price": "19.9", "none": nil}

	if got := nullableNum(m, "price"); got == nil || *got != 19.9 {
		t.Errorf("nullableNum(present) = %v, want 19.9", got)
	}
	if got := nullableNum(m, "none"); got != nil {
		t.Errorf("nullableNum(null) = %v, want nil", *got)
	}
	if got := nullableNum(m, "absent"); got != nil {
		t.Errorf("nullableNum(absent) = %v, want nil", *got)
	}
}

func TestStrOrAndCount(t *testing.T) {
	t.Parallel()

	m := map[string]any{"status": "", "pageNum": "2", "pageSize": nil}

	if got := strOr(m, "status", "locked"); got != "locked" {
		t.Errorf("strOr(empty) = %q, want locked", got)
	}
	if got := count(m, "pageNum", 1); got != 2 {
		t.Errorf("count(present) = %d, want 2", got)
	}
	if got := count(m, "pageSize", 10); got != 10 {
		t.Errorf("count(null) = %d, want default 10", got)
	}
	if got := count(m, "total", 0); got != 0 {
		t.Errorf("count(absent, 0 default) = %d, want 0", got)
	}
}
