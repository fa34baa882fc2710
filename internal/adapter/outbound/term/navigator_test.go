package term

import (
	"strings"
	"testing"
)

func TestNavigator_RedirectToLogin(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	n := NewNavigator(&out, "/login")
	n.Enter("/shop/orders")

	if got := n.CurrentPath(); got != "/shop/orders" {
		t.Errorf("CurrentPath() = %q", got)
	}

	n.RedirectToLogin(n.CurrentPath(), "expired")

	if got := n.CurrentPath(); got != "/login" {
		t.Errorf("CurrentPath() after redirect = %q, want /login", got)
	}
	if got := n.ReturnTo(); got != "/shop/orders" {
		t.Errorf("ReturnTo() = %q, want interrupted path", got)
	}
	if !strings.Contains(out.String(), "mallctl login") {
		t.Errorf("output = %q, want re-login instruction", out.String())
	}
}
